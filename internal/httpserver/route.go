package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome to the Farm to Table API"

type Deps struct {
	ProductHandler *ProductHTTP
	VariantHandler *VariantHTTP
	UserHandler    *UserHTTP
	AuthHandler    *AuthHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewRequestValidator()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, welcomeMessage) })

	e.POST("/login", d.AuthHandler.Login)
	e.GET("/ws", EchoSocket)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	variants := e.Group("/productVariants")
	variants.GET("", d.VariantHandler.GetVariants)
	variants.GET("/:id", d.VariantHandler.GetVariant)
	variants.POST("", d.VariantHandler.CreateVariant)
	variants.PUT("/:id", d.VariantHandler.UpdateVariant)
	variants.DELETE("/:id", d.VariantHandler.DeleteVariant)

	users := e.Group("/user")
	users.GET("", d.UserHandler.GetUsers)
	users.GET("/:id", d.UserHandler.GetUser)
	users.POST("", d.UserHandler.CreateUser)
	users.PUT("/:id", d.UserHandler.UpdateUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)
}
