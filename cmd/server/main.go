package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/farmtotable/storefront/internal/config"
	"github.com/farmtotable/storefront/internal/httpserver"
	"github.com/farmtotable/storefront/internal/logging"
	loggingmw "github.com/farmtotable/storefront/internal/middleware/logging"
	"github.com/farmtotable/storefront/internal/repo"
	"github.com/farmtotable/storefront/internal/service"
	"github.com/farmtotable/storefront/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Fatalf("store open: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	mongoRepo := &repo.MongoRepo{S: st}

	products := &service.ProductService{Repo: mongoRepo, Variants: mongoRepo, Tx: st}
	variants := &service.VariantService{Repo: mongoRepo}
	users := &service.UserService{Repo: mongoRepo}
	tokens := &service.TokenService{Secret: cfg.AccessTokenSecret}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: products},
		VariantHandler: &httpserver.VariantHTTP{Svc: variants},
		UserHandler:    &httpserver.UserHTTP{Svc: users},
		AuthHandler:    &httpserver.AuthHTTP{Tokens: tokens},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = st.Close(shutdownCtx)

	log.Println("server stopped")
}
