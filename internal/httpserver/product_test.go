package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmtotable/storefront/internal/models"
	"github.com/farmtotable/storefront/internal/repo"
	"github.com/farmtotable/storefront/internal/transport"
)

func tomatoRequest() transport.ProductRequest {
	return transport.ProductRequest{
		Name:        "Tomato",
		TeluguName:  "టమాటో",
		Description: "fresh",
		Category:    "veg",
		Image:       "t.png",
		Variants: []transport.VariantPayload{
			{VariantName: "1kg", Price: 40, Stock: 100},
		},
	}
}

func TestCreateProduct_ReturnsGeneratedID(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(t, http.MethodPost, "/products", tomatoRequest())
	require.NoError(t, env.P.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	id, err := primitive.ObjectIDFromHex(resp.ID)
	require.NoError(t, err)
	_, ok := env.Store.products[id]
	assert.True(t, ok)
}

func TestGetProducts_JoinsVariants(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(t, http.MethodPost, "/products", tomatoRequest())
	require.NoError(t, env.P.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = env.doJSONRequest(t, http.MethodGet, "/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.ProductWithVariants
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Tomato", listed[0].Name)
	assert.Equal(t, "టమాటో", listed[0].TeluguName)
	require.Len(t, listed[0].Variants, 1)
	assert.Equal(t, listed[0].ID, listed[0].Variants[0].ProductID)
	assert.EqualValues(t, 40, listed[0].Variants[0].Price)
}

func TestGetProducts_EmptyStoreReturnsEmptyArray(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(t, http.MethodGet, "/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetProduct_MalformedID(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(t, http.MethodGet, "/products/nope", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := env.P.GetProduct(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestGetProduct_NotFound(t *testing.T) {
	env := newTestEnv(t)

	id := primitive.NewObjectID().Hex()
	_, c := env.doJSONRequest(t, http.MethodGet, "/products/"+id, nil)
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := env.P.GetProduct(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestCreateProduct_MissingRequiredFields(t *testing.T) {
	env := newTestEnv(t)

	req := tomatoRequest()
	req.Name = ""

	_, c := env.doJSONRequest(t, http.MethodPost, "/products", req)
	err := env.P.CreateProduct(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestCreateProduct_StoreNotAcknowledged(t *testing.T) {
	env := newTestEnv(t)
	env.Store.insertProductErr = repo.ErrNotAcknowledged

	_, c := env.doJSONRequest(t, http.MethodPost, "/products", tomatoRequest())
	err := env.P.CreateProduct(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpCode(t, err))
}

func TestCreateProduct_TransactionFailure(t *testing.T) {
	env := newTestEnv(t)
	env.Store.insertProductErr = errBoom

	_, c := env.doJSONRequest(t, http.MethodPost, "/products", tomatoRequest())
	err := env.P.CreateProduct(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestUpdateProduct_ReplacesVariantSet(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(t, http.MethodPost, "/products", tomatoRequest())
	require.NoError(t, env.P.CreateProduct(c))

	var created transport.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	update := tomatoRequest()
	update.Variants = []transport.VariantPayload{
		{VariantName: "250g", Price: 12, Stock: 500},
		{VariantName: "500g", Price: 22, Stock: 250},
	}

	rec, c = env.doJSONRequest(t, http.MethodPut, "/products/"+created.ID, update)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, env.P.UpdateProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, env.Store.variants, 2)
	for _, v := range env.Store.variants {
		assert.NotEqual(t, "1kg", v.VariantName)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	env := newTestEnv(t)

	id := primitive.NewObjectID().Hex()
	_, c := env.doJSONRequest(t, http.MethodPut, "/products/"+id, tomatoRequest())
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := env.P.UpdateProduct(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestDeleteProduct_CascadesAndAccepts(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(t, http.MethodPost, "/products", tomatoRequest())
	require.NoError(t, env.P.CreateProduct(c))

	var created transport.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec, c = env.doJSONRequest(t, http.MethodDelete, "/products/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, env.P.DeleteProduct(c))
	require.Equal(t, http.StatusAccepted, rec.Code)

	assert.Empty(t, env.Store.products)
	assert.Empty(t, env.Store.variants)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	env := newTestEnv(t)

	id := primitive.NewObjectID().Hex()
	_, c := env.doJSONRequest(t, http.MethodDelete, "/products/"+id, nil)
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := env.P.DeleteProduct(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}
