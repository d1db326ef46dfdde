package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitlane-backend-go/internal/db"
)

func TestListProductsEndpoint(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "success", env["status"])
	data := env["data"].(map[string]any)
	assert.Equal(t, float64(8), data["total"])
	assert.Len(t, data["products"], 8)
}

func TestListProductsQueryParams(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/products?category=Casquettes&sortBy=price-asc&limit=1&page=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(2), data["totalPages"])

	products := data["products"].([]any)
	require.Len(t, products, 1)
	// Price-asc: Alpine (42) first, Red Bull (45) on page 2.
	assert.Equal(t, "prod_1", products[0].(map[string]any)["id"])
}

func TestGetProductEndpoint(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/products/prod_3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	product := decodeEnvelope(t, w)["data"].(map[string]any)["product"].(map[string]any)
	assert.Equal(t, "Veste Ferrari Racing", product["name"])

	w = doJSON(router, http.MethodGet, "/api/products/prod_missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "fail", decodeEnvelope(t, w)["status"])
}

func TestCategoriesEndpoint(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/products/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	categories := decodeEnvelope(t, w)["data"].(map[string]any)["categories"].([]any)
	assert.Len(t, categories, 6)
}

func TestAdminProductEndpoints(t *testing.T) {
	router := newTestServer(t)
	adminToken := loginAs(t, router, db.SeedAdminEmail, db.SeedAdminPassword)
	userToken := registerAndLogin(t, router)

	body := map[string]any{
		"name":        "Gants Racing Pro",
		"category":    "Accessoires",
		"description": "Gants de course en cuir.",
		"price":       89,
		"stock":       40,
	}

	// Unauthenticated and non-admin callers are rejected.
	w := doJSON(router, http.MethodPost, "/api/admin/products", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(router, http.MethodPost, "/api/admin/products", body, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/admin/products", body, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	product := decodeEnvelope(t, w)["data"].(map[string]any)["product"].(map[string]any)
	id := product["id"].(string)

	body["price"] = 79
	w = doJSON(router, http.MethodPut, "/api/admin/products/"+id, body, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/admin/products/"+id, nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/products/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminProductValidation(t *testing.T) {
	router := newTestServer(t)
	adminToken := loginAs(t, router, db.SeedAdminEmail, db.SeedAdminPassword)

	w := doJSON(router, http.MethodPost, "/api/admin/products", map[string]any{
		"category": "Accessoires",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "fail", decodeEnvelope(t, w)["status"])
}
