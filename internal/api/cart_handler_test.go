package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRequiresAuth(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/cart", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "fail", decodeEnvelope(t, w)["status"])
}

func TestCartFlow(t *testing.T) {
	router := newTestServer(t)
	token := registerAndLogin(t, router)

	// Empty cart.
	w := doJSON(router, http.MethodGet, "/api/cart", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeEnvelope(t, w)["data"].(map[string]any)["cart"].(map[string]any)
	assert.Empty(t, cart["items"])

	// Add twice, quantities merge.
	w = doJSON(router, http.MethodPost, "/api/cart/add", map[string]any{"productId": "prod_1", "quantity": 2}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(router, http.MethodPost, "/api/cart/add", map[string]any{"productId": "prod_1"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	cart = decodeEnvelope(t, w)["data"].(map[string]any)["cart"].(map[string]any)
	items := cart["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, float64(3), item["quantity"])

	totals := cart["totals"].(map[string]any)
	assert.Equal(t, 135.0, totals["subtotal"])
	assert.Equal(t, 27.0, totals["tax"])
	assert.Equal(t, 0.0, totals["shipping"])
	assert.Equal(t, 162.0, totals["total"])

	// Update quantity, then remove.
	itemID := item["id"].(string)
	w = doJSON(router, http.MethodPut, "/api/cart/update/"+itemID, map[string]any{"quantity": 1}, token)
	require.Equal(t, http.StatusOK, w.Code)
	cart = decodeEnvelope(t, w)["data"].(map[string]any)["cart"].(map[string]any)
	totals = cart["totals"].(map[string]any)
	assert.Equal(t, 45.0, totals["subtotal"])
	assert.Equal(t, 9.99, totals["shipping"], "below 100 pays flat shipping")

	w = doJSON(router, http.MethodDelete, "/api/cart/remove/"+itemID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	cart = decodeEnvelope(t, w)["data"].(map[string]any)["cart"].(map[string]any)
	assert.Empty(t, cart["items"])
}

func TestCartAddUnknownProduct(t *testing.T) {
	router := newTestServer(t)
	token := registerAndLogin(t, router)

	w := doJSON(router, http.MethodPost, "/api/cart/add", map[string]any{"productId": "prod_missing"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartClearEndpoint(t *testing.T) {
	router := newTestServer(t)
	token := registerAndLogin(t, router)

	w := doJSON(router, http.MethodPost, "/api/cart/add", map[string]any{"productId": "prod_5"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/cart/clear", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/cart", nil, token)
	cart := decodeEnvelope(t, w)["data"].(map[string]any)["cart"].(map[string]any)
	assert.Empty(t, cart["items"])
}
