package panel_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend_hatid/pkg/cart"
	"backend_hatid/pkg/config"
	"backend_hatid/pkg/models"
	"backend_hatid/pkg/routes"
	"backend_hatid/pkg/store"
	"backend_hatid/pkg/utils"
)

var userSeq int

// setup reseeds the store, registers the panel routes, and returns a router
// plus a token for a fresh staff account. A fresh account per test keeps the
// per-user cart isolated.
func setup(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiresIn: "7d"}
	store.Init()

	userSeq++
	id := fmt.Sprintf("test-staff-%d", userSeq)
	store.Data.Users.Insert(models.User{
		ID:        id,
		Name:      "Test Staff",
		Email:     id + "@hatidhub.ph",
		Role:      models.RoleStaff,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now(),
	})
	token, err := utils.GenerateToken(id, id+"@hatidhub.ph", models.RoleStaff)
	require.NoError(t, err)

	router := gin.New()
	routes.RegisterPanelRoutes(router)
	return router, token
}

func doRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type cartBody struct {
	StoreID string            `json:"storeId"`
	Items   []models.CartItem `json:"items"`
	Summary cart.Totals       `json:"summary"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartBody {
	t.Helper()
	var body cartBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCartRequiresAuth(t *testing.T) {
	router, _ := setup(t)

	w := doRequest(router, http.MethodGet, "/api/panel/cart/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddingSameProductTwiceIncrementsOneLine(t *testing.T) {
	router, token := setup(t)

	for i := 0; i < 2; i++ {
		w := doRequest(router, http.MethodPost, "/api/panel/cart/items/", token,
			gin.H{"productId": "7"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(router, http.MethodGet, "/api/panel/cart/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeCart(t, w)

	assert.Equal(t, "store-1", body.StoreID)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, cart.Totals{Subtotal: 1120.00, Tax: 56.00, Total: 1176.00}, body.Summary)
}

func TestAddFromDifferentStoreConflicts(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodPost, "/api/panel/cart/items/", token,
		gin.H{"productId": "7"})
	require.Equal(t, http.StatusOK, w.Code)

	// product 4 belongs to store-2
	w = doRequest(router, http.MethodPost, "/api/panel/cart/items/", token,
		gin.H{"productId": "4"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestQuantityDeltaClampsAtOne(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodPost, "/api/panel/cart/items/", token,
		gin.H{"productId": "7"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPatch, "/api/panel/cart/items/7", token,
		gin.H{"delta": -5})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeCart(t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 1, body.Items[0].Quantity)
}

func TestSwitchContextRebuildsFromLatestOrder(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodPost, "/api/panel/cart/switch-context/", token,
		gin.H{"storeId": "store-1"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeCart(t, w)
	assert.Equal(t, "store-1", body.StoreID)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "7", body.Items[0].ProductID)
	assert.Equal(t, 1176.00, body.Summary.Total)

	// store-4 has no order history
	w = doRequest(router, http.MethodPost, "/api/panel/cart/switch-context/", token,
		gin.H{"storeId": "store-4"})
	require.Equal(t, http.StatusOK, w.Code)

	body = decodeCart(t, w)
	assert.Equal(t, "store-4", body.StoreID)
	assert.Empty(t, body.Items)
	assert.Equal(t, cart.Totals{}, body.Summary)
}

func TestCheckoutCreatesPendingOrderAndClearsCart(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodPost, "/api/panel/cart/items/", token,
		gin.H{"productId": "7"})
	require.Equal(t, http.StatusOK, w.Code)

	ordersBefore := store.Data.Orders.Len()

	w = doRequest(router, http.MethodPost, "/api/panel/cart/checkout/", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.OrderStatusPending, body.Order.Status)
	assert.Equal(t, "store-1", body.Order.StoreID)
	assert.Equal(t, 588.00, body.Order.Total)
	assert.NotEmpty(t, body.Order.ID)
	assert.Equal(t, ordersBefore+1, store.Data.Orders.Len())

	w = doRequest(router, http.MethodGet, "/api/panel/cart/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestCheckoutOnEmptyCartRejected(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodPost, "/api/panel/cart/checkout/", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
