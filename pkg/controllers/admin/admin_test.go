package admin_test

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

	"backend_hatid/pkg/config"
	"backend_hatid/pkg/models"
	"backend_hatid/pkg/routes"
	"backend_hatid/pkg/store"
	"backend_hatid/pkg/utils"
)

var userSeq int

// setup reseeds the store, registers the admin routes, and returns a router
// plus a bearer token for a fresh superadmin account. A fresh account per
// test keeps the per-user list state isolated.
func setup(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiresIn: "7d"}
	store.Init()

	userSeq++
	id := fmt.Sprintf("test-admin-%d", userSeq)
	store.Data.Users.Insert(models.User{
		ID:        id,
		Name:      "Test Operator",
		Email:     id + "@hatidhub.ph",
		Role:      models.RoleSuperAdmin,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now(),
	})
	token, err := utils.GenerateToken(id, id+"@hatidhub.ph", models.RoleSuperAdmin)
	require.NoError(t, err)

	router := gin.New()
	routes.RegisterAdminRoutes(router)
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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	out := make(map[string]json.RawMessage)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListRestaurantsRequiresAuth(t *testing.T) {
	router, _ := setup(t)

	w := doRequest(router, http.MethodGet, "/api/admin/restaurants/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMaintenanceFilterOnSeedYieldsExactlyOne(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodGet, "/api/admin/restaurants/?status=MAINTENANCE", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	var restaurants []models.Restaurant
	require.NoError(t, json.Unmarshal(body["restaurants"], &restaurants))
	require.Len(t, restaurants, 1)
	assert.Equal(t, models.RestaurantStatusMaintenance, restaurants[0].Status)
}

func TestRestaurantFilterAndSearchAreConjunctive(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodGet, "/api/admin/restaurants/?status=OPEN&search=zzz-no-match", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	var restaurants []models.Restaurant
	require.NoError(t, json.Unmarshal(body["restaurants"], &restaurants))
	assert.Empty(t, restaurants)
}

func TestInvalidStatusFilterRejected(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodGet, "/api/admin/restaurants/?status=SLEEPING", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRestaurantRequiresConfirmation(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodDelete, "/api/admin/restaurants/resto-1", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	var msg string
	require.NoError(t, json.Unmarshal(body["message"], &msg))
	assert.Equal(t, "Confirmation required. Pass confirm=true to proceed.", msg)
	_, stillThere := store.Data.Restaurants.Get("resto-1")
	assert.True(t, stillThere)

	w = doRequest(router, http.MethodDelete, "/api/admin/restaurants/resto-1?confirm=true", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	_, stillThere = store.Data.Restaurants.Get("resto-1")
	assert.False(t, stillThere)
}

func TestCloseRestaurantZeroesActiveOrders(t *testing.T) {
	router, token := setup(t)

	before, ok := store.Data.Restaurants.Get("resto-1")
	require.True(t, ok)
	require.Greater(t, before.ActiveOrders, 0)

	w := doRequest(router, http.MethodPatch, "/api/admin/restaurants/resto-1/status?confirm=true", token,
		gin.H{"status": "CLOSED"})
	require.Equal(t, http.StatusOK, w.Code)

	after, ok := store.Data.Restaurants.Get("resto-1")
	require.True(t, ok)
	assert.Equal(t, models.RestaurantStatusClosed, after.Status)
	assert.Zero(t, after.ActiveOrders)
}

func TestCloseRestaurantRequiresConfirmation(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodPatch, "/api/admin/restaurants/resto-1/status", token,
		gin.H{"status": "CLOSED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	r, _ := store.Data.Restaurants.Get("resto-1")
	assert.NotEqual(t, models.RestaurantStatusClosed, r.Status)
}

func TestSuspendRiderRequiresConfirmation(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodPatch, "/api/admin/riders/rider-1/status", token,
		gin.H{"status": "SUSPENDED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPatch, "/api/admin/riders/rider-1/status?confirm=true", token,
		gin.H{"status": "SUSPENDED"})
	assert.Equal(t, http.StatusOK, w.Code)

	rider, _ := store.Data.Riders.Get("rider-1")
	assert.Equal(t, models.RiderStatusSuspended, rider.Status)
}

func TestSuspendedRiderOnlyLeavesViaReinstate(t *testing.T) {
	router, token := setup(t)

	// rider-4 is seeded SUSPENDED
	w := doRequest(router, http.MethodPatch, "/api/admin/riders/rider-4/status", token,
		gin.H{"status": "AVAILABLE"})
	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	var msg string
	require.NoError(t, json.Unmarshal(body["message"], &msg))
	assert.Equal(t, "Rider is suspended. Use the reinstate action.", msg)

	w = doRequest(router, http.MethodPost, "/api/admin/riders/rider-4/reinstate", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	rider, _ := store.Data.Riders.Get("rider-4")
	assert.Equal(t, models.RiderStatusOffline, rider.Status)
}

func TestAccommodationLeavingBookedClearsGuest(t *testing.T) {
	router, token := setup(t)

	before, ok := store.Data.Accommodations.Get("accom-2")
	require.True(t, ok)
	require.Equal(t, models.AccommodationStatusBooked, before.Status)
	require.NotNil(t, before.CurrentGuest)

	w := doRequest(router, http.MethodPatch, "/api/admin/accommodations/accom-2/status", token,
		gin.H{"status": "CLEANING"})
	require.Equal(t, http.StatusOK, w.Code)

	after, _ := store.Data.Accommodations.Get("accom-2")
	assert.Equal(t, models.AccommodationStatusCleaning, after.Status)
	assert.Nil(t, after.CurrentGuest)
}

func TestBulkStatusAppliesToAllIds(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodPost, "/api/admin/stores/bulk-status/", token,
		gin.H{"ids": []string{"store-1", "store-2", "ghost"}, "status": "RESTOCKING"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	var updated int
	require.NoError(t, json.Unmarshal(body["updated"], &updated))
	assert.Equal(t, 2, updated)

	s1, _ := store.Data.Stores.Get("store-1")
	assert.Equal(t, models.StoreStatusRestocking, s1.Status)
}

func TestMutationsLandInAuditLog(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodPatch, "/api/admin/stores/store-1/status", token,
		gin.H{"status": "BUSY"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/admin/audit-log/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	var entries []models.AuditLogEntry
	require.NoError(t, json.Unmarshal(body["entries"], &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, models.AuditActionStatusChange, entries[0].Action)
	assert.Equal(t, "store-1", entries[0].TargetID)
}

func TestDashboardOverviewCounts(t *testing.T) {
	router, token := setup(t)

	w := doRequest(router, http.MethodGet, "/api/admin/dashboard/overview/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	var totalRestaurants int
	require.NoError(t, json.Unmarshal(body["totalRestaurants"], &totalRestaurants))
	assert.Equal(t, 6, totalRestaurants)
}

func TestStaffCannotDelete(t *testing.T) {
	router, _ := setup(t)

	token, err := utils.GenerateToken("user-3", "staff@hatidhub.ph", models.RoleStaff)
	require.NoError(t, err)

	w := doRequest(router, http.MethodDelete, "/api/admin/restaurants/resto-2?confirm=true", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	_, stillThere := store.Data.Restaurants.Get("resto-2")
	assert.True(t, stillThere)
}
