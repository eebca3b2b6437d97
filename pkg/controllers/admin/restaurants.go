package admin

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucsky/cuid"

	"backend_hatid/pkg/editor"
	"backend_hatid/pkg/listing"
	"backend_hatid/pkg/mapview"
	"backend_hatid/pkg/models"
	"backend_hatid/pkg/store"
	"backend_hatid/pkg/utils"
)

func validRestaurantStatus(s string) bool {
	switch models.RestaurantStatus(s) {
	case models.RestaurantStatusOpen, models.RestaurantStatusBusy,
		models.RestaurantStatusClosed, models.RestaurantStatusMaintenance:
		return true
	}
	return false
}

// ListRestaurants returns the filtered view. Optional status and search
// query params update the user's list state before rendering.
func ListRestaurants(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	ctrl := v.restaurants
	if status, present := c.GetQuery("status"); present {
		if status != "" && status != listing.StatusAll && !validRestaurantStatus(status) {
			utils.BadRequestResponse(c, "Invalid restaurant status")
			return
		}
		ctrl.SetFilter(status)
	}
	if term, present := c.GetQuery("search"); present {
		ctrl.SetSearch(term)
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants": ctrl.Visible(),
		"filter":      ctrl.StatusFilter(),
		"search":      ctrl.SearchTerm(),
		"multiSelect": ctrl.MultiSelect(),
		"selected":    ctrl.Selected(),
	})
}

// GetRestaurant returns one restaurant by id
func GetRestaurant(c *gin.Context) {
	restaurant, ok := store.Data.Restaurants.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Restaurant not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// CreateRestaurant adds a new restaurant record
func CreateRestaurant(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name      string                  `json:"name" binding:"required"`
		Cuisine   string                  `json:"cuisine" binding:"required"`
		OwnerName string                  `json:"ownerName" binding:"required"`
		Email     string                  `json:"email" binding:"required,email"`
		Phone     string                  `json:"phone"`
		Address   string                  `json:"address"`
		Breakdown models.AddressBreakdown `json:"addressBreakdown"`
		Location  *models.Location        `json:"location"`
		ImageURL  string                  `json:"imageUrl"`
		Capacity  int                     `json:"capacity"`
		Permits   []string                `json:"permits"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Name, cuisine, owner name, and email are required")
		return
	}

	restaurant := models.Restaurant{
		ID:        cuid.New(),
		Name:      req.Name,
		Status:    models.RestaurantStatusOpen,
		Cuisine:   req.Cuisine,
		OwnerName: req.OwnerName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Breakdown: req.Breakdown,
		Location:  req.Location,
		ImageURL:  req.ImageURL,
		Capacity:  req.Capacity,
		Permits:   req.Permits,
	}
	store.Data.Restaurants.Insert(restaurant)
	store.Data.AppendAudit(user, models.AuditActionCreate, "restaurant", restaurant.ID, restaurant.Name)

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Restaurant created successfully",
		"restaurant": restaurant,
	})
}

// UpdateRestaurant commits field edits through an edit session. Only the
// provided fields change; the commit swaps the whole record.
func UpdateRestaurant(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name      *string                  `json:"name"`
		Cuisine   *string                  `json:"cuisine"`
		OwnerName *string                  `json:"ownerName"`
		Email     *string                  `json:"email"`
		Phone     *string                  `json:"phone"`
		Address   *string                  `json:"address"`
		Breakdown *models.AddressBreakdown `json:"addressBreakdown"`
		Location  *models.Location         `json:"location"`
		ImageURL  *string                  `json:"imageUrl"`
		Capacity  *int                     `json:"capacity"`
		Permits   []string                 `json:"permits"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	session, err := restaurantEditor.Open(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Restaurant not found")
		return
	}
	if err := session.EnterEdit(); err != nil {
		utils.NotFoundResponse(c, "Restaurant not found")
		return
	}

	working := session.Working()
	if req.Name != nil {
		working.Name = *req.Name
	}
	if req.Cuisine != nil {
		working.Cuisine = *req.Cuisine
	}
	if req.OwnerName != nil {
		working.OwnerName = *req.OwnerName
	}
	if req.Email != nil {
		working.Email = *req.Email
	}
	if req.Phone != nil {
		working.Phone = *req.Phone
	}
	if req.Address != nil {
		working.Address = *req.Address
	}
	if req.Breakdown != nil {
		working.Breakdown = *req.Breakdown
	}
	if req.Location != nil {
		working.Location = req.Location
	}
	if req.ImageURL != nil {
		working.ImageURL = *req.ImageURL
	}
	if req.Capacity != nil {
		working.Capacity = *req.Capacity
	}
	if req.Permits != nil {
		working.Permits = req.Permits
	}

	if err := session.Commit(); err != nil {
		utils.NotFoundResponse(c, "Restaurant not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionUpdate, "restaurant", working.ID, working.Name)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant updated successfully",
		"restaurant": working,
	})
}

// UpdateRestaurantStatus applies a quick status transition. Closing a
// restaurant is destructive (it zeroes active orders) so it requires
// confirmation.
func UpdateRestaurantStatus(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validRestaurantStatus(req.Status) {
		utils.BadRequestResponse(c, "Valid status is required")
		return
	}

	status := models.RestaurantStatus(req.Status)
	if status == models.RestaurantStatusClosed && !requireConfirm(c) {
		return
	}

	updated, err := restaurantEditor.QuickTransition(c.Param("id"), func(r *models.Restaurant) {
		r.Status = status
		if status == models.RestaurantStatusClosed {
			r.ActiveOrders = 0
		}
	})
	if err != nil {
		if errors.Is(err, editor.ErrNotFound) {
			utils.NotFoundResponse(c, "Restaurant not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionStatusChange, "restaurant", updated.ID, string(status))

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant status updated",
		"restaurant": updated,
	})
}

// BulkRestaurantStatus applies one status to every selected id. Missing ids
// are skipped, not errors.
func BulkRestaurantStatus(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		IDs    []string `json:"ids" binding:"required"`
		Status string   `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validRestaurantStatus(req.Status) {
		utils.BadRequestResponse(c, "ids and a valid status are required")
		return
	}

	status := models.RestaurantStatus(req.Status)
	if status == models.RestaurantStatusClosed && !requireConfirm(c) {
		return
	}

	updated := 0
	for _, id := range req.IDs {
		_, err := restaurantEditor.QuickTransition(id, func(r *models.Restaurant) {
			r.Status = status
			if status == models.RestaurantStatusClosed {
				r.ActiveOrders = 0
			}
		})
		if err == nil {
			updated++
		}
	}
	store.Data.AppendAudit(user, models.AuditActionStatusChange, "restaurant", "",
		fmt.Sprintf("bulk %s: %d of %d", status, updated, len(req.IDs)))

	c.JSON(http.StatusOK, gin.H{
		"message": "Bulk status applied",
		"updated": updated,
	})
}

// DeleteRestaurant removes the record after explicit confirmation
func DeleteRestaurant(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	if !requireConfirm(c) {
		return
	}

	id := c.Param("id")
	restaurant, found := store.Data.Restaurants.Get(id)
	if !found || !store.Data.Restaurants.Delete(id) {
		utils.NotFoundResponse(c, "Restaurant not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionDelete, "restaurant", id, restaurant.Name)

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
}

// ToggleRestaurantMultiSelect flips multi-select mode and clears selection
func ToggleRestaurantMultiSelect(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	enabled := v.restaurants.ToggleMultiSelect()
	c.JSON(http.StatusOK, gin.H{
		"multiSelect": enabled,
		"selected":    v.restaurants.Selected(),
	})
}

// ToggleRestaurantSelect toggles one visible row in or out of the selection
func ToggleRestaurantSelect(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	v.restaurants.ToggleSelect(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"selected": v.restaurants.Selected()})
}

// RestaurantMap returns the markers inside the viewport that pass the
// status filter, never the full dataset.
func RestaurantMap(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	var bounds mapview.Bounds
	if err := c.ShouldBindQuery(&bounds); err != nil {
		utils.BadRequestResponse(c, "Invalid viewport bounds")
		return
	}

	view := v.mapView("restaurants")
	statusFilter := c.DefaultQuery("status", v.restaurants.StatusFilter())
	visible := mapview.VisibleWithin(store.Data.Restaurants.List(),
		func(r models.Restaurant) *models.Location { return r.Location },
		func(r models.Restaurant) string { return string(r.Status) },
		bounds, statusFilter)

	c.JSON(http.StatusOK, gin.H{
		"restaurants": visible,
		"center":      view.Center,
		"zoom":        view.Zoom,
	})
}

// RecenterRestaurantMap restores the default viewport. The list filter and
// selection are untouched.
func RecenterRestaurantMap(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	view := v.mapView("restaurants")
	view.Recenter()
	c.JSON(http.StatusOK, gin.H{
		"center": view.Center,
		"zoom":   view.Zoom,
	})
}
