package admin

import (
	"errors"
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

func validRiderStatus(s string) bool {
	switch models.RiderStatus(s) {
	case models.RiderStatusAvailable, models.RiderStatusOnDelivery,
		models.RiderStatusOffline, models.RiderStatusSuspended:
		return true
	}
	return false
}

func validVehicleType(s string) bool {
	switch models.VehicleType(s) {
	case models.VehicleTypeMotorcycle, models.VehicleTypeBicycle, models.VehicleTypeCar:
		return true
	}
	return false
}

// ListRiders returns the filtered rider view
func ListRiders(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	ctrl := v.riders
	if status, present := c.GetQuery("status"); present {
		if status != "" && status != listing.StatusAll && !validRiderStatus(status) {
			utils.BadRequestResponse(c, "Invalid rider status")
			return
		}
		ctrl.SetFilter(status)
	}
	if term, present := c.GetQuery("search"); present {
		ctrl.SetSearch(term)
	}

	c.JSON(http.StatusOK, gin.H{
		"riders":      ctrl.Visible(),
		"filter":      ctrl.StatusFilter(),
		"search":      ctrl.SearchTerm(),
		"multiSelect": ctrl.MultiSelect(),
		"selected":    ctrl.Selected(),
	})
}

// GetRider returns one rider with the rating distribution expanded into
// per-star percentages.
func GetRider(c *gin.Context) {
	rider, ok := store.Data.Riders.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Rider not found")
		return
	}

	distribution := make(map[int]gin.H, 5)
	for star := 1; star <= 5; star++ {
		count := rider.RatingBuckets[star]
		pct := 0.0
		if rider.RatingCount > 0 {
			pct = float64(count) / float64(rider.RatingCount) * 100
		}
		distribution[star] = gin.H{"count": count, "percent": pct}
	}

	c.JSON(http.StatusOK, gin.H{
		"rider":              rider,
		"ratingDistribution": distribution,
	})
}

// CreateRider adds a new rider record
func CreateRider(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name      string                  `json:"name" binding:"required"`
		Email     string                  `json:"email" binding:"required,email"`
		Phone     string                  `json:"phone" binding:"required"`
		Vehicle   string                  `json:"vehicle" binding:"required"`
		Address   string                  `json:"address"`
		Breakdown models.AddressBreakdown `json:"addressBreakdown"`
		Location  *models.Location        `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validVehicleType(req.Vehicle) {
		utils.BadRequestResponse(c, "Name, email, phone, and a valid vehicle are required")
		return
	}

	rider := models.Rider{
		ID:            cuid.New(),
		Name:          req.Name,
		Status:        models.RiderStatusOffline,
		Email:         req.Email,
		Phone:         req.Phone,
		Vehicle:       models.VehicleType(req.Vehicle),
		Address:       req.Address,
		Breakdown:     req.Breakdown,
		Location:      req.Location,
		RatingBuckets: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	store.Data.Riders.Insert(rider)
	store.Data.AppendAudit(user, models.AuditActionCreate, "rider", rider.ID, rider.Name)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Rider created successfully",
		"rider":   rider,
	})
}

// UpdateRider commits field edits through an edit session
func UpdateRider(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name      *string                  `json:"name"`
		Email     *string                  `json:"email"`
		Phone     *string                  `json:"phone"`
		Vehicle   *string                  `json:"vehicle"`
		Address   *string                  `json:"address"`
		Breakdown *models.AddressBreakdown `json:"addressBreakdown"`
		Location  *models.Location         `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if req.Vehicle != nil && !validVehicleType(*req.Vehicle) {
		utils.BadRequestResponse(c, "Invalid vehicle type")
		return
	}

	session, err := riderEditor.Open(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Rider not found")
		return
	}
	if err := session.EnterEdit(); err != nil {
		utils.NotFoundResponse(c, "Rider not found")
		return
	}

	working := session.Working()
	if req.Name != nil {
		working.Name = *req.Name
	}
	if req.Email != nil {
		working.Email = *req.Email
	}
	if req.Phone != nil {
		working.Phone = *req.Phone
	}
	if req.Vehicle != nil {
		working.Vehicle = models.VehicleType(*req.Vehicle)
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

	if err := session.Commit(); err != nil {
		utils.NotFoundResponse(c, "Rider not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionUpdate, "rider", working.ID, working.Name)

	c.JSON(http.StatusOK, gin.H{
		"message": "Rider updated successfully",
		"rider":   working,
	})
}

// UpdateRiderStatus applies a quick status transition. Suspension requires
// confirmation; a suspended rider only leaves that state through the
// explicit reinstate endpoint.
func UpdateRiderStatus(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validRiderStatus(req.Status) {
		utils.BadRequestResponse(c, "Valid status is required")
		return
	}

	status := models.RiderStatus(req.Status)
	if status == models.RiderStatusSuspended && !requireConfirm(c) {
		return
	}

	current, found := store.Data.Riders.Get(c.Param("id"))
	if !found {
		utils.NotFoundResponse(c, "Rider not found")
		return
	}
	if current.Status == models.RiderStatusSuspended && status != models.RiderStatusSuspended {
		utils.ConflictResponse(c, "Rider is suspended. Use the reinstate action.")
		return
	}

	updated, err := riderEditor.QuickTransition(current.ID, func(r *models.Rider) {
		r.Status = status
	})
	if err != nil {
		if errors.Is(err, editor.ErrNotFound) {
			utils.NotFoundResponse(c, "Rider not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionStatusChange, "rider", updated.ID, string(status))

	c.JSON(http.StatusOK, gin.H{
		"message": "Rider status updated",
		"rider":   updated,
	})
}

// ReinstateRider lifts a suspension, returning the rider to OFFLINE
func ReinstateRider(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	current, found := store.Data.Riders.Get(c.Param("id"))
	if !found {
		utils.NotFoundResponse(c, "Rider not found")
		return
	}
	if current.Status != models.RiderStatusSuspended {
		utils.ConflictResponse(c, "Rider is not suspended")
		return
	}

	updated, err := riderEditor.QuickTransition(current.ID, func(r *models.Rider) {
		r.Status = models.RiderStatusOffline
	})
	if err != nil {
		utils.NotFoundResponse(c, "Rider not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionStatusChange, "rider", updated.ID, "reinstated")

	c.JSON(http.StatusOK, gin.H{
		"message": "Rider reinstated",
		"rider":   updated,
	})
}

// DeleteRider removes the record after explicit confirmation
func DeleteRider(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	if !requireConfirm(c) {
		return
	}

	id := c.Param("id")
	rider, found := store.Data.Riders.Get(id)
	if !found || !store.Data.Riders.Delete(id) {
		utils.NotFoundResponse(c, "Rider not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionDelete, "rider", id, rider.Name)

	c.JSON(http.StatusOK, gin.H{"message": "Rider deleted successfully"})
}

// ToggleRiderMultiSelect flips multi-select mode and clears selection
func ToggleRiderMultiSelect(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	enabled := v.riders.ToggleMultiSelect()
	c.JSON(http.StatusOK, gin.H{
		"multiSelect": enabled,
		"selected":    v.riders.Selected(),
	})
}

// ToggleRiderSelect toggles one visible row in or out of the selection
func ToggleRiderSelect(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	v.riders.ToggleSelect(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"selected": v.riders.Selected()})
}

// RiderMap returns the markers inside the viewport that pass the status
// filter
func RiderMap(c *gin.Context) {
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

	view := v.mapView("riders")
	statusFilter := c.DefaultQuery("status", v.riders.StatusFilter())
	visible := mapview.VisibleWithin(store.Data.Riders.List(),
		func(r models.Rider) *models.Location { return r.Location },
		func(r models.Rider) string { return string(r.Status) },
		bounds, statusFilter)

	c.JSON(http.StatusOK, gin.H{
		"riders": visible,
		"center": view.Center,
		"zoom":   view.Zoom,
	})
}

// RecenterRiderMap restores the default viewport
func RecenterRiderMap(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	view := v.mapView("riders")
	view.Recenter()
	c.JSON(http.StatusOK, gin.H{
		"center": view.Center,
		"zoom":   view.Zoom,
	})
}
