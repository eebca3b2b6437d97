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

func validAccommodationStatus(s string) bool {
	switch models.AccommodationStatus(s) {
	case models.AccommodationStatusAvailable, models.AccommodationStatusBooked,
		models.AccommodationStatusCleaning, models.AccommodationStatusMaintenance:
		return true
	}
	return false
}

// ListAccommodations returns the filtered accommodation view
func ListAccommodations(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	ctrl := v.accommodations
	if status, present := c.GetQuery("status"); present {
		if status != "" && status != listing.StatusAll && !validAccommodationStatus(status) {
			utils.BadRequestResponse(c, "Invalid accommodation status")
			return
		}
		ctrl.SetFilter(status)
	}
	if term, present := c.GetQuery("search"); present {
		ctrl.SetSearch(term)
	}

	c.JSON(http.StatusOK, gin.H{
		"accommodations": ctrl.Visible(),
		"filter":         ctrl.StatusFilter(),
		"search":         ctrl.SearchTerm(),
		"multiSelect":    ctrl.MultiSelect(),
		"selected":       ctrl.Selected(),
	})
}

// GetAccommodation returns one accommodation by id
func GetAccommodation(c *gin.Context) {
	accommodation, ok := store.Data.Accommodations.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Accommodation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accommodation": accommodation})
}

// CreateAccommodation adds a new accommodation record
func CreateAccommodation(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name        string           `json:"name" binding:"required"`
		Kind        string           `json:"kind" binding:"required"`
		Address     string           `json:"address"`
		Location    *models.Location `json:"location"`
		ImageURL    string           `json:"imageUrl"`
		Capacity    int              `json:"capacity"`
		NightlyRate float64          `json:"nightlyRate"`
		Permits     []string         `json:"permits"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Name and kind are required")
		return
	}

	accommodation := models.Accommodation{
		ID:          cuid.New(),
		Name:        req.Name,
		Status:      models.AccommodationStatusAvailable,
		Kind:        req.Kind,
		Address:     req.Address,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Capacity:    req.Capacity,
		NightlyRate: req.NightlyRate,
		Permits:     req.Permits,
	}
	store.Data.Accommodations.Insert(accommodation)
	store.Data.AppendAudit(user, models.AuditActionCreate, "accommodation", accommodation.ID, accommodation.Name)

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Accommodation created successfully",
		"accommodation": accommodation,
	})
}

// UpdateAccommodation commits field edits through an edit session
func UpdateAccommodation(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name        *string          `json:"name"`
		Kind        *string          `json:"kind"`
		Address     *string          `json:"address"`
		Location    *models.Location `json:"location"`
		ImageURL    *string          `json:"imageUrl"`
		Capacity    *int             `json:"capacity"`
		NightlyRate *float64         `json:"nightlyRate"`
		Permits     []string         `json:"permits"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	session, err := accommodationEditor.Open(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Accommodation not found")
		return
	}
	if err := session.EnterEdit(); err != nil {
		utils.NotFoundResponse(c, "Accommodation not found")
		return
	}

	working := session.Working()
	if req.Name != nil {
		working.Name = *req.Name
	}
	if req.Kind != nil {
		working.Kind = *req.Kind
	}
	if req.Address != nil {
		working.Address = *req.Address
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
	if req.NightlyRate != nil {
		working.NightlyRate = *req.NightlyRate
	}
	if req.Permits != nil {
		working.Permits = req.Permits
	}

	if err := session.Commit(); err != nil {
		utils.NotFoundResponse(c, "Accommodation not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionUpdate, "accommodation", working.ID, working.Name)

	c.JSON(http.StatusOK, gin.H{
		"message":       "Accommodation updated successfully",
		"accommodation": working,
	})
}

// UpdateAccommodationStatus applies a quick status transition. Booking may
// carry the guest name; any transition away from BOOKED clears it.
func UpdateAccommodationStatus(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Status string  `json:"status" binding:"required"`
		Guest  *string `json:"guest"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validAccommodationStatus(req.Status) {
		utils.BadRequestResponse(c, "Valid status is required")
		return
	}

	status := models.AccommodationStatus(req.Status)
	updated, err := accommodationEditor.QuickTransition(c.Param("id"), func(a *models.Accommodation) {
		a.Status = status
		if status == models.AccommodationStatusBooked {
			if req.Guest != nil {
				a.CurrentGuest = req.Guest
			}
		} else {
			a.CurrentGuest = nil
		}
	})
	if err != nil {
		if errors.Is(err, editor.ErrNotFound) {
			utils.NotFoundResponse(c, "Accommodation not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionStatusChange, "accommodation", updated.ID, string(status))

	c.JSON(http.StatusOK, gin.H{
		"message":       "Accommodation status updated",
		"accommodation": updated,
	})
}

// DeleteAccommodation removes the record after explicit confirmation
func DeleteAccommodation(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	if !requireConfirm(c) {
		return
	}

	id := c.Param("id")
	accommodation, found := store.Data.Accommodations.Get(id)
	if !found || !store.Data.Accommodations.Delete(id) {
		utils.NotFoundResponse(c, "Accommodation not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionDelete, "accommodation", id, accommodation.Name)

	c.JSON(http.StatusOK, gin.H{"message": "Accommodation deleted successfully"})
}

// ToggleAccommodationMultiSelect flips multi-select mode and clears
// selection
func ToggleAccommodationMultiSelect(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	enabled := v.accommodations.ToggleMultiSelect()
	c.JSON(http.StatusOK, gin.H{
		"multiSelect": enabled,
		"selected":    v.accommodations.Selected(),
	})
}

// ToggleAccommodationSelect toggles one visible row in or out of the
// selection
func ToggleAccommodationSelect(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	v.accommodations.ToggleSelect(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"selected": v.accommodations.Selected()})
}

// AccommodationMap returns the markers inside the viewport that pass the
// status filter
func AccommodationMap(c *gin.Context) {
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

	view := v.mapView("accommodations")
	statusFilter := c.DefaultQuery("status", v.accommodations.StatusFilter())
	visible := mapview.VisibleWithin(store.Data.Accommodations.List(),
		func(a models.Accommodation) *models.Location { return a.Location },
		func(a models.Accommodation) string { return string(a.Status) },
		bounds, statusFilter)

	c.JSON(http.StatusOK, gin.H{
		"accommodations": visible,
		"center":         view.Center,
		"zoom":           view.Zoom,
	})
}

// RecenterAccommodationMap restores the default viewport
func RecenterAccommodationMap(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	view := v.mapView("accommodations")
	view.Recenter()
	c.JSON(http.StatusOK, gin.H{
		"center": view.Center,
		"zoom":   view.Zoom,
	})
}
