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

func validStoreStatus(s string) bool {
	switch models.StoreStatus(s) {
	case models.StoreStatusOpen, models.StoreStatusBusy,
		models.StoreStatusClosed, models.StoreStatusRestocking:
		return true
	}
	return false
}

// ListStores returns the filtered store view
func ListStores(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	ctrl := v.stores
	if status, present := c.GetQuery("status"); present {
		if status != "" && status != listing.StatusAll && !validStoreStatus(status) {
			utils.BadRequestResponse(c, "Invalid store status")
			return
		}
		ctrl.SetFilter(status)
	}
	if term, present := c.GetQuery("search"); present {
		ctrl.SetSearch(term)
	}

	c.JSON(http.StatusOK, gin.H{
		"stores":      ctrl.Visible(),
		"filter":      ctrl.StatusFilter(),
		"search":      ctrl.SearchTerm(),
		"multiSelect": ctrl.MultiSelect(),
		"selected":    ctrl.Selected(),
	})
}

// GetStore returns one store with its product catalog
func GetStore(c *gin.Context) {
	st, ok := store.Data.Stores.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Store not found")
		return
	}

	products := make([]models.Product, 0)
	for _, p := range store.Data.Products.List() {
		if p.StoreID == st.ID {
			products = append(products, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"store":    st,
		"products": products,
	})
}

// CreateStore adds a new store record
func CreateStore(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name           string                  `json:"name" binding:"required"`
		Category       string                  `json:"category" binding:"required"`
		OwnerName      string                  `json:"ownerName" binding:"required"`
		Email          string                  `json:"email" binding:"required,email"`
		Phone          string                  `json:"phone"`
		Address        string                  `json:"address"`
		Breakdown      models.AddressBreakdown `json:"addressBreakdown"`
		Location       *models.Location        `json:"location"`
		ImageURL       string                  `json:"imageUrl"`
		InventoryLevel int                     `json:"inventoryLevel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Name, category, owner name, and email are required")
		return
	}

	st := models.Store{
		ID:             cuid.New(),
		Name:           req.Name,
		Status:         models.StoreStatusOpen,
		Category:       req.Category,
		OwnerName:      req.OwnerName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Breakdown:      req.Breakdown,
		Location:       req.Location,
		ImageURL:       req.ImageURL,
		InventoryLevel: req.InventoryLevel,
	}
	store.Data.Stores.Insert(st)
	store.Data.AppendAudit(user, models.AuditActionCreate, "store", st.ID, st.Name)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Store created successfully",
		"store":   st,
	})
}

// UpdateStore commits field edits through an edit session
func UpdateStore(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name           *string                  `json:"name"`
		Category       *string                  `json:"category"`
		OwnerName      *string                  `json:"ownerName"`
		Email          *string                  `json:"email"`
		Phone          *string                  `json:"phone"`
		Address        *string                  `json:"address"`
		Breakdown      *models.AddressBreakdown `json:"addressBreakdown"`
		Location       *models.Location         `json:"location"`
		ImageURL       *string                  `json:"imageUrl"`
		InventoryLevel *int                     `json:"inventoryLevel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	session, err := storeEditor.Open(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Store not found")
		return
	}
	if err := session.EnterEdit(); err != nil {
		utils.NotFoundResponse(c, "Store not found")
		return
	}

	working := session.Working()
	if req.Name != nil {
		working.Name = *req.Name
	}
	if req.Category != nil {
		working.Category = *req.Category
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
	if req.InventoryLevel != nil {
		working.InventoryLevel = *req.InventoryLevel
	}

	if err := session.Commit(); err != nil {
		utils.NotFoundResponse(c, "Store not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionUpdate, "store", working.ID, working.Name)

	c.JSON(http.StatusOK, gin.H{
		"message": "Store updated successfully",
		"store":   working,
	})
}

// UpdateStoreStatus applies a quick status transition
func UpdateStoreStatus(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validStoreStatus(req.Status) {
		utils.BadRequestResponse(c, "Valid status is required")
		return
	}

	status := models.StoreStatus(req.Status)
	updated, err := storeEditor.QuickTransition(c.Param("id"), func(s *models.Store) {
		s.Status = status
	})
	if err != nil {
		if errors.Is(err, editor.ErrNotFound) {
			utils.NotFoundResponse(c, "Store not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionStatusChange, "store", updated.ID, string(status))

	c.JSON(http.StatusOK, gin.H{
		"message": "Store status updated",
		"store":   updated,
	})
}

// BulkStoreStatus applies one status to every selected id
func BulkStoreStatus(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		IDs    []string `json:"ids" binding:"required"`
		Status string   `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validStoreStatus(req.Status) {
		utils.BadRequestResponse(c, "ids and a valid status are required")
		return
	}

	status := models.StoreStatus(req.Status)
	updated := 0
	for _, id := range req.IDs {
		if _, err := storeEditor.QuickTransition(id, func(s *models.Store) {
			s.Status = status
		}); err == nil {
			updated++
		}
	}
	store.Data.AppendAudit(user, models.AuditActionStatusChange, "store", "",
		fmt.Sprintf("bulk %s: %d of %d", status, updated, len(req.IDs)))

	c.JSON(http.StatusOK, gin.H{
		"message": "Bulk status applied",
		"updated": updated,
	})
}

// DeleteStore removes the record after explicit confirmation
func DeleteStore(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	if !requireConfirm(c) {
		return
	}

	id := c.Param("id")
	st, found := store.Data.Stores.Get(id)
	if !found || !store.Data.Stores.Delete(id) {
		utils.NotFoundResponse(c, "Store not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionDelete, "store", id, st.Name)

	c.JSON(http.StatusOK, gin.H{"message": "Store deleted successfully"})
}

// ToggleStoreMultiSelect flips multi-select mode and clears selection
func ToggleStoreMultiSelect(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	enabled := v.stores.ToggleMultiSelect()
	c.JSON(http.StatusOK, gin.H{
		"multiSelect": enabled,
		"selected":    v.stores.Selected(),
	})
}

// ToggleStoreSelect toggles one visible row in or out of the selection
func ToggleStoreSelect(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	v.stores.ToggleSelect(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"selected": v.stores.Selected()})
}

// StoreMap returns the markers inside the viewport that pass the status
// filter
func StoreMap(c *gin.Context) {
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

	view := v.mapView("stores")
	statusFilter := c.DefaultQuery("status", v.stores.StatusFilter())
	visible := mapview.VisibleWithin(store.Data.Stores.List(),
		func(s models.Store) *models.Location { return s.Location },
		func(s models.Store) string { return string(s.Status) },
		bounds, statusFilter)

	c.JSON(http.StatusOK, gin.H{
		"stores": visible,
		"center": view.Center,
		"zoom":   view.Zoom,
	})
}

// RecenterStoreMap restores the default viewport
func RecenterStoreMap(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	view := v.mapView("stores")
	view.Recenter()
	c.JSON(http.StatusOK, gin.H{
		"center": view.Center,
		"zoom":   view.Zoom,
	})
}
