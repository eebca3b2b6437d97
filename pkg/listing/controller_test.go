package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shop struct {
	ID     string
	Name   string
	Owner  string
	Status string
}

var shops = []shop{
	{ID: "s1", Name: "Adobo Haus", Owner: "Nena", Status: "OPEN"},
	{ID: "s2", Name: "Sinigang Corner", Owner: "Ramon", Status: "CLOSED"},
	{ID: "s3", Name: "Kape Tala", Owner: "Nena", Status: "OPEN"},
	{ID: "s4", Name: "Halo-Halo Hub", Owner: "Bituin", Status: "MAINTENANCE"},
}

func newShopController() *Controller[shop] {
	return NewController(
		func() []shop { return shops },
		Accessors[shop]{
			ID:           func(s shop) string { return s.ID },
			Status:       func(s shop) string { return s.Status },
			SearchFields: func(s shop) []string { return []string{s.Name, s.Owner} },
		})
}

func TestVisibleDefaultsToAll(t *testing.T) {
	c := newShopController()

	assert.Equal(t, StatusAll, c.StatusFilter())
	assert.Len(t, c.Visible(), 4)
}

func TestFilterAndSearchAreConjunctive(t *testing.T) {
	c := newShopController()

	c.SetFilter("OPEN")
	require.Len(t, c.Visible(), 2)

	c.SetSearch("nena")
	visible := c.Visible()
	require.Len(t, visible, 2)

	c.SetSearch("kape")
	visible = c.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "s3", visible[0].ID)

	// Search alone would match s2, but the status filter excludes it
	c.SetSearch("ramon")
	assert.Empty(t, c.Visible())
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	c := newShopController()

	c.SetSearch("HALO")
	visible := c.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "s4", visible[0].ID)
}

func TestEmptyResultIsValidState(t *testing.T) {
	c := newShopController()

	c.SetSearch("no such shop")
	assert.NotNil(t, c.Visible())
	assert.Empty(t, c.Visible())
}

func TestToggleMultiSelectAlwaysClearsSelection(t *testing.T) {
	c := newShopController()

	assert.True(t, c.ToggleMultiSelect())
	c.ToggleSelect("s1")
	c.ToggleSelect("s2")
	require.Len(t, c.Selected(), 2)

	assert.False(t, c.ToggleMultiSelect())
	assert.Empty(t, c.Selected())

	// Re-entering starts from scratch too
	c.ToggleMultiSelect()
	c.ToggleSelect("s1")
	c.ToggleMultiSelect()
	c.ToggleMultiSelect()
	assert.Empty(t, c.Selected())
}

func TestToggleSelectRequiresMultiSelectMode(t *testing.T) {
	c := newShopController()

	c.ToggleSelect("s1")
	assert.Empty(t, c.Selected())
}

func TestToggleSelectOnlyAddsVisibleRows(t *testing.T) {
	c := newShopController()
	c.ToggleMultiSelect()
	c.SetFilter("OPEN")

	c.ToggleSelect("s2") // CLOSED, not visible
	assert.Empty(t, c.Selected())

	c.ToggleSelect("s1")
	assert.Equal(t, []string{"s1"}, c.Selected())

	// Second toggle removes it
	c.ToggleSelect("s1")
	assert.Empty(t, c.Selected())
}

func TestFilterChangePrunesSelectionToVisible(t *testing.T) {
	c := newShopController()
	c.ToggleMultiSelect()

	c.ToggleSelect("s1")
	c.ToggleSelect("s2")
	c.ToggleSelect("s4")
	require.Len(t, c.Selected(), 3)

	c.SetFilter("OPEN")
	assert.Equal(t, []string{"s1"}, c.Selected())
}

func TestSearchChangePrunesSelection(t *testing.T) {
	c := newShopController()
	c.ToggleMultiSelect()

	c.ToggleSelect("s1")
	c.ToggleSelect("s3")

	c.SetSearch("kape")
	assert.Equal(t, []string{"s3"}, c.Selected())
}

func TestSelectedFollowsVisibleOrder(t *testing.T) {
	c := newShopController()
	c.ToggleMultiSelect()

	c.ToggleSelect("s4")
	c.ToggleSelect("s1")
	c.ToggleSelect("s3")

	assert.Equal(t, []string{"s1", "s3", "s4"}, c.Selected())
}
