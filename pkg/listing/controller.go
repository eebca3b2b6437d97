// Package listing implements the list/filter/selection state shared by the
// restaurant, store, rider, customer and accommodation management screens.
// One generic controller parameterized by field accessors replaces the
// per-screen copies.
package listing

import "strings"

// StatusAll disables status filtering.
const StatusAll = "All"

// Accessors tells the controller how to read an entity's id, status and
// searchable display fields.
type Accessors[T any] struct {
	ID           func(T) string
	Status       func(T) string
	SearchFields func(T) []string
}

// Controller holds the filter, search and multi-select state for one
// collection view. The visible subset is recomputed on every call, not
// memoized; the datasets are tens of rows.
type Controller[T any] struct {
	source func() []T
	acc    Accessors[T]

	statusFilter string
	searchTerm   string
	multiSelect  bool
	selected     map[string]struct{}
}

func NewController[T any](source func() []T, acc Accessors[T]) *Controller[T] {
	return &Controller[T]{
		source:       source,
		acc:          acc,
		statusFilter: StatusAll,
		selected:     make(map[string]struct{}),
	}
}

// SetFilter replaces the status filter. The search term survives; the
// selection survives too but is pruned to ids still visible, so it never
// references a row outside the active view.
func (c *Controller[T]) SetFilter(status string) {
	if status == "" {
		status = StatusAll
	}
	c.statusFilter = status
	c.pruneSelection()
}

// SetSearch replaces the free-text search term. Matching is a
// case-insensitive substring test against any of the search fields.
func (c *Controller[T]) SetSearch(term string) {
	c.searchTerm = term
	c.pruneSelection()
}

// StatusFilter returns the active status filter.
func (c *Controller[T]) StatusFilter() string { return c.statusFilter }

// SearchTerm returns the active search term.
func (c *Controller[T]) SearchTerm() string { return c.searchTerm }

// ToggleMultiSelect flips multi-select mode. Entering or leaving always
// resets the selection.
func (c *Controller[T]) ToggleMultiSelect() bool {
	c.multiSelect = !c.multiSelect
	c.selected = make(map[string]struct{})
	return c.multiSelect
}

// MultiSelect reports whether multi-select mode is on.
func (c *Controller[T]) MultiSelect() bool { return c.multiSelect }

// ToggleSelect adds the id to the selection if absent, removes it if
// present. Only meaningful in multi-select mode, and only for visible rows.
func (c *Controller[T]) ToggleSelect(id string) {
	if !c.multiSelect {
		return
	}
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
		return
	}
	for _, e := range c.Visible() {
		if c.acc.ID(e) == id {
			c.selected[id] = struct{}{}
			return
		}
	}
}

// Selected returns the selected ids in visible-row order.
func (c *Controller[T]) Selected() []string {
	out := make([]string, 0, len(c.selected))
	for _, e := range c.Visible() {
		id := c.acc.ID(e)
		if _, ok := c.selected[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Visible returns the entities passing both the status filter and the
// search term. An empty result is a valid, displayed state, never an error.
func (c *Controller[T]) Visible() []T {
	out := make([]T, 0)
	for _, e := range c.source() {
		if c.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (c *Controller[T]) matches(e T) bool {
	if c.statusFilter != StatusAll && c.acc.Status(e) != c.statusFilter {
		return false
	}
	if c.searchTerm == "" {
		return true
	}
	term := strings.ToLower(c.searchTerm)
	for _, field := range c.acc.SearchFields(e) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (c *Controller[T]) pruneSelection() {
	if len(c.selected) == 0 {
		return
	}
	visible := make(map[string]struct{})
	for _, e := range c.Visible() {
		visible[c.acc.ID(e)] = struct{}{}
	}
	for id := range c.selected {
		if _, ok := visible[id]; !ok {
			delete(c.selected, id)
		}
	}
}
