package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type venue struct {
	ID     string
	Name   string
	Status string
	Guests []string
}

func (v venue) clone() venue {
	out := v
	out.Guests = append([]string(nil), v.Guests...)
	return out
}

type venueTable struct {
	rows map[string]venue
}

func newVenueTable(rows ...venue) *venueTable {
	t := &venueTable{rows: make(map[string]venue)}
	for _, r := range rows {
		t.rows[r.ID] = r
	}
	return t
}

func (t *venueTable) editor() *Editor[venue] {
	return New(
		func(id string) (venue, bool) { v, ok := t.rows[id]; return v, ok },
		func(v venue) bool {
			if _, ok := t.rows[v.ID]; !ok {
				return false
			}
			t.rows[v.ID] = v
			return true
		},
		venue.clone,
	)
}

func TestOpenMissingEntityFailsGracefully(t *testing.T) {
	ed := newVenueTable().editor()

	session, err := ed.Open("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, session)
}

func TestEditsTouchOnlyWorkingCopyUntilCommit(t *testing.T) {
	table := newVenueTable(venue{ID: "v1", Name: "Bahay Kubo Inn", Status: "AVAILABLE"})
	ed := table.editor()

	session, err := ed.Open("v1")
	require.NoError(t, err)
	require.NoError(t, session.EnterEdit())
	assert.True(t, session.Editing())

	session.Working().Name = "Bahay Kubo Lodge"
	assert.Equal(t, "Bahay Kubo Inn", table.rows["v1"].Name)

	require.NoError(t, session.Commit())
	assert.Equal(t, "Bahay Kubo Lodge", table.rows["v1"].Name)
	assert.False(t, session.Editing())
}

func TestCancelRevertsToStoredRecord(t *testing.T) {
	table := newVenueTable(venue{ID: "v1", Name: "Bahay Kubo Inn"})
	ed := table.editor()

	session, err := ed.Open("v1")
	require.NoError(t, err)
	require.NoError(t, session.EnterEdit())

	session.Working().Name = "Renamed"
	require.NoError(t, session.Cancel())

	assert.Equal(t, "Bahay Kubo Inn", session.Working().Name)
	assert.False(t, session.Editing())
	assert.Equal(t, "Bahay Kubo Inn", table.rows["v1"].Name)
}

func TestCommitIsIdempotent(t *testing.T) {
	table := newVenueTable(venue{ID: "v1", Name: "Bahay Kubo Inn"})
	ed := table.editor()

	session, err := ed.Open("v1")
	require.NoError(t, err)
	require.NoError(t, session.EnterEdit())
	session.Working().Name = "Renamed"

	require.NoError(t, session.Commit())
	first := table.rows["v1"]

	require.NoError(t, session.Commit())
	assert.Equal(t, first, table.rows["v1"])
}

func TestCommitAfterDeleteFailsGracefully(t *testing.T) {
	table := newVenueTable(venue{ID: "v1", Name: "Bahay Kubo Inn"})
	ed := table.editor()

	session, err := ed.Open("v1")
	require.NoError(t, err)
	require.NoError(t, session.EnterEdit())

	delete(table.rows, "v1")

	assert.ErrorIs(t, session.Commit(), ErrNotFound)
}

func TestWorkingCopyIsDeepClone(t *testing.T) {
	table := newVenueTable(venue{ID: "v1", Guests: []string{"Angelica"}})
	ed := table.editor()

	session, err := ed.Open("v1")
	require.NoError(t, err)
	require.NoError(t, session.EnterEdit())

	session.Working().Guests[0] = "Mutated"
	assert.Equal(t, "Angelica", table.rows["v1"].Guests[0])
}

func TestQuickTransitionAppliesAndCommits(t *testing.T) {
	table := newVenueTable(venue{ID: "v1", Status: "BOOKED", Guests: []string{"Angelica"}})
	ed := table.editor()

	updated, err := ed.QuickTransition("v1", func(v *venue) {
		v.Status = "CLEANING"
		v.Guests = nil
	})
	require.NoError(t, err)
	assert.Equal(t, "CLEANING", updated.Status)
	assert.Empty(t, updated.Guests)
	assert.Equal(t, "CLEANING", table.rows["v1"].Status)
}

func TestQuickTransitionMissingEntity(t *testing.T) {
	ed := newVenueTable().editor()

	_, err := ed.QuickTransition("ghost", func(v *venue) { v.Status = "X" })
	assert.ErrorIs(t, err, ErrNotFound)
}
