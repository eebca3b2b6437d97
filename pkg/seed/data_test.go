package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend_hatid/pkg/models"
)

func TestRestaurantSeedHasExactlyOneInMaintenance(t *testing.T) {
	restaurants := Restaurants()
	require.Len(t, restaurants, 6)

	maintenance := 0
	for _, r := range restaurants {
		if r.Status == models.RestaurantStatusMaintenance {
			maintenance++
		}
	}
	assert.Equal(t, 1, maintenance)
}

func TestProductSevenIsLechonRoll(t *testing.T) {
	var found *models.Product
	for _, p := range Products() {
		if p.ID == "7" {
			found = &p
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "store-1", found.StoreID)
	assert.Equal(t, 560.00, found.Price)
}

func TestEveryProductBelongsToASeededStore(t *testing.T) {
	storeIDs := make(map[string]struct{})
	for _, s := range Stores() {
		storeIDs[s.ID] = struct{}{}
	}
	for _, p := range Products() {
		_, ok := storeIDs[p.StoreID]
		assert.True(t, ok, "product %s references unknown store %s", p.ID, p.StoreID)
	}
}

func TestRiderRatingBucketsSumToRatingCount(t *testing.T) {
	riders := Riders()
	require.NotEmpty(t, riders)

	for _, r := range riders {
		sum := 0
		for star := 1; star <= 5; star++ {
			sum += r.RatingBuckets[star]
		}
		assert.Equal(t, r.RatingCount, sum, "rider %s buckets must sum to rating count", r.ID)
		assert.Len(t, r.RatingBuckets, 5, "rider %s must carry all five buckets", r.ID)
	}
}

func TestGeneratedRidersAlsoSatisfyBucketInvariant(t *testing.T) {
	ds := Dataset()
	for _, r := range ds.Riders {
		sum := 0
		for star := 1; star <= 5; star++ {
			sum += r.RatingBuckets[star]
		}
		assert.Equal(t, r.RatingCount, sum, "rider %s", r.ID)
	}
}

func TestBookedAccommodationCarriesGuest(t *testing.T) {
	for _, a := range Accommodations() {
		if a.Status == models.AccommodationStatusBooked {
			require.NotNil(t, a.CurrentGuest, "accommodation %s is BOOKED without a guest", a.ID)
			assert.NotEmpty(t, *a.CurrentGuest)
		} else {
			assert.Nil(t, a.CurrentGuest, "accommodation %s carries a guest outside BOOKED", a.ID)
		}
	}
}

func TestStoreFourHasNoOrders(t *testing.T) {
	for _, o := range Orders() {
		assert.NotEqual(t, "store-4", o.StoreID)
	}
}

func TestLatestStoreOneOrderTotals(t *testing.T) {
	var latest *models.Order
	for _, o := range Orders() {
		o := o
		if o.StoreID != "store-1" {
			continue
		}
		if latest == nil || o.PlacedAt.After(latest.PlacedAt) {
			latest = &o
		}
	}
	require.NotNil(t, latest)

	assert.Equal(t, 1120.00, latest.Subtotal)
	assert.Equal(t, 56.00, latest.Tax)
	assert.Equal(t, 1176.00, latest.Total)

	require.Len(t, latest.Items, 1)
	assert.Equal(t, "7", latest.Items[0].ProductID)
	assert.Equal(t, 2, latest.Items[0].Quantity)
}

func TestSeededUsersCoverEveryRole(t *testing.T) {
	users := Users()
	roles := make(map[models.Role]bool)
	for _, u := range users {
		roles[u.Role] = true
		assert.NotEmpty(t, u.Password, "user %s must carry a hashed password", u.ID)
		assert.NotEqual(t, "hatid-admin", u.Password, "passwords must be stored hashed")
	}
	assert.True(t, roles[models.RoleSuperAdmin])
	assert.True(t, roles[models.RoleAdmin])
	assert.True(t, roles[models.RoleStaff])
}

func TestDatasetCombinesFixedAndGeneratedRecords(t *testing.T) {
	ds := Dataset()

	assert.Len(t, ds.Restaurants, 6)
	assert.Len(t, ds.Customers, len(Customers())+4)
	assert.Len(t, ds.Riders, len(Riders())+3)

	ids := make(map[string]struct{})
	for _, c := range ds.Customers {
		_, dup := ids[c.ID]
		assert.False(t, dup, "duplicate customer id %s", c.ID)
		ids[c.ID] = struct{}{}
	}
}
