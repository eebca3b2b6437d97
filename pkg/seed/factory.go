package seed

import (
	"fmt"
	"math/rand"
	"time"

	"backend_hatid/pkg/models"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

// Seeded so generated values repeat across restarts. Ids come from cuid
// and stay unique per run.
var (
	fake = faker.NewWithSeed(rand.NewSource(42))
	rng  = rand.New(rand.NewSource(42))
)

var customerTiers = []models.CustomerTier{
	models.CustomerTierBronze,
	models.CustomerTierSilver,
	models.CustomerTierGold,
	models.CustomerTierPlatinum,
}

var vehicles = []models.VehicleType{
	models.VehicleTypeMotorcycle,
	models.VehicleTypeBicycle,
	models.VehicleTypeCar,
}

// metro Manila bounding box for generated coordinates
const (
	cityLat   = 14.5995
	cityLng   = 120.9842
	urbanSpan = 0.06
)

func randomLocation() *models.Location {
	return &models.Location{
		Lat: cityLat + (rng.Float64()*2-1)*urbanSpan,
		Lng: cityLng + (rng.Float64()*2-1)*urbanSpan,
	}
}

func makeCustomer() models.Customer {
	orderCount := fake.IntBetween(0, 120)
	return models.Customer{
		ID:            cuid.New(),
		Name:          fake.Person().Name(),
		Status:        models.CustomerStatusActive,
		Tier:          customerTiers[rng.Intn(len(customerTiers))],
		Type:          models.CustomerTypeRegular,
		Email:         fake.Internet().Email(),
		Phone:         fake.Phone().Number(),
		Address:       fake.Address().StreetAddress() + ", Quezon City, Metro Manila",
		LifetimeSpend: float64(fake.IntBetween(200, 90000)),
		OrderCount:    orderCount,
		JoinedAt:      fake.Time().TimeBetween(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func makeRider() models.Rider {
	ratingCount := fake.IntBetween(20, 400)
	return models.Rider{
		ID:               cuid.New(),
		Name:             fake.Person().Name(),
		Status:           models.RiderStatusAvailable,
		Email:            fake.Internet().Email(),
		Phone:            fake.Phone().Number(),
		Vehicle:          vehicles[rng.Intn(len(vehicles))],
		Address:          fake.Address().StreetAddress() + ", Pasig, Metro Manila",
		Location:         randomLocation(),
		SuccessRate:      float64(fake.IntBetween(880, 995)) / 10,
		CancellationRate: float64(fake.IntBetween(5, 60)) / 10,
		AvgDeliveryMins:  float64(fake.IntBetween(18, 45)),
		TotalDeliveries:  fake.IntBetween(50, 3000),
		RatingCount:      ratingCount,
		RatingBuckets:    makeRatingBuckets(ratingCount),
	}
}

// makeRatingBuckets distributes total across the 1..5 star buckets so the
// bucket sum always equals total, weighted toward 4 and 5 stars.
func makeRatingBuckets(total int) map[int]int {
	weights := []int{2, 3, 8, 32, 55} // stars 1..5
	buckets := make(map[int]int, 5)
	assigned := 0
	for star := 1; star <= 4; star++ {
		n := total * weights[star-1] / 100
		buckets[star] = n
		assigned += n
	}
	buckets[5] = total - assigned
	return buckets
}

func makeActivity(n int) []models.DeliveryActivity {
	out := make([]models.DeliveryActivity, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.DeliveryActivity{
			OrderID:     fmt.Sprintf("ORD-%d", fake.IntBetween(10000, 99999)),
			Description: "Delivered to " + fake.Person().Name(),
			At:          time.Date(2025, 8, 30, 9, 0, 0, 0, time.UTC).Add(-time.Duration(i) * 3 * time.Hour),
		})
	}
	return out
}
