package seed

import (
	"log"
	"time"

	"backend_hatid/pkg/models"
	"backend_hatid/pkg/utils"
)

// Data is everything the in-memory store is seeded with.
type Data struct {
	Restaurants    []models.Restaurant
	Stores         []models.Store
	Riders         []models.Rider
	Customers      []models.Customer
	Accommodations []models.Accommodation
	Products       []models.Product
	Orders         []models.Order
	Users          []models.User
}

// Dataset returns the full mock dataset: a fixed base set plus a few
// generated records.
func Dataset() Data {
	ds := Data{
		Restaurants:    Restaurants(),
		Stores:         Stores(),
		Riders:         Riders(),
		Customers:      Customers(),
		Accommodations: Accommodations(),
		Products:       Products(),
		Orders:         Orders(),
		Users:          Users(),
	}
	for i := 0; i < 4; i++ {
		ds.Customers = append(ds.Customers, makeCustomer())
	}
	for i := 0; i < 3; i++ {
		ds.Riders = append(ds.Riders, makeRider())
	}
	return ds
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

// Restaurants is the fixed six-restaurant base set. Exactly one is under
// maintenance.
func Restaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID: "resto-1", Name: "Kainan sa Kanto", Status: models.RestaurantStatusOpen,
			Cuisine: "Filipino", OwnerName: "Lorna Villanueva", Email: "kainan.kanto@hatidhub.ph",
			Phone: "+63 917 555 0101", Address: "123 Mabini St, Poblacion, Makati, Metro Manila",
			Breakdown: models.AddressBreakdown{Region: "National Capital Region", City: "Makati", Barangay: "Poblacion"},
			Location:  &models.Location{Lat: 14.5657, Lng: 121.0322},
			ImageURL:  "https://images.hatidhub.ph/restaurants/kainan-sa-kanto.jpg",
			Rating:    4.6, TotalRatings: 812, Revenue: 512340.50, ActiveOrders: 7, Capacity: 60,
			Permits: []string{"Business Permit 2025-10432", "Sanitary Permit 2025-2211"},
		},
		{
			ID: "resto-2", Name: "Lola Remy's Lutong Bahay", Status: models.RestaurantStatusOpen,
			Cuisine: "Filipino Home Cooking", OwnerName: "Remedios Santos", Email: "lolaremys@hatidhub.ph",
			Phone: "+63 917 555 0102", Address: "45 Session Rd, Baguio, Benguet",
			Breakdown: models.AddressBreakdown{Region: "Cordillera Administrative Region", Province: "Benguet", City: "Baguio"},
			Location:  &models.Location{Lat: 16.4120, Lng: 120.5960},
			ImageURL:  "https://images.hatidhub.ph/restaurants/lola-remys.jpg",
			Rating:    4.8, TotalRatings: 1204, Revenue: 734220.00, ActiveOrders: 11, Capacity: 45,
			Permits: []string{"Business Permit 2025-00981"},
		},
		{
			ID: "resto-3", Name: "Manila Bay Seafood Grill", Status: models.RestaurantStatusBusy,
			Cuisine: "Seafood", OwnerName: "Dante Reyes", Email: "mbseafood@hatidhub.ph",
			Phone: "+63 917 555 0103", Address: "8 Roxas Blvd, Malate, Manila, Metro Manila",
			Breakdown: models.AddressBreakdown{Region: "National Capital Region", City: "Manila", Barangay: "Malate"},
			Location:  &models.Location{Lat: 14.5714, Lng: 120.9831},
			ImageURL:  "https://images.hatidhub.ph/restaurants/manila-bay-grill.jpg",
			Rating:    4.3, TotalRatings: 655, Revenue: 428990.25, ActiveOrders: 18, Capacity: 90,
			Permits: []string{"Business Permit 2025-20471", "FDA LTO 3000456"},
		},
		{
			ID: "resto-4", Name: "Cebu Lechon House", Status: models.RestaurantStatusClosed,
			Cuisine: "Lechon", OwnerName: "Marites Gonzales", Email: "cebulechon@hatidhub.ph",
			Phone: "+63 917 555 0104", Address: "77 Osmeña Blvd, Cebu City, Cebu",
			Breakdown: models.AddressBreakdown{Region: "Central Visayas", Province: "Cebu", City: "Cebu City"},
			Location:  &models.Location{Lat: 10.3157, Lng: 123.8854},
			ImageURL:  "https://images.hatidhub.ph/restaurants/cebu-lechon.jpg",
			Rating:    4.7, TotalRatings: 930, Revenue: 615700.00, ActiveOrders: 0, Capacity: 50,
			Permits: []string{"Business Permit 2025-33012"},
		},
		{
			ID: "resto-5", Name: "Sari Sarap Carinderia", Status: models.RestaurantStatusMaintenance,
			Cuisine: "Carinderia", OwnerName: "Jun Dela Cruz", Email: "sarisarap@hatidhub.ph",
			Phone: "+63 917 555 0105", Address: "12 Rizal Ave, Santa Cruz, Manila, Metro Manila",
			Breakdown: models.AddressBreakdown{Region: "National Capital Region", City: "Manila", Barangay: "Santa Cruz"},
			Location:  &models.Location{Lat: 14.6190, Lng: 120.9822},
			ImageURL:  "https://images.hatidhub.ph/restaurants/sari-sarap.jpg",
			Rating:    4.1, TotalRatings: 287, Revenue: 98450.00, ActiveOrders: 0, Capacity: 25,
			Permits: []string{"Business Permit 2025-41220"},
		},
		{
			ID: "resto-6", Name: "Ilocos Empanada Express", Status: models.RestaurantStatusOpen,
			Cuisine: "Ilocano", OwnerName: "Carmela Agbayani", Email: "empanadaexpress@hatidhub.ph",
			Phone: "+63 917 555 0106", Address: "3 Quezon Ave, Vigan, Ilocos Sur",
			Breakdown: models.AddressBreakdown{Region: "Ilocos Region", Province: "Ilocos Sur", City: "Vigan"},
			Location:  &models.Location{Lat: 17.5747, Lng: 120.3869},
			ImageURL:  "https://images.hatidhub.ph/restaurants/ilocos-empanada.jpg",
			Rating:    4.5, TotalRatings: 441, Revenue: 201330.75, ActiveOrders: 4, Capacity: 30,
			Permits: []string{"Business Permit 2025-55021"},
		},
	}
}

func Stores() []models.Store {
	return []models.Store{
		{
			ID: "store-1", Name: "Aling Nena's Sari-Sari Store", Status: models.StoreStatusOpen,
			Category: "Grocery", OwnerName: "Nena Ramos", Email: "alingnenas@hatidhub.ph",
			Phone: "+63 918 555 0201", Address: "56 Kalayaan Ave, Diliman, Quezon City, Metro Manila",
			Location: &models.Location{Lat: 14.6431, Lng: 121.0530},
			ImageURL: "https://images.hatidhub.ph/stores/aling-nenas.jpg",
			Rating:   4.4, Revenue: 182400.00, InventoryLevel: 82,
			Breakdown: models.AddressBreakdown{Region: "National Capital Region", City: "Quezon City", Barangay: "Diliman"},
		},
		{
			ID: "store-2", Name: "Fresh Harvest Fruit Stand", Status: models.StoreStatusOpen,
			Category: "Produce", OwnerName: "Berto Magsaysay", Email: "freshharvest@hatidhub.ph",
			Phone: "+63 918 555 0202", Address: "21 Market Rd, San Fernando, Pampanga",
			Location: &models.Location{Lat: 15.0286, Lng: 120.6898},
			ImageURL: "https://images.hatidhub.ph/stores/fresh-harvest.jpg",
			Rating:   4.6, Revenue: 96750.50, InventoryLevel: 64,
			Breakdown: models.AddressBreakdown{Region: "Central Luzon", Province: "Pampanga", City: "San Fernando"},
		},
		{
			ID: "store-3", Name: "Mercado Central Mini-Mart", Status: models.StoreStatusRestocking,
			Category: "Convenience", OwnerName: "Cita Lim", Email: "mercadocentral@hatidhub.ph",
			Phone: "+63 918 555 0203", Address: "9 Colon St, Cebu City, Cebu",
			Location: &models.Location{Lat: 10.2952, Lng: 123.9019},
			ImageURL: "https://images.hatidhub.ph/stores/mercado-central.jpg",
			Rating:   4.2, Revenue: 254100.00, InventoryLevel: 23,
			Breakdown: models.AddressBreakdown{Region: "Central Visayas", Province: "Cebu", City: "Cebu City"},
		},
		{
			ID: "store-4", Name: "Tindahan ni Boss Val", Status: models.StoreStatusClosed,
			Category: "General Merchandise", OwnerName: "Valerio Cruz", Email: "bossval@hatidhub.ph",
			Phone: "+63 918 555 0204", Address: "14 Magsaysay Dr, Olongapo, Zambales",
			Location: &models.Location{Lat: 14.8386, Lng: 120.2842},
			ImageURL: "https://images.hatidhub.ph/stores/boss-val.jpg",
			Rating:   3.9, Revenue: 41200.00, InventoryLevel: 55,
			Breakdown: models.AddressBreakdown{Region: "Central Luzon", Province: "Zambales", City: "Olongapo"},
		},
	}
}

func Products() []models.Product {
	return []models.Product{
		{ID: "1", StoreID: "store-1", Name: "Sinandomeng Rice 5kg", Price: 285.00, Category: "Grocery", ImageURL: "https://images.hatidhub.ph/products/rice-5kg.jpg", Brand: strptr("Sinandomeng")},
		{ID: "2", StoreID: "store-1", Name: "Lucky Me Pancit Canton 6-pack", Price: 92.50, Category: "Grocery", ImageURL: "https://images.hatidhub.ph/products/pancit-canton.jpg", Brand: strptr("Lucky Me"), Calories: intptr(370)},
		{ID: "3", StoreID: "store-1", Name: "Kopiko Black 3-in-1 Twin Pack", Price: 15.00, Category: "Beverages", ImageURL: "https://images.hatidhub.ph/products/kopiko.jpg", Brand: strptr("Kopiko"), Calories: intptr(120)},
		{ID: "4", StoreID: "store-2", Name: "Carabao Mango per kg", Price: 180.00, Category: "Produce", ImageURL: "https://images.hatidhub.ph/products/mango.jpg"},
		{ID: "5", StoreID: "store-2", Name: "Saba Banana bundle", Price: 65.00, Category: "Produce", ImageURL: "https://images.hatidhub.ph/products/saba.jpg"},
		{ID: "6", StoreID: "store-1", Name: "Argentina Corned Beef 260g", Price: 78.25, Category: "Canned Goods", ImageURL: "https://images.hatidhub.ph/products/corned-beef.jpg", Brand: strptr("Argentina"), Calories: intptr(250)},
		{ID: "7", StoreID: "store-1", Name: "Lechon Belly Roll 1kg", Price: 560.00, Category: "Ready-to-Eat", ImageURL: "https://images.hatidhub.ph/products/lechon-belly.jpg", Ingredients: []string{"Pork belly", "Lemongrass", "Garlic", "Bay leaf"}},
		{ID: "8", StoreID: "store-3", Name: "C2 Apple 500ml", Price: 27.00, Category: "Beverages", ImageURL: "https://images.hatidhub.ph/products/c2-apple.jpg", Brand: strptr("C2"), Calories: intptr(140)},
		{ID: "9", StoreID: "store-3", Name: "SkyFlakes Crackers 10-pack", Price: 58.00, Category: "Snacks", ImageURL: "https://images.hatidhub.ph/products/skyflakes.jpg", Brand: strptr("SkyFlakes"), Calories: intptr(122)},
		{ID: "10", StoreID: "store-2", Name: "Calamansi per kg", Price: 90.00, Category: "Produce", ImageURL: "https://images.hatidhub.ph/products/calamansi.jpg"},
		{ID: "11", StoreID: "store-3", Name: "Chuckie Chocolate Drink 250ml", Price: 32.00, Category: "Beverages", ImageURL: "https://images.hatidhub.ph/products/chuckie.jpg", Brand: strptr("Chuckie"), Calories: intptr(180)},
		{ID: "12", StoreID: "store-4", Name: "Zonrox Bleach 1L", Price: 48.50, Category: "Household", ImageURL: "https://images.hatidhub.ph/products/zonrox.jpg", Brand: strptr("Zonrox")},
	}
}

// Riders is the fixed base set; one rider is suspended.
func Riders() []models.Rider {
	return []models.Rider{
		{
			ID: "rider-1", Name: "Joel Bautista", Status: models.RiderStatusAvailable,
			Email: "joel.bautista@hatidhub.ph", Phone: "+63 919 555 0301",
			Vehicle: models.VehicleTypeMotorcycle,
			Address: "88 E Rodriguez Ave, New Manila, Quezon City, Metro Manila",
			Breakdown: models.AddressBreakdown{Region: "National Capital Region", City: "Quezon City", Barangay: "New Manila"},
			Location:  &models.Location{Lat: 14.6171, Lng: 121.0305},
			SuccessRate: 97.2, CancellationRate: 1.1, AvgDeliveryMins: 24,
			TotalDeliveries: 2140, RatingCount: 100,
			RatingBuckets:   map[int]int{1: 2, 2: 3, 3: 8, 4: 27, 5: 60},
			RecentActivity:  makeActivity(4),
		},
		{
			ID: "rider-2", Name: "Princess Mae Soriano", Status: models.RiderStatusOnDelivery,
			Email: "pm.soriano@hatidhub.ph", Phone: "+63 919 555 0302",
			Vehicle: models.VehicleTypeMotorcycle,
			Address: "12 F. Torres St, Sampaloc, Manila, Metro Manila",
			Breakdown: models.AddressBreakdown{Region: "National Capital Region", City: "Manila", Barangay: "Sampaloc"},
			Location:  &models.Location{Lat: 14.6089, Lng: 120.9917},
			SuccessRate: 95.8, CancellationRate: 2.4, AvgDeliveryMins: 28,
			TotalDeliveries: 1310, RatingCount: 80,
			RatingBuckets:   map[int]int{1: 1, 2: 3, 3: 7, 4: 25, 5: 44},
			RecentActivity:  makeActivity(3),
		},
		{
			ID: "rider-3", Name: "Ramil Ocampo", Status: models.RiderStatusOffline,
			Email: "ramil.ocampo@hatidhub.ph", Phone: "+63 919 555 0303",
			Vehicle: models.VehicleTypeBicycle,
			Address: "5 Bonifacio St, Bacoor, Cavite",
			Breakdown: models.AddressBreakdown{Region: "Calabarzon", Province: "Cavite", City: "Bacoor"},
			Location:  &models.Location{Lat: 14.4590, Lng: 120.9367},
			SuccessRate: 92.4, CancellationRate: 4.0, AvgDeliveryMins: 35,
			TotalDeliveries: 420, RatingCount: 40,
			RatingBuckets:   map[int]int{1: 2, 2: 2, 3: 6, 4: 14, 5: 16},
			RecentActivity:  makeActivity(2),
		},
		{
			ID: "rider-4", Name: "Teodoro Malabanan", Status: models.RiderStatusSuspended,
			Email: "teo.malabanan@hatidhub.ph", Phone: "+63 919 555 0304",
			Vehicle: models.VehicleTypeCar,
			Address: "27 Aguinaldo Hwy, Dasmariñas, Cavite",
			Breakdown: models.AddressBreakdown{Region: "Calabarzon", Province: "Cavite", City: "Dasmariñas"},
			SuccessRate: 74.5, CancellationRate: 15.2, AvgDeliveryMins: 52,
			TotalDeliveries: 188, RatingCount: 25,
			RatingBuckets:   map[int]int{1: 6, 2: 5, 3: 7, 4: 4, 5: 3},
			RecentActivity:  makeActivity(1),
		},
		{
			ID: "rider-5", Name: "Grace Tupas", Status: models.RiderStatusAvailable,
			Email: "grace.tupas@hatidhub.ph", Phone: "+63 919 555 0305",
			Vehicle: models.VehicleTypeMotorcycle,
			Address: "31 Lacson St, Bacolod, Negros Occidental",
			Breakdown: models.AddressBreakdown{Region: "Western Visayas", Province: "Negros Occidental", City: "Bacolod"},
			Location:  &models.Location{Lat: 10.6713, Lng: 122.9511},
			SuccessRate: 98.6, CancellationRate: 0.5, AvgDeliveryMins: 21,
			TotalDeliveries: 3050, RatingCount: 150,
			RatingBuckets:   map[int]int{1: 1, 2: 2, 3: 9, 4: 38, 5: 100},
			RecentActivity:  makeActivity(5),
		},
	}
}

func Customers() []models.Customer {
	return []models.Customer{
		{ID: "cust-1", Name: "Angelica Mercado", Status: models.CustomerStatusActive, Tier: models.CustomerTierPlatinum, Type: models.CustomerTypeRegular, Email: "angelica.mercado@mail.ph", Phone: "+63 920 555 0401", Address: "Unit 12B Eastwood Towers, Quezon City", LifetimeSpend: 84210.75, OrderCount: 214, JoinedAt: time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC)},
		{ID: "cust-2", Name: "Bong Salazar", Status: models.CustomerStatusActive, Tier: models.CustomerTierGold, Type: models.CustomerTypeRestaurantOwner, Email: "bong.salazar@mail.ph", Phone: "+63 920 555 0402", Address: "77 Katipunan Ave, Quezon City", LifetimeSpend: 45600.00, OrderCount: 132, JoinedAt: time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "cust-3", Name: "Clarisse Uy", Status: models.CustomerStatusInactive, Tier: models.CustomerTierSilver, Type: models.CustomerTypeRegular, Email: "clarisse.uy@mail.ph", Phone: "+63 920 555 0403", Address: "3 Banawe St, Quezon City", LifetimeSpend: 12750.50, OrderCount: 41, JoinedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "cust-4", Name: "Diego Fajardo", Status: models.CustomerStatusBlocked, Tier: models.CustomerTierBronze, Type: models.CustomerTypeRegular, Email: "diego.fajardo@mail.ph", Phone: "+63 920 555 0404", Address: "9 P. Burgos St, Makati", LifetimeSpend: 980.00, OrderCount: 6, JoinedAt: time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)},
		{ID: "cust-5", Name: "Elaine Navarro", Status: models.CustomerStatusActive, Tier: models.CustomerTierGold, Type: models.CustomerTypeStoreOwner, Email: "elaine.navarro@mail.ph", Phone: "+63 920 555 0405", Address: "41 Shaw Blvd, Mandaluyong", LifetimeSpend: 38900.25, OrderCount: 97, JoinedAt: time.Date(2023, 8, 30, 0, 0, 0, 0, time.UTC)},
		{ID: "cust-6", Name: "Ferdie Lagman", Status: models.CustomerStatusActive, Tier: models.CustomerTierBronze, Type: models.CustomerTypeDeliveryRider, Email: "ferdie.lagman@mail.ph", Phone: "+63 920 555 0406", Address: "2 MacArthur Hwy, San Fernando, Pampanga", LifetimeSpend: 5120.00, OrderCount: 19, JoinedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "cust-7", Name: "Giselle Tan", Status: models.CustomerStatusActive, Tier: models.CustomerTierSilver, Type: models.CustomerTypeRegular, Email: "giselle.tan@mail.ph", Phone: "+63 920 555 0407", Address: "18 Gorordo Ave, Cebu City", LifetimeSpend: 17430.00, OrderCount: 58, JoinedAt: time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "cust-8", Name: "Harvey Dizon", Status: models.CustomerStatusInactive, Tier: models.CustomerTierBronze, Type: models.CustomerTypeRegular, Email: "harvey.dizon@mail.ph", Phone: "+63 920 555 0408", Address: "60 Session Rd, Baguio", LifetimeSpend: 2210.00, OrderCount: 9, JoinedAt: time.Date(2025, 3, 27, 0, 0, 0, 0, time.UTC)},
	}
}

func Accommodations() []models.Accommodation {
	return []models.Accommodation{
		{
			ID: "accom-1", Name: "Bahay Kubo Transient House", Status: models.AccommodationStatusAvailable,
			Kind: "Transient House", Address: "4 Kisad Rd, Baguio, Benguet",
			Location: &models.Location{Lat: 16.4088, Lng: 120.5933},
			ImageURL: "https://images.hatidhub.ph/accommodations/bahay-kubo.jpg",
			Rating:   4.5, Capacity: 6, NightlyRate: 2400.00,
			Permits: []string{"DOT Accreditation 2025-0711"},
		},
		{
			ID: "accom-2", Name: "Manila Bayview Inn", Status: models.AccommodationStatusBooked,
			Kind: "Inn", Address: "120 Roxas Blvd, Ermita, Manila, Metro Manila",
			Location: &models.Location{Lat: 14.5833, Lng: 120.9789},
			ImageURL: "https://images.hatidhub.ph/accommodations/bayview-inn.jpg",
			Rating:   4.2, Capacity: 24, NightlyRate: 3200.00,
			Permits:      []string{"DOT Accreditation 2025-0302", "Fire Safety 2025-112"},
			CurrentGuest: strptr("Angelica Mercado"),
		},
		{
			ID: "accom-3", Name: "Cebu Seaside Suites", Status: models.AccommodationStatusCleaning,
			Kind: "Hotel", Address: "2 Mactan Rd, Lapu-Lapu, Cebu",
			Location: &models.Location{Lat: 10.3103, Lng: 123.9494},
			ImageURL: "https://images.hatidhub.ph/accommodations/cebu-seaside.jpg",
			Rating:   4.7, Capacity: 48, NightlyRate: 5400.00,
			Permits: []string{"DOT Accreditation 2025-0488"},
		},
		{
			ID: "accom-4", Name: "Vigan Heritage Posada", Status: models.AccommodationStatusMaintenance,
			Kind: "Inn", Address: "15 Calle Crisologo, Vigan, Ilocos Sur",
			Location: &models.Location{Lat: 17.5725, Lng: 120.3873},
			ImageURL: "https://images.hatidhub.ph/accommodations/vigan-posada.jpg",
			Rating:   4.8, Capacity: 12, NightlyRate: 4100.00,
			Permits: []string{"DOT Accreditation 2025-0157"},
		},
	}
}

// Orders is the historical order set. store-4 deliberately has none, so
// switching the cart context to it yields an empty cart.
func Orders() []models.Order {
	return []models.Order{
		{
			ID: "order-1", StoreID: "store-1",
			Items: []models.CartItem{
				{ProductID: "1", Name: "Sinandomeng Rice 5kg", Price: 285.00, Quantity: 1},
				{ProductID: "3", Name: "Kopiko Black 3-in-1 Twin Pack", Price: 15.00, Quantity: 4},
			},
			Subtotal: 345.00, Tax: 17.25, Discount: 0, Total: 362.25,
			Status: models.OrderStatusDelivered, PlacedBy: "user-3",
			PlacedAt: time.Date(2025, 8, 20, 11, 30, 0, 0, time.UTC),
		},
		{
			ID: "order-2", StoreID: "store-1",
			Items: []models.CartItem{
				{ProductID: "7", Name: "Lechon Belly Roll 1kg", Price: 560.00, Quantity: 2},
			},
			Subtotal: 1120.00, Tax: 56.00, Discount: 0, Total: 1176.00,
			Status: models.OrderStatusDelivered, PlacedBy: "user-3",
			PlacedAt: time.Date(2025, 8, 28, 18, 5, 0, 0, time.UTC),
		},
		{
			ID: "order-3", StoreID: "store-2",
			Items: []models.CartItem{
				{ProductID: "4", Name: "Carabao Mango per kg", Price: 180.00, Quantity: 3},
				{ProductID: "10", Name: "Calamansi per kg", Price: 90.00, Quantity: 1},
			},
			Subtotal: 630.00, Tax: 31.50, Discount: 0, Total: 661.50,
			Status: models.OrderStatusDelivered, PlacedBy: "user-2",
			PlacedAt: time.Date(2025, 8, 25, 9, 45, 0, 0, time.UTC),
		},
	}
}

// Users are the dashboard staff accounts. Mock credentials only.
func Users() []models.User {
	return []models.User{
		{ID: "user-1", Name: "Maria Clara Ibarra", Email: "superadmin@hatidhub.ph", Password: mustHash("hatid-super"), Role: models.RoleSuperAdmin, Status: models.UserStatusActive, CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "user-2", Name: "Crisostomo Salonga", Email: "admin@hatidhub.ph", Password: mustHash("hatid-admin"), Role: models.RoleAdmin, Status: models.UserStatusActive, CreatedAt: time.Date(2023, 3, 12, 0, 0, 0, 0, time.UTC)},
		{ID: "user-3", Name: "Sisa Madrigal", Email: "staff@hatidhub.ph", Password: mustHash("hatid-staff"), Role: models.RoleStaff, Status: models.UserStatusActive, CreatedAt: time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)},
	}
}

func mustHash(password string) string {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	return hashed
}
