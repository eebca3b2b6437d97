package models

// Role enum
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleStaff      Role = "STAFF"
)

// UserStatus enum
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// RestaurantStatus enum
type RestaurantStatus string

const (
	RestaurantStatusOpen        RestaurantStatus = "OPEN"
	RestaurantStatusBusy        RestaurantStatus = "BUSY"
	RestaurantStatusClosed      RestaurantStatus = "CLOSED"
	RestaurantStatusMaintenance RestaurantStatus = "MAINTENANCE"
)

// StoreStatus enum
type StoreStatus string

const (
	StoreStatusOpen       StoreStatus = "OPEN"
	StoreStatusBusy       StoreStatus = "BUSY"
	StoreStatusClosed     StoreStatus = "CLOSED"
	StoreStatusRestocking StoreStatus = "RESTOCKING"
)

// AccommodationStatus enum
type AccommodationStatus string

const (
	AccommodationStatusAvailable   AccommodationStatus = "AVAILABLE"
	AccommodationStatusBooked      AccommodationStatus = "BOOKED"
	AccommodationStatusCleaning    AccommodationStatus = "CLEANING"
	AccommodationStatusMaintenance AccommodationStatus = "MAINTENANCE"
)

// RiderStatus enum. SUSPENDED is effectively terminal: only an explicit
// reinstate action leaves it.
type RiderStatus string

const (
	RiderStatusAvailable  RiderStatus = "AVAILABLE"
	RiderStatusOnDelivery RiderStatus = "ON_DELIVERY"
	RiderStatusOffline    RiderStatus = "OFFLINE"
	RiderStatusSuspended  RiderStatus = "SUSPENDED"
)

// VehicleType enum
type VehicleType string

const (
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
	VehicleTypeBicycle    VehicleType = "BICYCLE"
	VehicleTypeCar        VehicleType = "CAR"
)

// CustomerStatus enum
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
	CustomerStatusBlocked  CustomerStatus = "BLOCKED"
)

// CustomerTier enum
type CustomerTier string

const (
	CustomerTierBronze   CustomerTier = "BRONZE"
	CustomerTierSilver   CustomerTier = "SILVER"
	CustomerTierGold     CustomerTier = "GOLD"
	CustomerTierPlatinum CustomerTier = "PLATINUM"
)

// CustomerType enum
type CustomerType string

const (
	CustomerTypeRegular         CustomerType = "REGULAR"
	CustomerTypeRestaurantOwner CustomerType = "RESTAURANT_OWNER"
	CustomerTypeStoreOwner      CustomerType = "STORE_OWNER"
	CustomerTypeDeliveryRider   CustomerType = "DELIVERY_RIDER"
)

// OrderStatus enum
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusInTransit OrderStatus = "IN_TRANSIT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// AuditAction enum
type AuditAction string

const (
	AuditActionCreate       AuditAction = "CREATE"
	AuditActionUpdate       AuditAction = "UPDATE"
	AuditActionDelete       AuditAction = "DELETE"
	AuditActionStatusChange AuditAction = "STATUS_CHANGE"
	AuditActionLogin        AuditAction = "LOGIN"
	AuditActionCheckout     AuditAction = "CHECKOUT"
)
