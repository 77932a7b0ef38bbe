package models

// CarType classifies a vehicle in the rental fleet.
type CarType string

const (
	CarTypeSedan    CarType = "Sedan"
	CarTypeSUV      CarType = "SUV"
	CarTypeSports   CarType = "Sports"
	CarTypeElectric CarType = "Electric"
	CarTypeLuxury   CarType = "Luxury"
)

// CarStatus is the availability state an admin can toggle.
type CarStatus string

const (
	StatusAvailable   CarStatus = "Available"
	StatusMaintenance CarStatus = "Maintenance Required"
)

// ValidCarStatus reports whether s is one of the two admin-settable states.
func ValidCarStatus(s CarStatus) bool {
	return s == StatusAvailable || s == StatusMaintenance
}

type CarFeatures struct {
	Seats        int    `json:"seats"`
	Transmission string `json:"transmission"` // "Automatic" | "Manual"
	Fuel         string `json:"fuel"`         // "Gasoline" | "Diesel" | "Electric"
}

// Car is a catalog entry. Only Status mutates after startup, and only
// through the fleet store's admin path.
type Car struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Type        CarType     `json:"type"`
	PricePerDay float64     `json:"price_per_day"`
	ImageURL    string      `json:"image_url"`
	Features    CarFeatures `json:"features"`
	Status      CarStatus   `json:"status"`
	Location    string      `json:"location"`
}

// FleetStats are read-side derivations over the current fleet, never stored.
type FleetStats struct {
	TotalCars        int  `json:"total_cars"`
	Available        int  `json:"available"`
	InMaintenance    int  `json:"in_maintenance"`
	HasActiveBooking bool `json:"has_active_booking"`
}

// MapPoint is a car plotted on the admin fleet map.
type MapPoint struct {
	CarID    int       `json:"car_id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Status   CarStatus `json:"status"`
	X        int       `json:"x"`
	Y        int       `json:"y"`
}
