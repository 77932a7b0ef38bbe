package models

// Booking is the single active reservation. The car is a snapshot taken at
// confirmation time; later fleet-status changes do not touch it.
type Booking struct {
	ID        string  `json:"id"`
	Car       Car     `json:"car"`
	StartDate string  `json:"start_date"` // YYYY-MM-DD
	EndDate   string  `json:"end_date"`   // YYYY-MM-DD
	Days      int     `json:"days"`
	TotalCost float64 `json:"total_cost"`
}

type ConfirmBookingRequest struct {
	CarID     int    `json:"car_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ModifyBookingRequest struct {
	EndDate string `json:"end_date"`
}

type QuoteRequest struct {
	CarID     int    `json:"car_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type QuoteResponse struct {
	CarID     int     `json:"car_id"`
	Days      int     `json:"days"`
	TotalCost float64 `json:"total_cost"`
}
