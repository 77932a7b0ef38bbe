package models

// UISignal is an effect the core asks the presentation layer to perform.
// Signals travel over redis pub/sub to the websocket hub and out to every
// connected storefront/admin client.
type UISignal struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	SignalHighlightCar       = "highlight_car"
	SignalClearHighlight     = "clear_highlight"
	SignalOpenBookingForm    = "open_booking_form"
	SignalBookingUpdated     = "booking_updated"
	SignalFleetStatusChanged = "fleet_status_changed"
	SignalAlert              = "alert"
)

type HighlightPayload struct {
	CarID      int `json:"car_id"`
	DurationMs int `json:"duration_ms"`
}

type ClearHighlightPayload struct {
	CarID int `json:"car_id"`
}

type OpenBookingFormPayload struct {
	Car Car `json:"car"`
}

type AlertPayload struct {
	Text string `json:"text"`
}

// API error envelope

type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
