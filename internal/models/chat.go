package models

// AssistantAction is the tag the assistant returns to direct the dispatcher.
type AssistantAction string

const (
	ActionRecommendCar    AssistantAction = "recommend_car"
	ActionInitiateBooking AssistantAction = "initiate_booking"
	ActionModifyBooking   AssistantAction = "modify_booking"
	ActionLocateCar       AssistantAction = "locate_car"
	ActionAnswerQuestion  AssistantAction = "answer_question"
)

// NormalizeAction maps anything outside the five known tags to
// answer_question. The assistant reply is untrusted input.
func NormalizeAction(a AssistantAction) AssistantAction {
	switch a {
	case ActionRecommendCar, ActionInitiateBooking, ActionModifyBooking,
		ActionLocateCar, ActionAnswerQuestion:
		return a
	default:
		return ActionAnswerQuestion
	}
}

// BookingDetails carries modification parameters extracted by the assistant.
type BookingDetails struct {
	EndDate string `json:"endDate"` // YYYY-MM-DD
}

// AssistantReply is the validated, schema-constrained assistant response.
// Transient; never persisted.
type AssistantReply struct {
	ResponseText   string          `json:"responseText"`
	Action         AssistantAction `json:"action"`
	CarID          *int            `json:"carId"`
	BookingDetails *BookingDetails `json:"bookingDetails"`
}

// ChatMessage is one entry in the running transcript.
type ChatMessage struct {
	ID                  string `json:"id"`
	Sender              string `json:"sender"` // "user" | "ai"
	Text                string `json:"text"`
	CarRecommendationID *int   `json:"car_recommendation_id,omitempty"`
}

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatExchangeResponse struct {
	Reply     ChatMessage     `json:"reply"`
	Action    AssistantAction `json:"action"`
	Booking   *Booking        `json:"booking,omitempty"`
	CarToBook *Car            `json:"car_to_book,omitempty"`
}
