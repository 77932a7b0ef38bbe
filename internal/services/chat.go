package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"prestige-backend/internal/booking"
	"prestige-backend/internal/catalog"
	"prestige-backend/internal/models"
)

const greetingText = "Hello! I'm Auto-Mate. How can I help you today? Feel free to ask 'what SUVs do you have?' or 'I need a car for a week'."

// assistantClient is what ChatService needs from the assistant protocol.
type assistantClient interface {
	Reply(ctx context.Context, userQuery string, pctx PromptContext) models.AssistantReply
}

// ChatService owns the running transcript and sequences assistant exchanges.
// Exactly one exchange may be in flight at a time; a second message while one
// is outstanding is rejected rather than queued, mirroring the storefront
// disabling its input. Each exchange carries a sequence number and a reply is
// discarded if a newer exchange has started, so a stale reply can never
// mutate state out of order.
type ChatService struct {
	assistant  assistantClient
	dispatcher *Dispatcher
	fleet      *catalog.FleetStore
	bookings   *booking.Store

	gate chan struct{}
	seq  atomic.Uint64

	mu         sync.Mutex
	transcript []models.ChatMessage
}

func NewChatService(assistant assistantClient, dispatcher *Dispatcher, fleet *catalog.FleetStore, bookings *booking.Store) *ChatService {
	s := &ChatService{
		assistant:  assistant,
		dispatcher: dispatcher,
		fleet:      fleet,
		bookings:   bookings,
		gate:       make(chan struct{}, 1),
	}
	s.reset()
	return s
}

// HandleMessage runs one full exchange: append the user message, call the
// assistant once, dispatch the resulting action and append the reply.
// Returns a ConflictError if an exchange is already in flight.
func (s *ChatService) HandleMessage(ctx context.Context, text string) (models.ChatExchangeResponse, error) {
	select {
	case s.gate <- struct{}{}:
	default:
		return models.ChatExchangeResponse{}, &ConflictError{Message: "An assistant exchange is already in progress"}
	}
	defer func() { <-s.gate }()

	seq := s.seq.Add(1)

	userMsg := models.ChatMessage{
		ID:     uuid.NewString(),
		Sender: models.SenderUser,
		Text:   text,
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, userMsg)
	pctx := PromptContext{
		Today:      time.Now().Format(booking.DateLayout),
		Fleet:      s.fleet.Cars(),
		Transcript: append([]models.ChatMessage(nil), s.transcript...),
	}
	s.mu.Unlock()

	if b, ok := s.bookings.Current(); ok {
		pctx.Booking = &b
	}

	reply := s.assistant.Reply(ctx, text, pctx)

	// Drop the reply if it is no longer the latest outstanding exchange:
	// nothing is dispatched and the transcript keeps only the user message.
	if s.seq.Load() != seq {
		return models.ChatExchangeResponse{}, &ConflictError{Message: "Exchange superseded"}
	}

	result := s.dispatcher.Apply(ctx, reply)

	aiMsg := models.ChatMessage{
		ID:     uuid.NewString(),
		Sender: models.SenderAI,
		Text:   reply.ResponseText,
	}
	// Attach the recommendation only if the car still exists.
	if reply.CarID != nil {
		if _, err := s.fleet.Get(*reply.CarID); err == nil {
			aiMsg.CarRecommendationID = reply.CarID
		}
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, aiMsg)
	s.mu.Unlock()

	return models.ChatExchangeResponse{
		Reply:     aiMsg,
		Action:    models.NormalizeAction(reply.Action),
		Booking:   result.Booking,
		CarToBook: result.CarToBook,
	}, nil
}

// Transcript returns a copy of the conversation so far.
func (s *ChatService) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.transcript...)
}

// Reset clears the conversation back to the greeting, invalidating any
// in-flight exchange.
func (s *ChatService) Reset() {
	s.seq.Add(1)
	s.reset()
}

func (s *ChatService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = []models.ChatMessage{{
		ID:     uuid.NewString(),
		Sender: models.SenderAI,
		Text:   greetingText,
	}}
}
