package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"prestige-backend/internal/models"
)

// fallbackText is the fixed apology shown whenever the assistant boundary
// fails. Every failure mode degrades to this; nothing past this package ever
// sees a raw transport or parse error.
const fallbackText = "I'm sorry, I'm having a little trouble connecting right now. Please try again in a moment."

// contentGenerator is the slice of *genai.GenerativeModel the assistant
// needs. Tests substitute a fake.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// PromptContext is the state snapshot embedded into the system instruction.
type PromptContext struct {
	Today      string
	Fleet      []models.Car
	Booking    *models.Booking
	Transcript []models.ChatMessage
}

// AssistantService turns free-text user input plus fleet/booking context into
// a validated AssistantReply. Purely advisory: it never mutates any store.
type AssistantService struct {
	client *genai.Client
	gen    contentGenerator
}

func NewAssistantService(apiKey, modelName string) (*AssistantService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.3)
	model.SetTopP(0.95)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = replySchema()

	return &AssistantService{client: client, gen: model}, nil
}

func (s *AssistantService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Reply sends one request to the model and returns a well-formed reply in
// every case. Single attempt, no retry: transport errors, empty candidates
// and malformed JSON all degrade to the fallback apology with
// action=answer_question and no car.
func (s *AssistantService) Reply(ctx context.Context, userQuery string, pctx PromptContext) models.AssistantReply {
	resp, err := s.gen.GenerateContent(ctx,
		genai.Text(buildSystemInstruction(pctx)),
		genai.Text(fmt.Sprintf("User query: %q", userQuery)),
	)
	if err != nil {
		log.Printf("assistant: Gemini call failed: %v", err)
		return fallbackReply()
	}

	reply, err := parseAssistantReply(extractText(resp))
	if err != nil {
		log.Printf("assistant: malformed response: %v", err)
		return fallbackReply()
	}
	return reply
}

func fallbackReply() models.AssistantReply {
	return models.AssistantReply{
		ResponseText: fallbackText,
		Action:       models.ActionAnswerQuestion,
	}
}

// parseAssistantReply parses the model output strictly against the response
// schema. Required fields are responseText and action; an action outside the
// five known tags is normalized, not rejected.
func parseAssistantReply(raw string) (models.AssistantReply, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return models.AssistantReply{}, fmt.Errorf("empty response body")
	}

	var reply models.AssistantReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return models.AssistantReply{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if reply.ResponseText == "" {
		return models.AssistantReply{}, fmt.Errorf("missing responseText")
	}
	if reply.Action == "" {
		return models.AssistantReply{}, fmt.Errorf("missing action")
	}

	reply.Action = models.NormalizeAction(reply.Action)
	return reply, nil
}

// replySchema is the fixed object schema every response is constrained to.
func replySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"responseText": {
				Type:        genai.TypeString,
				Description: "A friendly, helpful, and conversational response to the user's query. Respond in the user's language.",
			},
			"action": {
				Type:        genai.TypeString,
				Description: "The suggested action.",
				Enum: []string{
					string(models.ActionRecommendCar),
					string(models.ActionInitiateBooking),
					string(models.ActionModifyBooking),
					string(models.ActionLocateCar),
					string(models.ActionAnswerQuestion),
				},
			},
			"carId": {
				Type:        genai.TypeInteger,
				Nullable:    true,
				Description: "The ID of the car if the action is 'recommend_car' or 'initiate_booking'. Otherwise null.",
			},
			"bookingDetails": {
				Type:        genai.TypeObject,
				Nullable:    true,
				Description: "Details for booking modifications, like a new end date.",
				Properties: map[string]*genai.Schema{
					"endDate": {
						Type:        genai.TypeString,
						Description: "The new requested end date in YYYY-MM-DD format.",
					},
				},
			},
		},
		Required: []string{"responseText", "action"},
	}
}

// fleetSnapshot is the trimmed car view the assistant sees.
type fleetSnapshot struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Type        models.CarType   `json:"type"`
	Seats       int              `json:"seats"`
	PricePerDay float64          `json:"pricePerDay"`
	Status      models.CarStatus `json:"status"`
	Location    string           `json:"location"`
}

func buildSystemInstruction(pctx PromptContext) string {
	snapshot := make([]fleetSnapshot, len(pctx.Fleet))
	for i, c := range pctx.Fleet {
		snapshot[i] = fleetSnapshot{
			ID:          c.ID,
			Name:        c.Name,
			Type:        c.Type,
			Seats:       c.Features.Seats,
			PricePerDay: c.PricePerDay,
			Status:      c.Status,
			Location:    c.Location,
		}
	}
	fleetJSON, _ := json.MarshalIndent(snapshot, "", "  ")

	bookingBlock := "No active booking."
	if pctx.Booking != nil {
		if b, err := json.MarshalIndent(pctx.Booking, "", "  "); err == nil {
			bookingBlock = string(b)
		}
	}

	var history strings.Builder
	for _, m := range pctx.Transcript {
		history.WriteString(m.Sender)
		history.WriteString(": ")
		history.WriteString(m.Text)
		history.WriteString("\n")
	}

	today := pctx.Today
	if today == "" {
		today = time.Now().Format("2006-01-02")
	}

	var b strings.Builder
	b.WriteString("You are 'Auto-Mate', an advanced, friendly, and expert AI assistant for 'Prestige Rentals'.\n")
	b.WriteString("Your primary goal is to provide a seamless and helpful experience for users looking to rent a car.\n")
	b.WriteString("You must be conversational and respond in the language the user is using.\n\n")
	b.WriteString("Your Capabilities:\n")
	b.WriteString("1. Natural Language Booking: Understand and process conversational requests like \"I need an SUV for a family trip next weekend\". Extract details like car type, passenger count, and dates. If crucial information (like dates) is missing, you MUST ask for it.\n")
	b.WriteString("2. Intelligent Recommendations: Suggest the best vehicle based on the user's stated needs (e.g., trip purpose, number of people, budget, features).\n")
	b.WriteString("3. Booking Modifications: Handle requests to change an existing booking. For now, you can only handle extending the rental period (updating the end date).\n")
	b.WriteString("4. Fleet Awareness: You have real-time data on our cars.\n")
	b.WriteString("   - If a user asks about a car that has a status of 'Maintenance Required', inform them it's unavailable and suggest a similar, available alternative.\n")
	b.WriteString("   - You can answer questions about a car's current location.\n")
	b.WriteString("5. Multilingual Support: You must detect the user's language and respond fluently in that same language.\n\n")
	b.WriteString("Date Information:\n- Today's date is " + today + ".\n\n")
	b.WriteString("Current Fleet Status:\n")
	b.Write(fleetJSON)
	b.WriteString("\n\nActive User Booking:\n")
	b.WriteString(bookingBlock)
	b.WriteString("\n\nUser chat history:\n")
	b.WriteString(history.String())

	return b.String()
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
