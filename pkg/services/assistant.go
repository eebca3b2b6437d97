package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"google.golang.org/genai"

	"backend_hatid/pkg/config"
)

// FallbackReply is shown whenever the model call fails; remote failures are
// never surfaced to the operator as errors.
const FallbackReply = "Sorry, I couldn't reach the assistant right now. Please try again in a moment."

const personaInstruction = "You are Hatid Helper, the assistant built into the HatidHub merchant operations dashboard for a Philippine food and retail delivery marketplace. Answer briefly and practically for dashboard operators."

const assistantModel = "gemini-2.0-flash"

// ErrBusy is returned while a previous request is still in flight; the
// input stays disabled until the reply arrives.
var ErrBusy = errors.New("assistant request already in flight")

// Assistant wraps the hosted text-generation API: single request, single
// response, no conversation history across turns.
type Assistant struct {
	client *genai.Client
	model  string
	busy   atomic.Bool
}

var assistant *Assistant

// InitAssistant sets up the shared assistant client from config.
func InitAssistant() {
	if config.AppConfig.AssistantAPIKey == "" {
		log.Println("Warning: ASSISTANT_API_KEY not set, assistant will answer with the fallback message")
	}
	assistant = NewAssistant(
		config.AppConfig.AssistantAPIURL,
		config.AppConfig.AssistantAPIKey,
		time.Duration(config.AppConfig.HTTPClientTimeoutSeconds)*time.Second,
	)
}

// GetAssistant returns the shared assistant client.
func GetAssistant() *Assistant { return assistant }

// NewAssistant builds the generation client. An empty apiURL or apiKey
// leaves it unconfigured; Ask then always answers with FallbackReply.
func NewAssistant(apiURL, apiKey string, timeout time.Duration) *Assistant {
	a := &Assistant{model: assistantModel}
	if apiURL == "" || apiKey == "" {
		return a
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: apiURL},
	})
	if err != nil {
		log.Printf("Failed to set up assistant client: %v", err)
		return a
	}
	a.client = client
	return a
}

// Ask forwards the question, templated with the fixed persona instruction,
// and returns the model's reply. Any failure degrades to FallbackReply.
// Only one request may be in flight at a time.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	if !a.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer a.busy.Store(false)

	reply, err := a.generate(ctx, question)
	if err != nil {
		log.Printf("Assistant call failed: %v", err)
		return FallbackReply, nil
	}
	return reply, nil
}

func (a *Assistant) generate(ctx context.Context, question string) (string, error) {
	if a.client == nil {
		return "", errors.New("assistant API not configured")
	}

	prompt := personaInstruction + "\n\nQuestion: " + question
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	reply := resp.Text()
	if reply == "" {
		return "", errors.New("assistant returned no candidates")
	}
	return reply, nil
}
