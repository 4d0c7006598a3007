package service

import (
	"context"
	"fmt"
	"strings"

	"mirrortime/internal/llm"
	"mirrortime/internal/models"
)

const analysisSystemPrompt = "You are a spiritual guide specializing in interpreting mirror hours and numerical synchronicities. Your analysis should be mystical, thoughtful, and personal."

// AnalysisService produces an AI-generated freeform analysis of a
// time/message pair.
type AnalysisService struct {
	chat llm.ChatClient
}

// NewAnalysisService returns an AnalysisService using the given chat client.
// A nil client disables the feature; Analyze reports it as unconfigured.
func NewAnalysisService(chat llm.ChatClient) *AnalysisService {
	return &AnalysisService{chat: chat}
}

// AnalyzeInput is the payload for Analyze. Message is optional; Language is
// "en" or "fr" and defaults to "en".
type AnalyzeInput struct {
	Time     string
	Message  string
	Language string
}

// ErrAnalysisUnavailable indicates the upstream text-generation API rejected
// the request; callers should surface it as a temporary outage.
type ErrAnalysisUnavailable struct{ Err error }

func (e *ErrAnalysisUnavailable) Error() string {
	return fmt.Sprintf("analysis service unavailable: %v", e.Err)
}

func (e *ErrAnalysisUnavailable) Unwrap() error { return e.Err }

// Analyze builds a locale-specific prompt and returns the generated analysis.
func (s *AnalysisService) Analyze(ctx context.Context, in AnalyzeInput) (string, error) {
	if in.Time == "" {
		return "", models.NewValidationError("Missing required field: time")
	}
	if s.chat == nil {
		return "", models.NewInternalError(fmt.Errorf("text-generation API not configured"))
	}

	out, err := s.chat.ChatCompletion(ctx, []llm.Message{
		{Role: "system", Content: analysisSystemPrompt},
		{Role: "user", Content: buildPrompt(in)},
	})
	if err != nil {
		return "", &ErrAnalysisUnavailable{Err: err}
	}
	return strings.TrimSpace(out), nil
}

func buildPrompt(in AnalyzeInput) string {
	if in.Language == "fr" {
		message := in.Message
		if message == "" {
			message = "Pas de message fourni"
		}
		return fmt.Sprintf(`Analysez l'heure miroir et le message suivants. Retournez une interprétation spirituelle concise et directe :

Heure: %s
Message: %s

Réponse:`, in.Time, message)
	}

	message := in.Message
	if message == "" {
		message = "No message provided"
	}
	return fmt.Sprintf(`Analyze the following mirror hour and message. Return a short spiritual interpretation:

Time: %s
Message: %s

Response:`, in.Time, message)
}
