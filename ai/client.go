//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_assistant.go -package=mocks
package ai

import (
	"context"
	"mongolshop/domain"
)

// Prompt is one turn sent to the generative collaborator.
type Prompt struct {
	Text string
	// Image is the optional inline attachment, already decomposed into
	// raw payload bytes plus its declared media type.
	Image *domain.Attachment
	// SystemInstruction fixes the assistant persona for the whole turn.
	SystemInstruction string
}

// IAssistant is the generative-AI collaborator. Generate returns either
// non-empty response text or an error carrying the failure reason; a
// reply without text is an error, never an empty success. Implementations
// must not retry on their own.
type IAssistant interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}
