package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"mongolshop/ai"
	"mongolshop/domain"
	"mongolshop/errors"
	"mongolshop/moderation"
)

// welcomeText opens every transcript.
const welcomeText = "Сайн байна уу? Би **\"Монгол Шоп\"**-ын ухаалаг туслах байна. \n\nТанд бараа сонгоход эсвэл захиалга хийхэд туслах уу?"

// apologyText is the fixed user-facing reply when the collaborator
// fails; the raw failure never reaches the transcript.
const apologyText = "Уучлаарай, системд алдаа гарлаа."

// ChatSession is a strictly sequential turn loop over an append-only
// transcript. At most one send is outstanding; a turn is two-phase:
// the user message and a pending assistant placeholder are appended
// immediately, and the placeholder is resolved (or flagged as an error)
// once the external call settles. Failures are terminal for the turn
// only and are never retried or raised to the caller.
type ChatSession struct {
	assistant ai.IAssistant
	moderator *moderation.Moderator
	log       *slog.Logger

	mu           sync.Mutex
	messages     []domain.ChatMessage
	inFlight     bool
	pendingImage *domain.Attachment
}

func NewChatSession(assistant ai.IAssistant, moderator *moderation.Moderator, log *slog.Logger) *ChatSession {
	return &ChatSession{
		assistant: assistant,
		moderator: moderator,
		log:       log,
		messages: []domain.ChatMessage{{
			ID:        "welcome",
			Role:      domain.ChatRoleAssistant,
			Text:      welcomeText,
			CreatedAt: time.Now().UTC(),
		}},
	}
}

// AttachImage buffers an inline image for the next send, sniffing its
// media type from the payload. It replaces any previous attachment.
func (s *ChatSession) AttachImage(data []byte) domain.Attachment {
	attachment := domain.NewAttachment(data)
	s.mu.Lock()
	s.pendingImage = &attachment
	s.mu.Unlock()
	return attachment
}

// ClearAttachment drops the buffered image without sending it.
func (s *ChatSession) ClearAttachment() {
	s.mu.Lock()
	s.pendingImage = nil
	s.mu.Unlock()
}

// Send runs one turn. It rejects an empty send (no text, no attachment)
// and a send while another is in flight; those are the only errors the
// caller ever sees — collaborator failures become an error-flagged
// assistant turn instead.
func (s *ChatSession) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return errors.ErrSendInFlight
	}
	image := s.pendingImage
	if text == "" && image == nil {
		s.mu.Unlock()
		return errors.ErrEmptySend
	}

	masked, flagged := s.moderator.Mask(text)
	lang := whatlanggo.Detect(masked)

	s.messages = append(s.messages, domain.ChatMessage{
		ID:        uuid.New().String(),
		Role:      domain.ChatRoleUser,
		Text:      masked,
		Image:     image,
		CreatedAt: time.Now().UTC(),
	})
	// The attachment buffer is consumed by the append above, whatever
	// the outcome of the external call.
	s.pendingImage = nil

	pendingIdx := len(s.messages)
	s.messages = append(s.messages, domain.ChatMessage{
		ID:        uuid.New().String(),
		Role:      domain.ChatRoleAssistant,
		CreatedAt: time.Now().UTC(),
		Pending:   true,
	})
	s.inFlight = true
	s.mu.Unlock()

	s.log.Debug("Chat turn started",
		"lang", lang.Lang.Iso6391(),
		"has_image", image != nil,
		"masked_words", len(flagged))

	reply, err := s.assistant.Generate(ctx, ai.Prompt{
		Text:              masked,
		Image:             image,
		SystemInstruction: ai.SalesAssistantInstruction,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	s.messages[pendingIdx].Pending = false
	if err != nil {
		s.log.Warn("Assistant call failed", "error", err)
		s.messages[pendingIdx].Text = apologyText
		s.messages[pendingIdx].Error = true
		return nil
	}
	s.messages[pendingIdx].Text = reply
	return nil
}

// Messages returns a snapshot of the transcript.
func (s *ChatSession) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Busy reports whether a send is outstanding.
func (s *ChatSession) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}
