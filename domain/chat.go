package domain

import (
	"time"

	"github.com/gabriel-vasile/mimetype"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// Attachment is an inline image decomposed into its raw payload and
// declared media type, ready for transmission to the assistant.
type Attachment struct {
	Data      []byte
	MediaType string
}

// NewAttachment sniffs the media type from the payload's magic bytes.
func NewAttachment(data []byte) Attachment {
	return Attachment{
		Data:      data,
		MediaType: mimetype.Detect(data).String(),
	}
}

func (a Attachment) IsZero() bool {
	return len(a.Data) == 0
}

// ChatMessage is one turn of the transcript. The transcript is strictly
// append-only: prior entries are never mutated or deleted. A Pending
// assistant turn is the placeholder written before the external call
// resolves; it is replaced in place by the resolved turn, which is the
// only exception to immutability and is observable by tests.
type ChatMessage struct {
	ID        string
	Role      ChatRole
	Text      string
	Image     *Attachment
	CreatedAt time.Time
	Pending   bool
	Error     bool
}
