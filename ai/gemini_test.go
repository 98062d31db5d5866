package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mongolshop/domain"
	"mongolshop/errors"

	"github.com/stretchr/testify/require"
)

func TestGeminiClient_Generate(t *testing.T) {
	t.Run("should return candidate text on success", func(t *testing.T) {
		req := require.New(t)

		var got generateRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req.NoError(json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Сайн байна уу!"}]}}]}`))
		}))
		defer server.Close()

		client := NewGeminiClient(server.URL, "test-key", DefaultModel, 5*time.Second)
		text, err := client.Generate(context.Background(), Prompt{
			Text:              "Ноолууран ороолт байна уу?",
			SystemInstruction: SalesAssistantInstruction,
		})

		req.NoError(err)
		req.Equal("Сайн байна уу!", text)
		req.NotNil(got.SystemInstruction)
		req.Len(got.Contents, 1)
		req.Equal("Ноолууран ороолт байна уу?", got.Contents[0].Parts[0].Text)
	})

	t.Run("should send inline image payload with media type", func(t *testing.T) {
		req := require.New(t)

		var got generateRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req.NoError(json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
		}))
		defer server.Close()

		// PNG magic bytes so the sniffer declares image/png.
		attachment := domain.NewAttachment([]byte("\x89PNG\r\n\x1a\nrest-of-payload"))
		req.Equal("image/png", attachment.MediaType)

		client := NewGeminiClient(server.URL, "test-key", DefaultModel, 5*time.Second)
		_, err := client.Generate(context.Background(), Prompt{Text: "ижил бараа?", Image: &attachment})

		req.NoError(err)
		req.Len(got.Contents, 1)
		req.Len(got.Contents[0].Parts, 2)
		req.NotNil(got.Contents[0].Parts[0].InlineData)
		req.Equal("image/png", got.Contents[0].Parts[0].InlineData.MimeType)
	})

	t.Run("should fail on API error status", func(t *testing.T) {
		req := require.New(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
		}))
		defer server.Close()

		client := NewGeminiClient(server.URL, "test-key", DefaultModel, 5*time.Second)
		_, err := client.Generate(context.Background(), Prompt{Text: "hi"})

		req.Error(err)
		req.Contains(err.Error(), "quota exceeded")
	})

	t.Run("should fail when the reply carries no text", func(t *testing.T) {
		req := require.New(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client := NewGeminiClient(server.URL, "test-key", DefaultModel, 5*time.Second)
		_, err := client.Generate(context.Background(), Prompt{Text: "hi"})

		req.ErrorIs(err, errors.ErrEmptyReply)
	})
}
