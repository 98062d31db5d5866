package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mongolshop/ai"
	"mongolshop/domain"
	"mongolshop/errors"
	"mongolshop/mocks"
	"mongolshop/moderation"
)

func newChatSession(t *testing.T) (*ChatSession, *mocks.MockIAssistant) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	assistant := mocks.NewMockIAssistant(ctrl)
	return NewChatSession(assistant, nil, slog.Default()), assistant
}

func TestChatSession_OpensWithWelcome(t *testing.T) {
	req := require.New(t)
	session, _ := newChatSession(t)

	messages := session.Messages()
	req.Len(messages, 1)
	req.Equal(domain.ChatRoleAssistant, messages[0].Role)
	req.Equal(welcomeText, messages[0].Text)
	req.False(messages[0].Pending)
	req.False(session.Busy())
}

func TestChatSession_Send(t *testing.T) {
	t.Run("should reject an empty send and leave the transcript alone", func(t *testing.T) {
		req := require.New(t)
		session, _ := newChatSession(t)

		req.ErrorIs(session.Send(context.Background(), "   "), errors.ErrEmptySend)
		req.Len(session.Messages(), 1)
	})

	t.Run("should append the user turn and a pending placeholder before the call settles", func(t *testing.T) {
		req := require.New(t)
		session, assistant := newChatSession(t)

		assistant.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, prompt ai.Prompt) (string, error) {
				// Observed mid-call: both phase-one appends are visible.
				messages := session.Messages()
				req.Len(messages, 3)
				req.Equal(domain.ChatRoleUser, messages[1].Role)
				req.Equal("Ороолт байна уу?", messages[1].Text)
				req.True(messages[2].Pending)
				req.Empty(messages[2].Text)
				req.True(session.Busy())

				req.Equal(ai.SalesAssistantInstruction, prompt.SystemInstruction)
				return "Байна, 2-р бүтээгдэхүүнийг үзнэ үү.", nil
			}).
			Times(1)

		req.NoError(session.Send(context.Background(), "Ороолт байна уу?"))

		messages := session.Messages()
		req.Len(messages, 3)
		req.False(messages[2].Pending)
		req.False(messages[2].Error)
		req.Equal("Байна, 2-р бүтээгдэхүүнийг үзнэ үү.", messages[2].Text)
		req.NotEqual(messages[1].ID, messages[2].ID)
		req.False(session.Busy())
	})

	t.Run("should resolve a failed call into a single apology turn", func(t *testing.T) {
		req := require.New(t)
		session, assistant := newChatSession(t)

		assistant.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			Return("", fmt.Errorf("api error 429: quota exceeded")).
			Times(1)

		// The collaborator failure never reaches the caller.
		req.NoError(session.Send(context.Background(), "Сайн уу"))

		messages := session.Messages()
		req.Len(messages, 3)
		// The user turn is untouched by the failure.
		req.Equal("Сайн уу", messages[1].Text)
		req.False(messages[1].Error)
		req.Equal(apologyText, messages[2].Text)
		req.True(messages[2].Error)
		req.False(messages[2].Pending)
		req.False(session.Busy())
	})

	t.Run("should reject a send while another is in flight", func(t *testing.T) {
		req := require.New(t)
		session, assistant := newChatSession(t)

		release := make(chan struct{})
		assistant.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, ai.Prompt) (string, error) {
				<-release
				return "за", nil
			}).
			Times(1)

		done := make(chan error, 1)
		go func() { done <- session.Send(context.Background(), "эхний") }()

		req.Eventually(session.Busy, time.Second, 5*time.Millisecond)
		req.ErrorIs(session.Send(context.Background(), "хоёр дахь"), errors.ErrSendInFlight)

		close(release)
		req.NoError(<-done)
		// Only the first send made it into the transcript.
		req.Len(session.Messages(), 3)
	})
}

func TestChatSession_Moderation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	moderator, err := moderation.NewModerator([]string{"новш"}, '*')
	req.NoError(err)

	assistant := mocks.NewMockIAssistant(ctrl)
	session := NewChatSession(assistant, moderator, slog.Default())

	assistant.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt ai.Prompt) (string, error) {
			// The masked text is what leaves the process.
			req.Equal("Энэ **** юм", prompt.Text)
			return "Ойлголоо.", nil
		}).
		Times(1)

	req.NoError(session.Send(context.Background(), "Энэ новш юм"))
	req.Equal("Энэ **** юм", session.Messages()[1].Text)
}

func TestChatSession_Attachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	assistant := mocks.NewMockIAssistant(ctrl)
	session := NewChatSession(assistant, nil, slog.Default())

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	attachment := session.AttachImage(png)
	req.Equal("image/png", attachment.MediaType)

	assistant.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt ai.Prompt) (string, error) {
			req.NotNil(prompt.Image)
			req.Equal("image/png", prompt.Image.MediaType)
			return "Зураг дээрх бараа манайд байна.", nil
		}).
		Times(1)

	// An image alone is a valid send.
	req.NoError(session.Send(context.Background(), ""))
	req.NotNil(session.Messages()[1].Image)

	// The buffer is consumed: the next send carries no image.
	assistant.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt ai.Prompt) (string, error) {
			req.Nil(prompt.Image)
			return "за", nil
		}).
		Times(1)
	req.NoError(session.Send(context.Background(), "баярлалаа"))
	req.Nil(session.Messages()[3].Image)
}

func TestChatSession_ClearAttachment(t *testing.T) {
	req := require.New(t)
	session, _ := newChatSession(t)

	session.AttachImage([]byte("\x89PNG\r\n\x1a\n...."))
	session.ClearAttachment()

	// With the buffer dropped, a bare send is empty again.
	req.ErrorIs(session.Send(context.Background(), ""), errors.ErrEmptySend)
}
