package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tranvhq/golibrary/internal/domain"
)

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) FindByID(context.Context, int) (*domain.User, error) {
	return s.user, s.err
}

type captureClient struct {
	posted chan []byte
	code   int
}

func (c *captureClient) Post(url, contentType string, body []byte) (int, []byte, error) {
	c.posted <- body
	return c.code, nil, nil
}

func TestRequestHandled(t *testing.T) {
	req := &domain.BorrowRequest{ID: 3, UserID: 1, Status: domain.RequestStatusApproved}

	t.Run("Event delivered with the user's contact", func(t *testing.T) {
		client := &captureClient{posted: make(chan []byte, 1), code: http.StatusOK}
		notifier := NewWebhookNotifier("http://mailer.local/hook",
			&stubUserRepo{user: &domain.User{ID: 1, Email: "student42@example.edu"}}, client)

		notifier.RequestHandled(context.Background(), req, domain.RequestStatusApproved)

		select {
		case body := <-client.posted:
			var event Event
			assert.NoError(t, json.Unmarshal(body, &event))
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, 3, event.RequestID)
			assert.Equal(t, domain.RequestStatusApproved, event.Status)
			assert.Equal(t, "student42@example.edu", event.Contact)
		case <-time.After(time.Second):
			t.Fatal("notification was never posted")
		}
	})

	t.Run("No webhook configured", func(t *testing.T) {
		client := &captureClient{posted: make(chan []byte, 1), code: http.StatusOK}
		notifier := NewWebhookNotifier("", &stubUserRepo{user: &domain.User{ID: 1}}, client)

		notifier.RequestHandled(context.Background(), req, domain.RequestStatusApproved)

		select {
		case <-client.posted:
			t.Fatal("nothing should be posted without a webhook URL")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("Unresolvable user is skipped", func(t *testing.T) {
		client := &captureClient{posted: make(chan []byte, 1), code: http.StatusOK}
		notifier := NewWebhookNotifier("http://mailer.local/hook",
			&stubUserRepo{err: errors.New("some error")}, client)

		notifier.RequestHandled(context.Background(), req, domain.RequestStatusRejected)

		select {
		case <-client.posted:
			t.Fatal("nothing should be posted for an unknown user")
		case <-time.After(50 * time.Millisecond):
		}
	})
}
