package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tranvhq/golibrary/internal/domain"
	"go.uber.org/zap"
)

// UserRepo resolves the contact address for a notification target.
type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

// HTTPClient is the transport the webhook notifier posts through.
type HTTPClient interface {
	Post(url string, contentType string, body []byte) (int, []byte, error)
}

// Event is the payload delivered to the notification webhook when a borrow
// request is handled.
type Event struct {
	EventID   string    `json:"event_id"`
	RequestID int       `json:"request_id"`
	Status    string    `json:"status"`
	Contact   string    `json:"contact"`
	EmittedAt time.Time `json:"emitted_at"`
}

// WebhookNotifier posts request-handled events to an external mailer
// endpoint. Delivery is fire-and-forget: failures are logged and never
// propagate to the caller.
type WebhookNotifier struct {
	url      string
	userRepo UserRepo
	client   HTTPClient
}

func NewWebhookNotifier(url string, userRepo UserRepo, client HTTPClient) *WebhookNotifier {
	return &WebhookNotifier{
		url:      url,
		userRepo: userRepo,
		client:   client,
	}
}

func (n *WebhookNotifier) RequestHandled(ctx context.Context, req *domain.BorrowRequest, status string) {
	if n.url == "" {
		return
	}

	user, err := n.userRepo.FindByID(ctx, req.UserID)
	if err != nil || user == nil {
		zap.L().Warn("can't resolve notification target", zap.Int("userID", req.UserID), zap.Error(err))
		return
	}

	event := Event{
		EventID:   uuid.NewString(),
		RequestID: req.ID,
		Status:    status,
		Contact:   user.Email,
		EmittedAt: time.Now(),
	}

	go func() {
		body, err := json.Marshal(event)
		if err != nil {
			zap.L().Error("can't marshal notification event", zap.Error(err))
			return
		}
		code, _, err := n.client.Post(n.url, "application/json", body)
		if err != nil {
			zap.L().Warn("notification delivery failed", zap.String("eventID", event.EventID), zap.Error(err))
			return
		}
		if code >= http.StatusBadRequest {
			zap.L().Warn("notification rejected by webhook",
				zap.String("eventID", event.EventID), zap.Int("status", code))
		}
	}()
}
