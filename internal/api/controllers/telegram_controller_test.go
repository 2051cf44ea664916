package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sahlatrack/internal/models/request_models"
	"sahlatrack/internal/models/response_models"
	mem "sahlatrack/pkg/memcache"
)

type stubSubscriptionService struct {
	commands []string
	reply    string
	err      error
}

func (s *stubSubscriptionService) SubmitPayment(ctx context.Context, accountID uuid.UUID, req request_models.SubmitPaymentRequest) (*response_models.SubmitPaymentResponse, error) {
	return nil, nil
}

func (s *stubSubscriptionService) HandleReviewerCommand(ctx context.Context, text string) (string, error) {
	s.commands = append(s.commands, text)
	return s.reply, s.err
}

func (s *stubSubscriptionService) PendingPayments(ctx context.Context, accountID uuid.UUID) ([]response_models.PaymentView, error) {
	return nil, nil
}

func (s *stubSubscriptionService) ReviewQueue(ctx context.Context) ([]response_models.ReviewItem, error) {
	return nil, nil
}

type stubNotifier struct {
	messages []string
}

func (n *stubNotifier) SendMessage(ctx context.Context, text string) error {
	n.messages = append(n.messages, text)
	return nil
}

func newWebhookRig(reply string) (*stubSubscriptionService, *stubNotifier, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	svc := &stubSubscriptionService{reply: reply}
	notifier := &stubNotifier{}
	controller := NewTelegramController(svc, notifier, mem.NewSeenUpdates())

	r := gin.New()
	r.POST("/webhooks/telegram", controller.HandleUpdate)
	return svc, notifier, r
}

func postUpdate(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookRelaysCommandAndAcknowledges(t *testing.T) {
	svc, notifier, r := newWebhookRig("✅ Approved subscription for Lina, now on the premium plan")

	w := postUpdate(t, r, `{"update_id":1,"message":{"text":"approve_abc","chat":{"id":5}}}`)
	assert.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, []string{"approve_abc"}, svc.commands)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Approved")
}

func TestWebhookAlwaysReturns200(t *testing.T) {
	svc, _, r := newWebhookRig("⚠️ Failed to apply decision, please retry")
	svc.err = context.DeadlineExceeded

	// Handler error still acknowledges with 200; Telegram must not retry.
	w := postUpdate(t, r, `{"update_id":2,"message":{"text":"approve_abc","chat":{"id":5}}}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// Malformed body too.
	w = postUpdate(t, r, `{"update_id":`)
	assert.Equal(t, http.StatusOK, w.Code)

	// And an update with no usable text.
	w = postUpdate(t, r, `{"update_id":3}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookSuppressesDuplicateUpdates(t *testing.T) {
	svc, _, r := newWebhookRig("ok")

	body := `{"update_id":9,"message":{"text":"reject_abc","chat":{"id":5}}}`
	assert.Equal(t, http.StatusOK, postUpdate(t, r, body).Code)
	assert.Equal(t, http.StatusOK, postUpdate(t, r, body).Code)

	// Second delivery never reaches the decision handler.
	assert.Equal(t, []string{"reject_abc"}, svc.commands)
}

func TestWebhookIgnoresPlainChatter(t *testing.T) {
	svc, notifier, r := newWebhookRig("Command not recognized. Reply with /approve_<payment id> or /reject_<payment id>.")

	w := postUpdate(t, r, `{"update_id":4,"message":{"text":"good morning","chat":{"id":5}}}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// The neutral acknowledgment still goes back to the chat.
	require.Equal(t, []string{"good morning"}, svc.commands)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "not recognized")
}
