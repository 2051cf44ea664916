package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sahlatrack/internal/services"
	mem "sahlatrack/pkg/memcache"
	"sahlatrack/pkg/telegram"
)

const updateDedupWindow = 10 * time.Minute

// TelegramController is the inbound side of the reviewer relay. Every
// response is 200: Telegram retries non-2xx answers aggressively and the
// decision handler is already idempotent, so nothing is gained by
// surfacing errors here.
type TelegramController struct {
	subscriptionService services.SubscriptionService
	notifier            services.ReviewerNotifier
	seen                mem.SeenUpdateStore
}

func NewTelegramController(subscriptionService services.SubscriptionService, notifier services.ReviewerNotifier, seen mem.SeenUpdateStore) *TelegramController {
	return &TelegramController{
		subscriptionService: subscriptionService,
		notifier:            notifier,
		seen:                seen,
	}
}

func (t *TelegramController) HandleUpdate(c *gin.Context) {
	var update telegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ignored malformed update"})
		return
	}

	text := update.CommandText()
	if text == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "No message received"})
		return
	}

	if update.UpdateID != 0 && t.seen.MarkSeen(update.UpdateID, updateDedupWindow) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Duplicate update suppressed"})
		return
	}

	reply, err := t.subscriptionService.HandleReviewerCommand(c.Request.Context(), text)
	if err != nil {
		log.Printf("telegram webhook: command %q: %v", text, err)
	}

	if reply != "" {
		if err := t.notifier.SendMessage(c.Request.Context(), reply); err != nil {
			log.Printf("telegram webhook: acknowledgment failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
