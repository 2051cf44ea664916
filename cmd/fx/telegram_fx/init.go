package telegram_fx

import (
	"os"

	"go.uber.org/fx"

	"sahlatrack/internal/api/controllers"
	"sahlatrack/internal/services"
	mem "sahlatrack/pkg/memcache"
	"sahlatrack/pkg/telegram"
)

var Module = fx.Provide(
	provideReviewerNotifier, provideSeenUpdates, provideTelegramController,
)

func provideReviewerNotifier() services.ReviewerNotifier {
	return telegram.NewClient(telegram.Config{
		BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	})
}

func provideSeenUpdates() mem.SeenUpdateStore {
	return mem.NewSeenUpdates()
}

func provideTelegramController(subscriptionService services.SubscriptionService, notifier services.ReviewerNotifier, seen mem.SeenUpdateStore) *controllers.TelegramController {
	return controllers.NewTelegramController(subscriptionService, notifier, seen)
}
