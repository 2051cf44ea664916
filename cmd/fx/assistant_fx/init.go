package assistant_fx

import (
	"os"

	"go.uber.org/fx"

	"sahlatrack/internal/services"
)

var Module = fx.Provide(provideAssistantService)

func provideAssistantService() services.AssistantService {
	return services.NewAssistantService(os.Getenv("OPENAI_API_KEY"))
}
