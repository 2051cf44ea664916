package controllers_fx

import (
	"go.uber.org/fx"

	"sahlatrack/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewOrderController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewAssistantController))
