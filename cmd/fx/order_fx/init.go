package order_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sahlatrack/internal/repositories"
	"sahlatrack/internal/services"
)

var Module = fx.Provide(
	provideOrderRepo, provideOrderService)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideOrderService(orderRepo repositories.OrderRepository, accountRepo repositories.AccountRepository) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, accountRepo)
}
