package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sahlatrack/internal/repositories"
	"sahlatrack/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository, accountRepo repositories.AccountRepository) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, accountRepo)
}
