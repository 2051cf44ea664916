package billing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sahlatrack/internal/api/controllers"
	"sahlatrack/internal/repositories"
	"sahlatrack/internal/services"
)

var Module = fx.Provide(
	providePaymentRepo, providePlanRepo, providePlanService,
	provideSubscriptionService, provideBillingController,
)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.PlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

func provideSubscriptionService(
	paymentRepo repositories.PaymentRepository,
	accountRepo repositories.AccountRepository,
	planRepo repositories.PlanRepository,
	notifier services.ReviewerNotifier,
	mailService services.IMailService,
) services.SubscriptionService {
	return services.NewSubscriptionService(paymentRepo, accountRepo, planRepo, notifier, mailService)
}

func provideBillingController(subscriptionService services.SubscriptionService, planService services.PlanServiceInterface) *controllers.BillingController {
	return controllers.NewBillingController(subscriptionService, planService)
}
