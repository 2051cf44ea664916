package services

import (
	"context"

	"sahlatrack/internal/models/response_models"
	"sahlatrack/internal/repositories"
	"sahlatrack/pkg/utils"
)

type PlanServiceInterface interface {
	ListPlans(ctx context.Context) ([]response_models.PlanView, error)
}

type PlanService struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

func (p *PlanService) ListPlans(ctx context.Context) ([]response_models.PlanView, error) {
	plans, err := p.planRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.PlanView, 0, len(plans))
	for _, plan := range plans {
		views = append(views, response_models.PlanView{
			ID:         plan.ID,
			Code:       plan.Code,
			Name:       plan.Name,
			PriceMinor: plan.PriceMinor,
			Currency:   plan.Currency,
			OrderLimit: plan.OrderLimit,
		})
	}
	return views, nil
}
