package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sahlatrack/internal/models/request_models"
	"sahlatrack/internal/services"
	"sahlatrack/pkg/utils"
)

type BillingController struct {
	subscriptionService services.SubscriptionService
	planService         services.PlanServiceInterface
}

func NewBillingController(subscriptionService services.SubscriptionService, planService services.PlanServiceInterface) *BillingController {
	return &BillingController{
		subscriptionService: subscriptionService,
		planService:         planService,
	}
}

// SubmitPayment godoc
// @Summary Submit payment details for a tier upgrade
// @Description Records a pending payment and asks the reviewer for approval
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body request_models.SubmitPaymentRequest true "Payment details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/payments [post]
func (b *BillingController) SubmitPayment(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := b.subscriptionService.SubmitPayment(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payment details submitted, awaiting verification")
}

// PendingPayments godoc
// @Summary List the caller's pending payments
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/payments/pending [get]
func (b *BillingController) PendingPayments(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	payments, err := b.subscriptionService.PendingPayments(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payments, "Pending payments fetched successfully")
}

// ReviewQueue godoc
// @Summary List all pending payments awaiting a decision
// @Description Admin fallback for reviewing payments when the relay is down
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /billing/review [get]
func (b *BillingController) ReviewQueue(c *gin.Context) {
	items, err := b.subscriptionService.ReviewQueue(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Review queue fetched successfully")
}

// ListPlans godoc
// @Summary List subscription plans
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (b *BillingController) ListPlans(c *gin.Context) {
	plans, err := b.planService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}
