package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sahlatrack/internal/models/request_models"
	"sahlatrack/internal/services"
	"sahlatrack/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantService
	accountService   services.AccountServiceInterface
}

func NewAssistantController(assistantService services.AssistantService, accountService services.AccountServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
		accountService:   accountService,
	}
}

func (a *AssistantController) Chat(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.AssistantChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userName := ""
	if profile, err := a.accountService.GetProfile(c.Request.Context(), accountID); err == nil {
		userName = profile.Name
	}

	reply, err := a.assistantService.Chat(c.Request.Context(), userName, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"reply": reply}, "")
}
