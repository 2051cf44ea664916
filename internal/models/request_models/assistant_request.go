package request_models

type AssistantChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}
