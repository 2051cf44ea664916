package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// AssistantService answers the in-app support widget. Common questions
// are answered by keyword rules; anything else falls through to an LLM
// when an API key is configured.
type AssistantService interface {
	Chat(ctx context.Context, userName, message string) (string, error)
}

type assistantService struct {
	client *openai.Client
	model  string
}

func NewAssistantService(apiKey string) AssistantService {
	s := &assistantService{model: openai.GPT4oMini}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	return s
}

const assistantSystemPrompt = "You are the Sahla-Track support assistant. " +
	"Sahla-Track is an order-tracking app with three plans: Free ($0/month, 20 orders), " +
	"Premium ($4.99/month, 500 orders) and Unlimited ($9.99/month). Subscription payments " +
	"are made by Binance Pay bank transfer and verified manually. Answer briefly and only " +
	"about orders, payments, plans and accounts."

func (s *assistantService) Chat(ctx context.Context, userName, message string) (string, error) {
	if reply, ok := cannedReply(message); ok {
		return reply, nil
	}

	if s.client == nil {
		return defaultAssistantReply, nil
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: assistantSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("%s asks: %s", userName, message)},
		},
		MaxTokens: 300,
	})
	if err != nil {
		log.Printf("assistant: completion failed: %v", err)
		return defaultAssistantReply, nil
	}
	if len(resp.Choices) == 0 {
		return defaultAssistantReply, nil
	}
	return resp.Choices[0].Message.Content, nil
}

const defaultAssistantReply = "I'm still learning to respond to different questions. " +
	"Can you ask something about orders, payments, or your account?"

func cannedReply(message string) (string, bool) {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "order") && strings.Contains(lower, "status"):
		return "You can check your order status in the Orders section. Would you like me to guide you there?", true
	case strings.Contains(lower, "payment") || strings.Contains(lower, "binance"):
		return "Sahla-Track uses Binance Pay for all subscription payments. Your payment information is securely processed and never stored on our servers.", true
	case strings.Contains(lower, "plan") || strings.Contains(lower, "upgrade"):
		return "We offer three plans: Free ($0/month), Premium ($4.99/month), and Unlimited ($9.99/month). You can upgrade your plan in the Subscription section.", true
	case strings.Contains(lower, "help") || strings.Contains(lower, "support"):
		return "I'm here to help! You can ask me questions about orders, payments, or your account. For complex issues, please contact our support team.", true
	}
	return "", false
}
