package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistantCannedReplies(t *testing.T) {
	svc := NewAssistantService("")

	reply, err := svc.Chat(context.Background(), "Lina", "How do I check my order status?")
	require.NoError(t, err)
	assert.Contains(t, reply, "Orders section")

	reply, err = svc.Chat(context.Background(), "Lina", "Do you accept Binance payments?")
	require.NoError(t, err)
	assert.Contains(t, reply, "Binance Pay")

	reply, err = svc.Chat(context.Background(), "Lina", "Can I upgrade my plan?")
	require.NoError(t, err)
	assert.Contains(t, reply, "Premium")
}

func TestAssistantWithoutAPIKeyFallsBackToDefault(t *testing.T) {
	svc := NewAssistantService("")

	reply, err := svc.Chat(context.Background(), "Lina", "What is the weather like?")
	require.NoError(t, err)
	assert.Equal(t, defaultAssistantReply, reply)
}
