// ABOUTME: Conversational assistant calls with conversation history
// ABOUTME: Replies may carry provider recommendations the user can book directly

package client

import (
	"context"
	"net/http"
)

// Chat message roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of the conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message             string        `json:"message" validate:"required"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}

// RecommendedProvider is a provider the assistant suggests for the
// user's request.
type RecommendedProvider struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ServiceType string  `json:"service_type"`
	Rating      float64 `json:"rating"`
	TrustScore  float64 `json:"trust_score"`
	Price       float64 `json:"price"`
	Distance    float64 `json:"distance"`
}

// ChatReply is the assistant's answer for one turn.
type ChatReply struct {
	Reply                string                `json:"reply"`
	RecommendedProviders []RecommendedProvider `json:"recommended_providers,omitempty"`
}

// Chat calls POST /api/chat with the message and prior turns. History
// must be in chronological order; the server infers urgency from it.
func (c *Client) Chat(ctx context.Context, message string, history []ChatMessage) (*ChatReply, error) {
	in := chatRequest{Message: message, ConversationHistory: history}
	if in.ConversationHistory == nil {
		in.ConversationHistory = []ChatMessage{}
	}
	if err := c.validateInput(in); err != nil {
		return nil, err
	}

	var out ChatReply
	if err := c.sendJSON(ctx, http.MethodPost, "/api/chat", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
