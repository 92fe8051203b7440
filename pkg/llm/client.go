// Package llm wraps the gRPC connection to the LLM sidecar used for
// local (non-agent) question answering.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/docmatrix-ai/docmatrix/proto"
)

// Role of a conversation message.
type Role string

// Conversation roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// Client wraps the gRPC connection to the LLM sidecar.
type Client struct {
	conn        *grpc.ClientConn
	client      pb.LLMServiceClient
	model       string
	temperature *float32
	maxTokens   *int32
}

// NewClient connects to the sidecar at addr. Model and sampling settings
// come from the environment.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service: %w", err)
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	var temperature *float32
	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temp32 := float32(temp)
			temperature = &temp32
		}
	}

	var maxTokens *int32
	if maxStr := os.Getenv("LLM_MAX_TOKENS"); maxStr != "" {
		if max, err := strconv.ParseInt(maxStr, 10, 32); err == nil {
			max32 := int32(max)
			maxTokens = &max32
		}
	}

	slog.Info("LLM client configured", "model", model)

	return &Client{
		conn:        conn,
		client:      pb.NewLLMServiceClient(conn),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Complete sends the conversation to the sidecar and returns the
// completion text.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	pbMessages := make([]*pb.Message, len(messages))
	for i, msg := range messages {
		var role pb.Message_Role
		switch msg.Role {
		case RoleSystem:
			role = pb.Message_ROLE_SYSTEM
		case RoleUser:
			role = pb.Message_ROLE_USER
		case RoleAssistant:
			role = pb.Message_ROLE_ASSISTANT
		default:
			role = pb.Message_ROLE_USER
		}
		pbMessages[i] = &pb.Message{
			Role:    role,
			Content: msg.Content,
		}
	}

	resp, err := c.client.Generate(ctx, &pb.GenerateRequest{
		Messages:    pbMessages,
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}
	return resp.Content, nil
}
