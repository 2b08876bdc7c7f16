package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
)

// Chain formats a prompt template and returns the model's text completion.
type Chain struct {
	Template     prompt.ChatTemplate
	ChatModel    model.BaseChatModel
	ModelOptions []model.Option
}

func NewChain(chatModel model.BaseChatModel, template prompt.ChatTemplate, opts ...model.Option) *Chain {
	return &Chain{
		Template:     template,
		ChatModel:    chatModel,
		ModelOptions: opts,
	}
}

func (c *Chain) Invoke(ctx context.Context, vars map[string]any) (string, error) {
	messages, err := c.Template.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("build prompt failed: %w", err)
	}
	response, err := c.ChatModel.Generate(ctx, messages, c.ModelOptions...)
	if err != nil {
		return "", fmt.Errorf("call model failed: %w", err)
	}
	if response == nil {
		return "", ErrEmptyCompletion
	}
	content := strings.TrimSpace(response.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
