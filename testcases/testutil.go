package testcases

import (
	"context"
	"os"
	"testing"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/tbxark/lessonflow/agent"
	"github.com/tbxark/lessonflow/config"
	"github.com/tbxark/lessonflow/types"
)

func InitChatModel(t *testing.T) *openai.ChatModel {
	if os.Getenv("LESSONFLOW_RUN_LIVE_TESTS") != "1" {
		t.Skip("set LESSONFLOW_RUN_LIVE_TESTS=1 to run live LLM tests")
		return nil
	}

	ctx := context.Background()
	conf, err := config.Load("../config.yml")
	if err != nil {
		t.Skipf("failed to load config: %v", err)
		return nil
	}
	if conf.OpenAI.ApiKey == "" {
		t.Skip("config.yml openai.api_key is empty")
		return nil
	}
	temperature := conf.OpenAI.Temperature
	maxTokens := conf.OpenAI.MaxTokens
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      conf.OpenAI.ApiKey,
		Model:       conf.OpenAI.Model,
		BaseURL:     conf.OpenAI.BaseURL,
		Timeout:     conf.OpenAI.Timeout,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		t.Fatalf("failed to init chat model: %v", err)
		return nil
	}
	return chatModel
}

// Conversation replays the state echo a client would do between turns.
type Conversation struct {
	t     *testing.T
	flow  *agent.LessonFlow
	State types.SessionState
}

func NewConversation(t *testing.T) *Conversation {
	chatModel := InitChatModel(t)
	if chatModel == nil {
		return nil
	}
	return &Conversation{
		t:     t,
		flow:  agent.NewChatModelLessonFlow(chatModel),
		State: types.NewSessionState(),
	}
}

func (c *Conversation) Say(ctx context.Context, message string) *agent.Response {
	c.t.Helper()
	resp, err := c.flow.Advance(ctx, &agent.Request{Message: message, State: c.State})
	if err != nil {
		c.t.Fatalf("turn %q failed: %v", message, err)
	}
	c.State = resp.State
	return resp
}

func (c *Conversation) SayAll(ctx context.Context, messages ...string) *agent.Response {
	c.t.Helper()
	var resp *agent.Response
	for _, m := range messages {
		resp = c.Say(ctx, m)
	}
	return resp
}
