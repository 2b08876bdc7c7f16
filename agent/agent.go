package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/schema"
)

var _ adk.Agent = (*Agent)(nil)

// Extra keys set on the assistant message emitted by Agent.
const (
	ExtraOptions     = "options"
	ExtraIsTextInput = "is_text_input"
)

type Agent struct {
	name        string
	description string
	flow        *LessonFlow
	store       StateReadWriter
}

func NewAgent(name, description string, flow *LessonFlow, store StateReadWriter) *Agent {
	return &Agent{
		name:        name,
		description: description,
		flow:        flow,
		store:       store,
	}
}

func (a *Agent) Name(ctx context.Context) string {
	return a.name
}

func (a *Agent) Description(ctx context.Context) string {
	return a.description
}

func (a *Agent) Run(ctx context.Context, input *adk.AgentInput, options ...adk.AgentRunOption) *adk.AsyncIterator[*adk.AgentEvent] {
	iter, gen := adk.NewAsyncIteratorPair[*adk.AgentEvent]()
	go func() {
		defer func() {
			e := recover()
			if e != nil {
				gen.Send(&adk.AgentEvent{
					Err: fmt.Errorf("recover from panic: %v", e),
				})
			}
			gen.Close()
		}()
		if len(input.Messages) == 0 {
			gen.Send(&adk.AgentEvent{
				Err: fmt.Errorf("no messages in input"),
			})
			return
		}
		state, err := a.store.Read(ctx)
		if err != nil {
			gen.Send(&adk.AgentEvent{Err: err})
			return
		}
		resp, err := a.flow.Advance(ctx, &Request{
			Message: input.Messages[len(input.Messages)-1].Content,
			State:   state,
		})
		if err != nil {
			gen.Send(&adk.AgentEvent{
				Err: fmt.Errorf("flow advance failed: %w", err),
			})
			return
		}
		if err = a.store.Write(ctx, resp.State); err != nil {
			gen.Send(&adk.AgentEvent{Err: err})
			return
		}
		gen.Send(&adk.AgentEvent{
			Output: &adk.AgentOutput{
				MessageOutput: &adk.MessageVariant{
					IsStreaming: false,
					Message: &schema.Message{
						Role:    schema.Assistant,
						Content: resp.Response,
						Extra: map[string]any{
							ExtraOptions:     resp.Options,
							ExtraIsTextInput: resp.IsTextInput,
						},
					},
					Role: schema.Assistant,
				},
			},
		})
	}()
	return iter
}
