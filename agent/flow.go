package agent

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/tbxark/lessonflow/catalog"
	"github.com/tbxark/lessonflow/command"
	"github.com/tbxark/lessonflow/dialogue"
	"github.com/tbxark/lessonflow/generator"
	"github.com/tbxark/lessonflow/patch"
	"github.com/tbxark/lessonflow/types"
)

// LessonFlow is the dialogue engine. It holds no per-session state; every
// turn is computed from the request alone.
type LessonFlow struct {
	catalog           *catalog.Catalog
	allowedPaths      map[string]bool
	dispatcher        *Dispatcher
	dialogueGenerator dialogue.Generator
	commandParser     command.Parser
}

func NewLessonFlow(
	c *catalog.Catalog,
	gen generator.ContentGenerator,
	dialogGen dialogue.Generator,
	commandParser command.Parser,
) *LessonFlow {
	return &LessonFlow{
		catalog:           c,
		allowedPaths:      c.AllowedPaths(),
		dispatcher:        NewDispatcher(gen),
		dialogueGenerator: dialogGen,
		commandParser:     commandParser,
	}
}

// NewDefaultLessonFlow wires the built-in catalog, keyword parser and
// catalog-driven questions around gen.
func NewDefaultLessonFlow(gen generator.ContentGenerator) *LessonFlow {
	c := catalog.Default()
	return NewLessonFlow(c, gen, dialogue.NewLocalDialogueGenerator(c), command.NewLocalCommandParser())
}

func NewChatModelLessonFlow(chatModel model.BaseChatModel, opts ...model.Option) *LessonFlow {
	return NewDefaultLessonFlow(generator.NewChatGenerator(chatModel, opts...))
}

// Advance computes one turn. Failures are reported inside the response, the
// error is only set for a nil request.
func (f *LessonFlow) Advance(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	state := req.State.Clone()

	cmd, err := f.commandParser.ParseCommand(ctx, req.Message)
	if err != nil {
		slog.Warn("Failed to parse command", "error", err)
		cmd = command.None
	}
	slog.Debug("Parsed command", "command", cmd, "step", state.CurrentStep)

	switch cmd {
	case command.Regenerate, command.TriggerGeneration:
		state.CurrentStep = types.StepGeneration
		return f.generate(ctx, state), nil
	case command.RenderFailed:
		return &Response{
			Response: dialogue.Text(dialogue.MsgRenderFailed, state.Locale),
			Options:  dialogue.RecoveryOptions(state.Locale),
			State:    state,
		}, nil
	case command.Back:
		return f.back(ctx, state), nil
	case command.Restart:
		return f.ask(ctx, state.ResetToMenu(), dialogue.Text(dialogue.MsgRestarted, state.Locale)), nil
	case command.DownloadComplete:
		return f.ask(ctx, state.ResetToMenu(), dialogue.Text(dialogue.MsgDownloadComplete, state.Locale)), nil
	case command.ShowStep:
		return f.show(ctx, state), nil
	default:
		return f.transition(ctx, state, req.Message), nil
	}
}

func (f *LessonFlow) transition(ctx context.Context, state types.SessionState, message string) *Response {
	for {
		switch state.CurrentStep {
		case types.StepStart:
			state = selectLanguage(state, message)
			return f.ask(ctx, state, dialogue.Text(dialogue.MsgLanguageSelected, state.Locale))
		case types.StepPendingGeneration:
			state.CurrentStep = types.StepGeneration
			return f.generate(ctx, state)
		case types.StepGeneration:
			if state.GeneratedText == "" {
				return f.generate(ctx, state)
			}
			return f.result(state)
		}

		step, ok := f.catalog.Lookup(state.CurrentStep)
		if !ok {
			slog.Warn("Unknown step, resetting", "step", state.CurrentStep)
			return f.ask(ctx, state.ResetToMenu(), "")
		}
		next, ok := step.Next(message)
		if !ok {
			slog.Debug("Reply not understood", "step", state.CurrentStep)
			return f.ask(ctx, state, dialogue.Text(dialogue.MsgNotUnderstood, state.Locale))
		}

		data, err := f.write(state.CollectedData, f.catalog.Binding(step.ID()), message)
		if err != nil {
			slog.Error("Failed to write collected data", "step", step.ID(), "error", err)
			return f.ask(ctx, state.ResetToMenu(), dialogue.Text(dialogue.MsgLost, state.Locale))
		}
		state.CollectedData = data
		state.StepHistory = append(state.StepHistory, step.ID())
		state.CurrentStep = next
		slog.Debug("Moved to step", "from", step.ID(), "to", next, "data", state.CollectedData)

		if next != types.StepPendingGeneration {
			return f.ask(ctx, state, "")
		}
	}
}

func (f *LessonFlow) write(data map[string]string, binding catalog.Binding, message string) (map[string]string, error) {
	if binding.None() {
		return data, nil
	}
	ops := patch.WriteOps(binding.Values(message))
	if err := patch.ValidatePatchOperations(ops, f.allowedPaths); err != nil {
		return nil, err
	}
	return patch.ApplyRFC6902(data, ops)
}

func (f *LessonFlow) back(ctx context.Context, state types.SessionState) *Response {
	if len(state.StepHistory) == 0 {
		return f.ask(ctx, state.ResetToMenu(), "")
	}
	last := len(state.StepHistory) - 1
	prev := state.StepHistory[last]
	state.StepHistory = state.StepHistory[:last]
	if _, ok := f.catalog.Lookup(prev); !ok {
		slog.Warn("Unknown step in history, resetting", "step", prev)
		return f.ask(ctx, state.ResetToMenu(), "")
	}

	data, err := patch.ApplyRFC6902(state.CollectedData, patch.RollbackOps(f.catalog.Binding(prev).Fields))
	if err != nil {
		slog.Error("Failed to roll back collected data", "step", prev, "error", err)
		return f.ask(ctx, state.ResetToMenu(), dialogue.Text(dialogue.MsgLost, state.Locale))
	}
	state.CollectedData = data
	state.CurrentStep = prev
	slog.Debug("Went back", "to", prev, "data", state.CollectedData)
	return f.ask(ctx, state, "")
}

func (f *LessonFlow) show(ctx context.Context, state types.SessionState) *Response {
	switch state.CurrentStep {
	case types.StepPendingGeneration, types.StepGeneration:
		if state.GeneratedText != "" {
			return f.result(state)
		}
		return &Response{
			Response: dialogue.Text(dialogue.MsgReady, state.Locale),
			Options:  dialogue.RecoveryOptions(state.Locale),
			State:    state,
		}
	case types.StepStart:
		return f.ask(ctx, state, "")
	}
	if _, ok := f.catalog.Lookup(state.CurrentStep); !ok {
		slog.Warn("Unknown step, resetting", "step", state.CurrentStep)
		return f.ask(ctx, state.ResetToMenu(), "")
	}
	return f.ask(ctx, state, "")
}

func (f *LessonFlow) generate(ctx context.Context, state types.SessionState) *Response {
	flow := state.FlowType()
	slog.Debug("Dispatching generation", "flow_type", flow)
	text, err := f.dispatcher.Dispatch(ctx, state.CollectedData)
	if err != nil {
		slog.Error("Generation failed", "flow_type", flow, "error", err)
		return &Response{
			Response: dialogue.Text(dialogue.MsgGenerationFailed, state.Locale),
			Options:  []string{command.Label(command.Restart, state.Locale)},
			State:    state.ResetToMenu(),
		}
	}
	state.GeneratedText = text
	state.StepHistory = []types.StepID{}
	state.CurrentStep = types.StepGeneration
	return f.result(state)
}

func (f *LessonFlow) result(state types.SessionState) *Response {
	return &Response{
		Response: state.GeneratedText,
		Options:  dialogue.PostGenerationOptions(state.Locale, state.FlowType()),
		State:    state,
	}
}

// ask renders the question of the current step. A step the catalog does not
// know sends the session back to the flow menu.
func (f *LessonFlow) ask(ctx context.Context, state types.SessionState, notice string) *Response {
	question, err := f.dialogueGenerator.GenerateDialogue(ctx, &dialogue.Request{
		Step:    state.CurrentStep,
		Locale:  state.Locale,
		Data:    state.CollectedData,
		History: state.StepHistory,
		Notice:  notice,
	})
	if err != nil {
		slog.Warn("Failed to render step, resetting", "step", state.CurrentStep, "error", err)
		state = state.ResetToMenu()
		question, err = f.dialogueGenerator.GenerateDialogue(ctx, &dialogue.Request{
			Step:   state.CurrentStep,
			Locale: state.Locale,
			Notice: dialogue.Text(dialogue.MsgLost, state.Locale),
		})
		if err != nil {
			return &Response{Response: dialogue.Text(dialogue.MsgLost, state.Locale), Options: []string{}, State: state}
		}
	}
	return &Response{
		Response:    question.Message,
		Options:     question.Options,
		IsTextInput: question.IsTextInput,
		State:       state,
	}
}

func selectLanguage(state types.SessionState, message string) types.SessionState {
	locale := types.LocaleEN
	normalized := strings.ToLower(message)
	if strings.Contains(normalized, "français") || strings.Contains(normalized, "francais") {
		locale = types.LocaleFR
	}
	return types.SessionState{
		CurrentStep:   types.StepSelectOption,
		Locale:        locale,
		CollectedData: map[string]string{},
		StepHistory:   []types.StepID{},
	}
}
