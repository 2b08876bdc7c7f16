package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/schema"
	"github.com/tbxark/lessonflow/types"
)

func TestMemoryStateReadWriter(t *testing.T) {
	store := NewMemoryStateReadWriter()
	ctx := WithStateKey(context.Background(), "session-1")

	state, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if state.CurrentStep != types.StepStart {
		t.Errorf("initial step = %s", state.CurrentStep)
	}
	if ok, _ := store.Exists(ctx); ok {
		t.Error("session should not exist before the first write")
	}

	state.CurrentStep = types.StepSelectOption
	state.Locale = types.LocaleFR
	if err := store.Write(ctx, state); err != nil {
		t.Fatalf("Write: %v", err)
	}
	other, _ := store.Read(WithStateKey(context.Background(), "session-2"))
	if other.CurrentStep != types.StepStart {
		t.Error("sessions must be isolated by key")
	}
	got, _ := store.Read(ctx)
	if got.CurrentStep != types.StepSelectOption || got.Locale != types.LocaleFR {
		t.Errorf("unexpected state %+v", got)
	}

	if err := store.Remove(ctx); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if ok, _ := store.Exists(ctx); ok {
		t.Error("session should be removed")
	}
}

func TestStateReadWriterRequiresKey(t *testing.T) {
	store := NewMemoryStateReadWriter()
	for name, ctx := range map[string]context.Context{
		"missing": context.Background(),
		"empty":   WithStateKey(context.Background(), ""),
	} {
		if _, err := store.Read(ctx); !errors.Is(err, ErrNoStateKey) {
			t.Errorf("%s: Read error = %v", name, err)
		}
		if err := store.Write(ctx, types.NewSessionState()); !errors.Is(err, ErrNoStateKey) {
			t.Errorf("%s: Write error = %v", name, err)
		}
		if _, err := store.Exists(ctx); !errors.Is(err, ErrNoStateKey) {
			t.Errorf("%s: Exists error = %v", name, err)
		}
		if err := store.Remove(ctx); !errors.Is(err, ErrNoStateKey) {
			t.Errorf("%s: Remove error = %v", name, err)
		}
	}
}

func TestAgentRunWithoutKeyFails(t *testing.T) {
	a := NewAgent("LessonPlanner", "test", NewDefaultLessonFlow(&fakeGenerator{text: "ok"}), NewMemoryStateReadWriter())
	iter := a.Run(context.Background(), &adk.AgentInput{Messages: []adk.Message{schema.UserMessage("Français")}})
	var got error
	for {
		event, ok := iter.Next()
		if !ok {
			break
		}
		if event.Err != nil {
			got = event.Err
		}
	}
	if !errors.Is(got, ErrNoStateKey) {
		t.Errorf("expected ErrNoStateKey, got %v", got)
	}
}

func TestAgentRunPersistsState(t *testing.T) {
	ctx := WithStateKey(context.Background(), "console")
	store := NewMemoryStateReadWriter()
	a := NewAgent("LessonPlanner", "test", NewDefaultLessonFlow(&fakeGenerator{text: "ok"}), store)

	iter := a.Run(ctx, &adk.AgentInput{Messages: []adk.Message{schema.UserMessage("Français")}})
	var msg *schema.Message
	for {
		event, ok := iter.Next()
		if !ok {
			break
		}
		if event.Err != nil {
			t.Fatalf("agent error: %v", event.Err)
		}
		msg = event.Output.MessageOutput.Message
	}
	if msg == nil {
		t.Fatal("no message emitted")
	}
	options, _ := msg.Extra[ExtraOptions].([]string)
	if len(options) != 4 {
		t.Errorf("options = %v", msg.Extra[ExtraOptions])
	}
	state, _ := store.Read(ctx)
	if state.CurrentStep != types.StepSelectOption || state.Locale != types.LocaleFR {
		t.Errorf("state not persisted: %+v", state)
	}
}
