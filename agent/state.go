package agent

import (
	"context"
	"fmt"

	"github.com/tbxark/lessonflow/types"
)

// StateReadWriter keeps session state for callers that do not echo it back
// on every turn. The session is selected by the key stored in the context.
type StateReadWriter interface {
	InitState(ctx context.Context) types.SessionState
	Remove(ctx context.Context) error
	Read(ctx context.Context) (types.SessionState, error)
	Write(ctx context.Context, state types.SessionState) error
	Exists(ctx context.Context) (bool, error)
}

type stateKeyContext struct{}

// WithStateKey sets a routing key for state storage in the context.
func WithStateKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, stateKeyContext{}, key)
}

// StateKeyFromContext gets the routing key from the context.
func StateKeyFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(stateKeyContext{})
	if value == nil {
		return "", false
	}
	key, ok := value.(string)
	return key, ok
}

// stateKey rejects a missing or empty key so sessions never share a slot.
func stateKey(ctx context.Context) (string, bool) {
	key, ok := StateKeyFromContext(ctx)
	return key, ok && key != ""
}

type CacheStateReadWriter struct {
	store Store[types.SessionState]
}

func NewCacheStateReadWriter(core Cache[types.SessionState], namespace string) *CacheStateReadWriter {
	return &CacheStateReadWriter{store: NewStore(core, namespace, stateKey)}
}

// NewMemoryStateReadWriter is an in-memory implementation for tests and local usage.
func NewMemoryStateReadWriter() *CacheStateReadWriter {
	return NewCacheStateReadWriter(NewMemoryCache[types.SessionState](), "session")
}

func (s *CacheStateReadWriter) InitState(ctx context.Context) types.SessionState {
	return types.NewSessionState()
}

func (s *CacheStateReadWriter) Read(ctx context.Context) (types.SessionState, error) {
	state, ok, err := s.store.Get(ctx)
	if err != nil {
		return types.SessionState{}, fmt.Errorf("read session state: %w", err)
	}
	if !ok {
		return s.InitState(ctx), nil
	}
	return state, nil
}

func (s *CacheStateReadWriter) Write(ctx context.Context, state types.SessionState) error {
	if err := s.store.Set(ctx, state); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

func (s *CacheStateReadWriter) Remove(ctx context.Context) error {
	if err := s.store.Del(ctx); err != nil {
		return fmt.Errorf("remove session state: %w", err)
	}
	return nil
}

func (s *CacheStateReadWriter) Exists(ctx context.Context) (bool, error) {
	return s.store.Exists(ctx)
}
