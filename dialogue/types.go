package dialogue

import (
	"context"
	"errors"

	"github.com/tbxark/lessonflow/types"
)

var ErrUnknownStep = errors.New("unknown step")

type Question struct {
	Message     string
	Options     []string
	IsTextInput bool
}

type Request struct {
	Step    types.StepID
	Locale  types.Locale
	Data    map[string]string
	History []types.StepID
	// Notice is shown above the step prompt, e.g. after an unrecognized reply.
	Notice string
}

type Generator interface {
	GenerateDialogue(ctx context.Context, req *Request) (*Question, error)
}
