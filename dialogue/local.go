package dialogue

import (
	"context"
	"fmt"

	"github.com/tbxark/lessonflow/catalog"
	"github.com/tbxark/lessonflow/command"
	"github.com/tbxark/lessonflow/types"
)

var languageChoices = []string{"Français", "English"}

// LocalDialogueGenerator renders step questions straight from the catalog.
type LocalDialogueGenerator struct {
	Catalog *catalog.Catalog
}

func NewLocalDialogueGenerator(c *catalog.Catalog) *LocalDialogueGenerator {
	return &LocalDialogueGenerator{Catalog: c}
}

func (g *LocalDialogueGenerator) GenerateDialogue(ctx context.Context, req *Request) (*Question, error) {
	if req.Step == types.StepStart {
		return &Question{
			Message: withNotice(req.Notice, Text(MsgWelcome, req.Locale)),
			Options: append([]string(nil), languageChoices...),
		}, nil
	}
	step, ok := g.Catalog.Lookup(req.Step)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, req.Step)
	}
	options := step.Options(req.Locale, req.Data)
	if len(req.History) > 0 {
		options = append([]string{command.Label(command.Back, req.Locale)}, options...)
	}
	return &Question{
		Message:     withNotice(req.Notice, step.Prompt(req.Locale)),
		Options:     options,
		IsTextInput: step.FreeText(),
	}, nil
}
