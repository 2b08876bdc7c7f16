package command

import (
	"context"
	"strings"

	"github.com/tbxark/lessonflow/types"
)

var signals = map[string]Command{
	SignalShowStep:          ShowStep,
	SignalTriggerGeneration: TriggerGeneration,
	SignalRenderFailed:      RenderFailed,
	SignalDownloadComplete:  DownloadComplete,
}

var labels = map[Command]map[types.Locale]string{
	Back:       {types.LocaleFR: "⬅️ Retour", types.LocaleEN: "⬅️ Back"},
	Restart:    {types.LocaleFR: "Recommencer", types.LocaleEN: "Restart"},
	Regenerate: {types.LocaleFR: "Régénérer", types.LocaleEN: "Regenerate"},
}

// Label is the button text clients show for a user-facing command.
func Label(cmd Command, locale types.Locale) string {
	return labels[cmd][locale.Or()]
}

// LocalCommandParser matches the whole reply against keyword lists of every
// locale, so a French session still understands "Back".
type LocalCommandParser struct {
	BackKeywords       []string
	RestartKeywords    []string
	RegenerateKeywords []string
}

func NewLocalCommandParser() *LocalCommandParser {
	return &LocalCommandParser{
		BackKeywords:       []string{"⬅️ retour", "⬅️ back", "retour", "back", "précédent", "previous"},
		RestartKeywords:    []string{"recommencer", "restart", "🔄 recommencer", "🔄 restart"},
		RegenerateKeywords: []string{"régénérer", "regenerer", "regenerate", "🔁 régénérer", "🔁 regenerate"},
	}
}

func (p *LocalCommandParser) ParseCommand(ctx context.Context, input string) (Command, error) {
	if cmd, ok := signals[input]; ok {
		return cmd, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, keyword := range p.RegenerateKeywords {
		if normalized == keyword {
			return Regenerate, nil
		}
	}
	for _, keyword := range p.BackKeywords {
		if normalized == keyword {
			return Back, nil
		}
	}
	for _, keyword := range p.RestartKeywords {
		if normalized == keyword {
			return Restart, nil
		}
	}
	return None, nil
}
