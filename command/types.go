package command

import "context"

type Command string

const (
	None              Command = "none"
	Back              Command = "back"
	Restart           Command = "restart"
	Regenerate        Command = "regenerate"
	ShowStep          Command = "show_step"
	TriggerGeneration Command = "trigger_generation"
	RenderFailed      Command = "render_failed"
	DownloadComplete  Command = "download_complete"
)

// Reserved message values sent by clients instead of user text.
const (
	SignalShowStep          = "internal_show_step"
	SignalTriggerGeneration = "internal_trigger_generation"
	SignalRenderFailed      = "internal_pdf_render_failed"
	SignalDownloadComplete  = "internal_pdf_download_complete"
)

type Parser interface {
	ParseCommand(ctx context.Context, input string) (Command, error)
}
