package agent

import "github.com/tbxark/lessonflow/types"

type Request struct {
	Message string             `json:"message" validate:"max=20000"`
	State   types.SessionState `json:"state"`
}

type Response struct {
	Response    string             `json:"response"`
	Options     []string           `json:"options"`
	IsTextInput bool               `json:"is_text_input"`
	State       types.SessionState `json:"state"`
}
