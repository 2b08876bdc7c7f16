package document

import (
	"context"
	"errors"
	"strings"

	"github.com/tbxark/lessonflow/types"
)

var (
	ErrRendererUnavailable = errors.New("document renderer is not configured")
	ErrNothingToRender     = errors.New("session has no generated text")
)

type DocumentType string

const (
	TypeLesson       DocumentType = "lesson"
	TypePresentation DocumentType = "presentation"
	TypeIntegration  DocumentType = "integration"
	TypeEvaluation   DocumentType = "evaluation"
)

type OutputFormat string

const (
	FormatPDF  OutputFormat = "pdf"
	FormatPPTX OutputFormat = "pptx"
	FormatDOCX OutputFormat = "docx"
)

var contentTypes = map[OutputFormat]string{
	FormatPDF:  "application/pdf",
	FormatPPTX: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

func (f OutputFormat) ContentType() string {
	if ct, ok := contentTypes[f]; ok {
		return ct
	}
	return "application/octet-stream"
}

type Request struct {
	Text               string
	TargetLanguageCode string
	DocumentType       DocumentType
	OutputFormat       OutputFormat
}

// Renderer turns generated markdown into a downloadable file.
type Renderer interface {
	Render(ctx context.Context, req Request) ([]byte, error)
}

var documentTypes = map[types.FlowType]DocumentType{
	types.FlowLesson:      TypeLesson,
	types.FlowDigital:     TypePresentation,
	types.FlowIntegration: TypeIntegration,
	types.FlowEvaluation:  TypeEvaluation,
}

// RequestFor builds the render request for a session. text overrides the
// session's generated text when the client edited it.
func RequestFor(state types.SessionState, text string) (Request, error) {
	if strings.TrimSpace(text) == "" {
		text = state.GeneratedText
	}
	if strings.TrimSpace(text) == "" {
		return Request{}, ErrNothingToRender
	}
	docType, ok := documentTypes[state.FlowType()]
	if !ok {
		docType = TypeLesson
	}
	format := FormatPDF
	if docType == TypePresentation {
		format = FormatPPTX
	}
	return Request{
		Text:               text,
		TargetLanguageCode: types.ContentLanguageCode(state.CollectedData[string(types.FieldContentLocale)]),
		DocumentType:       docType,
		OutputFormat:       format,
	}, nil
}
