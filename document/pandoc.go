package document

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tbxark/lessonflow/generator"
)

// PandocRenderer shells out to pandoc. PDFs go through PDFEngine.
type PandocRenderer struct {
	Binary    string
	PDFEngine string
}

func NewPandocRenderer(binary, pdfEngine string) *PandocRenderer {
	if binary == "" {
		binary = "pandoc"
	}
	if pdfEngine == "" {
		pdfEngine = "xelatex"
	}
	return &PandocRenderer{Binary: binary, PDFEngine: pdfEngine}
}

func (p *PandocRenderer) Render(ctx context.Context, req Request) ([]byte, error) {
	if _, err := exec.LookPath(p.Binary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}
	dir, err := os.MkdirTemp("", "lessonflow-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	output := filepath.Join(dir, "document."+string(req.OutputFormat))
	cmd := exec.CommandContext(ctx, p.Binary, p.args(req, output)...)
	cmd.Stdin = strings.NewReader(prepareMarkdown(req))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pandoc: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return os.ReadFile(output)
}

func (p *PandocRenderer) args(req Request, output string) []string {
	args := []string{"--from=markdown", "--output=" + output, "--metadata=lang:" + req.TargetLanguageCode}
	if req.OutputFormat == FormatPDF {
		args = append(args, "--pdf-engine="+p.PDFEngine, "--variable=geometry:margin=2cm")
	}
	if req.TargetLanguageCode == "ar" {
		args = append(args, "--metadata=dir:rtl")
	}
	return args
}

func prepareMarkdown(req Request) string {
	if req.DocumentType != TypeEvaluation {
		return req.Text
	}
	pageBreak := "\n\n---\n\n"
	if req.OutputFormat == FormatPDF {
		pageBreak = "\n\n\\newpage\n\n"
	}
	return strings.Replace(req.Text, generator.AnswerKeySeparator, pageBreak, 1)
}
