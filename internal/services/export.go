package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"promptsmith-backend/internal/models"
	"promptsmith-backend/internal/prompt"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

type ExportFormat string

const (
	ExportText     ExportFormat = "text"
	ExportJSON     ExportFormat = "json"
	ExportMarkdown ExportFormat = "markdown"
	ExportHTML     ExportFormat = "html"
	ExportYAML     ExportFormat = "yaml"
)

var contentTypes = map[ExportFormat]string{
	ExportText:     "text/plain; charset=utf-8",
	ExportJSON:     "application/json; charset=utf-8",
	ExportMarkdown: "text/markdown; charset=utf-8",
	ExportHTML:     "text/html; charset=utf-8",
	ExportYAML:     "application/yaml; charset=utf-8",
}

// ParseExportFormat accepts a format name in any case. "md", "txt" and
// "yml" are accepted as aliases.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", "txt":
		return ExportText, nil
	case "md":
		return ExportMarkdown, nil
	case "yml":
		return ExportYAML, nil
	default:
		if _, ok := contentTypes[f]; ok {
			return f, nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

func (f ExportFormat) ContentType() string {
	return contentTypes[f]
}

// Export renders a saved prompt in the given format with bindings applied
// to its assembled text.
func (s *PromptService) Export(ctx context.Context, id uint, format ExportFormat, bindings map[string]string) ([]byte, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return RenderExport(*p, format, bindings)
}

// RenderExport formats p. The record itself is left untouched.
func RenderExport(p models.SavedPrompt, format ExportFormat, bindings map[string]string) ([]byte, error) {
	p = p.Clone()
	p.AssembledPrompt = prompt.Substitute(p.AssembledPrompt, bindings)

	switch format {
	case ExportText:
		return []byte(p.AssembledPrompt), nil
	case ExportJSON:
		return json.MarshalIndent(p, "", "  ")
	case ExportMarkdown:
		return []byte(markdown(p)), nil
	case ExportHTML:
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(markdown(p)), &buf); err != nil {
			return nil, fmt.Errorf("render html: %w", err)
		}
		return buf.Bytes(), nil
	case ExportYAML:
		return yaml.Marshal(p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func markdown(p models.SavedPrompt) string {
	tags := "None"
	if len(p.Tags) > 0 {
		tags = strings.Join(p.Tags, ", ")
	}
	return fmt.Sprintf("# %s\n\n%s\n\n---\n\n**Tags:** %s", p.Title, p.AssembledPrompt, tags)
}
