// Package prompt assembles structured prompt fields into a single prompt
// and handles {{variable}} placeholders inside them.
package prompt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"promptsmith-backend/internal/models"
)

// section pairs a field with the phrase it is rendered into.
type section struct {
	value  func(f *models.PromptFields) string
	layout string
}

// Order matters: sections render in exactly this sequence.
var sections = []section{
	{func(f *models.PromptFields) string { return f.ToneRole }, "%s. "},
	{func(f *models.PromptFields) string { return f.Goal }, "%s. "},
	{func(f *models.PromptFields) string { return f.Context }, "Context: %s. "},
	{func(f *models.PromptFields) string { return f.Instruction }, "%s. "},
	{func(f *models.PromptFields) string { return f.Format }, "Format your response as: %s. "},
	{func(f *models.PromptFields) string { return f.Examples }, "Examples: %s"},
}

// Assemble joins the non-blank fields into one prompt. An all-blank input
// yields "".
func Assemble(f models.PromptFields) string {
	var b strings.Builder
	for _, s := range sections {
		v := s.value(&f)
		if strings.TrimSpace(v) == "" {
			continue
		}
		fmt.Fprintf(&b, s.layout, v)
	}
	return strings.TrimSpace(b.String())
}

// SourceHash fingerprints the fields Assemble reads. Title and tags are not
// part of it since they never reach the assembled text.
func SourceHash(f models.PromptFields) string {
	h := sha256.New()
	for _, s := range sections {
		h.Write([]byte(s.value(&f)))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// IsStale reports whether an assembled prompt built from assembledFrom no
// longer reflects f.
func IsStale(f models.PromptFields, assembledFrom string) bool {
	if assembledFrom == "" {
		return Assemble(f) != ""
	}
	return assembledFrom != SourceHash(f)
}
