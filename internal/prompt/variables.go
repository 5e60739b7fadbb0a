package prompt

import (
	"regexp"
	"strings"

	"promptsmith-backend/internal/models"
)

// placeholderPattern matches {{name}}. The first "}}" closes the token.
var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// ExtractVariables returns the placeholder names in text, trimmed and
// deduplicated in order of first appearance.
func ExtractVariables(text string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// FieldVariables extracts the placeholders used anywhere in f.
func FieldVariables(f models.PromptFields) []string {
	return ExtractVariables(strings.Join([]string{
		f.Title, f.ToneRole, f.Goal, f.Context, f.Instruction, f.Format, f.Examples,
	}, " "))
}

// Substitute replaces each {{name}} in text with bindings[name], where name
// is trimmed the same way ExtractVariables reports it. Names that are
// unbound or bound to "" stay in place so they remain visible.
func Substitute(text string, bindings map[string]string) string {
	if len(bindings) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		if v := bindings[strings.TrimSpace(token[2 : len(token)-2])]; v != "" {
			return v
		}
		return token
	})
}

// Unresolved lists the placeholders still visible in text once bindings
// have been applied.
func Unresolved(text string, bindings map[string]string) []string {
	return ExtractVariables(Substitute(text, bindings))
}

// NormalizeTags trims tags, drops empty ones and keeps only the first of
// any duplicates.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
