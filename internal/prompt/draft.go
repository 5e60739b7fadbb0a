package prompt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"promptsmith-backend/internal/models"
)

// State is where a draft sits in its editing lifecycle.
type State int

const (
	StateEmpty State = iota
	StatePartiallyFilled
	StateAssembled
	StateSaved
)

var stateNames = [...]string{"empty", "partially_filled", "assembled", "saved"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown draft state %q", text)
}

// Draft is a prompt being edited. The assembled text is only refreshed by
// Generate; editing Fields afterwards makes it stale rather than updating it.
type Draft struct {
	Fields models.PromptFields

	assembled     string
	assembledFrom string
	savedID       uint
	savedDigest   string
}

func NewDraft(fields models.PromptFields) *Draft {
	return &Draft{Fields: fields}
}

// DraftFromSaved opens a stored prompt for editing.
func DraftFromSaved(p models.SavedPrompt) *Draft {
	d := &Draft{
		Fields:        p.Clone().PromptFields,
		assembled:     p.AssembledPrompt,
		assembledFrom: p.AssembledFrom,
		savedID:       p.ID,
	}
	d.savedDigest = digest(d.Fields)
	return d
}

// CanGenerate reports whether any of tone/role, goal or instruction is set.
func (d *Draft) CanGenerate() bool {
	return CanGenerate(d.Fields)
}

func CanGenerate(f models.PromptFields) bool {
	return strings.TrimSpace(f.ToneRole) != "" ||
		strings.TrimSpace(f.Goal) != "" ||
		strings.TrimSpace(f.Instruction) != ""
}

// Generate assembles the current fields and caches the result.
func (d *Draft) Generate() string {
	d.assembled = Assemble(d.Fields)
	d.assembledFrom = SourceHash(d.Fields)
	return d.assembled
}

func (d *Draft) Assembled() string     { return d.assembled }
func (d *Draft) AssembledFrom() string { return d.assembledFrom }
func (d *Draft) SavedID() uint         { return d.savedID }

// Stale reports whether the fields changed since the last Generate.
func (d *Draft) Stale() bool {
	return IsStale(d.Fields, d.assembledFrom)
}

// MarkSaved records that the draft was persisted under id.
func (d *Draft) MarkSaved(id uint) {
	d.savedID = id
	d.savedDigest = digest(d.Fields)
}

func (d *Draft) State() State {
	if d.savedID != 0 && d.savedDigest == digest(d.Fields) {
		return StateSaved
	}
	return StateOf(d.Fields, d.assembled)
}

// StateOf derives the unsaved state from fields and an assembled prompt.
func StateOf(f models.PromptFields, assembled string) State {
	switch {
	case assembled != "":
		return StateAssembled
	case CanGenerate(f):
		return StatePartiallyFilled
	default:
		return StateEmpty
	}
}

// digest covers every field, including title and tags.
func digest(f models.PromptFields) string {
	h := sha256.New()
	h.Write([]byte(SourceHash(f)))
	h.Write([]byte(f.Title))
	for _, t := range f.Tags {
		h.Write([]byte{0})
		h.Write([]byte(t))
	}
	return hex.EncodeToString(h.Sum(nil))
}
