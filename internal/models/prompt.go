package models

import (
	"time"

	"gorm.io/datatypes"
)

// PromptFields holds the user-editable parts of a prompt
type PromptFields struct {
	Title       string                      `gorm:"index;not null" json:"title" yaml:"title"`
	Tags        datatypes.JSONSlice[string] `json:"tags" yaml:"tags"`
	ToneRole    string                      `gorm:"type:text" json:"tone_role" yaml:"tone_role"`
	Goal        string                      `gorm:"type:text" json:"goal" yaml:"goal"`
	Context     string                      `gorm:"type:text" json:"context" yaml:"context"`
	Instruction string                      `gorm:"type:text" json:"instruction" yaml:"instruction"`
	Format      string                      `gorm:"type:text" json:"format" yaml:"format"`
	Examples    string                      `gorm:"type:text" json:"examples" yaml:"examples"`
}

// SavedPrompt is a persisted prompt
type SavedPrompt struct {
	ID              uint `gorm:"primarykey" json:"id" yaml:"id"`
	PromptFields    `gorm:"embedded" yaml:",inline"`
	AssembledPrompt string                      `gorm:"type:text" json:"assembled_prompt" yaml:"assembled_prompt"`
	AssembledFrom   string                      `json:"assembled_from" yaml:"assembled_from"` // source hash of the fields assembled_prompt was built from
	Variables       datatypes.JSONSlice[string] `json:"variables" yaml:"variables"`
	Version         int                         `gorm:"not null;default:1" json:"version" yaml:"version"`
	CreatedAt       time.Time                   `json:"created_at" yaml:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at" yaml:"updated_at"`
}

// Clone returns a copy that shares no slices with p.
func (p SavedPrompt) Clone() SavedPrompt {
	p.Tags = append(datatypes.JSONSlice[string]{}, p.Tags...)
	p.Variables = append(datatypes.JSONSlice[string]{}, p.Variables...)
	return p
}
