package models

// Template is a premade prompt scaffold. Templates are read-only.
type Template struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ToneRole    string `json:"tone_role"`
	Goal        string `json:"goal"`
	IsPremium   bool   `json:"is_premium"`
}
