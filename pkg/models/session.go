package models

import "time"

// SessionSnapshot is the GET /v1/sessions/:id response body.
type SessionSnapshot struct {
	SessionID  string         `json:"session_id"`
	Status     string         `json:"status"`
	TotalItems *int           `json:"total_items"`
	Items      []ItemSnapshot `json:"items"`
	LastSeq    int64          `json:"last_seq"`
	CreatedAt  time.Time      `json:"created_at"`
	Error      string         `json:"error,omitempty"`
}

// ItemSnapshot is one menu item within a session snapshot.
type ItemSnapshot struct {
	Index       int                    `json:"index"`
	SourceText  string                 `json:"source_text"`
	Box         [][2]int               `json:"box,omitempty"`
	Category    string                 `json:"category"`
	Price       string                 `json:"price,omitempty"`
	EnglishText string                 `json:"english_text,omitempty"`
	Fallback    bool                   `json:"fallback_used,omitempty"`
	Description string                 `json:"description,omitempty"`
	Allergens   []map[string]any       `json:"allergens,omitempty"`
	Ingredients []map[string]any       `json:"ingredients,omitempty"`
	ImageRef    string                 `json:"image_ref,omitempty"`
	ImagePath   string                 `json:"image_path,omitempty"`
	Stages      map[string]StageStatus `json:"stages"`
}
