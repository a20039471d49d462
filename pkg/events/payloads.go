package events

// Typed payloads for each event kind. The publisher marshals these and
// wraps them in the envelope fields {session_id, seq, ts, kind}; the
// structs here carry only the kind-specific fields.

// SessionFailedPayload carries the failure reason.
// Also used for session_cancelled (reason "cancelled by client").
type SessionFailedPayload struct {
	Reason string `json:"reason"`
}

// ExtractCompletedPayload carries the recognized text. Token boxes are
// included so clients can render overlays before items materialize.
type ExtractCompletedPayload struct {
	Tokens   []TokenPayload `json:"tokens"`
	FullText string         `json:"full_text"`
}

// TokenPayload is one recognized text fragment in event form.
type TokenPayload struct {
	Text string    `json:"text"`
	Box  [4][2]int `json:"box"`
}

// ScaffoldFailedPayload carries the error for extract_failed and
// categorize_failed.
type ScaffoldFailedPayload struct {
	Error   string `json:"error"`
	Attempt int    `json:"attempt"`
}

// CategorizeCompletedPayload carries the category grouping.
type CategorizeCompletedPayload struct {
	Categories []CategoryPayload `json:"categories"`
}

// CategoryPayload is one ordered category group.
type CategoryPayload struct {
	Name  string               `json:"name"`
	Items []CategoryItemSketch `json:"items"`
}

// CategoryItemSketch is a menu entry as grouped, before item rows exist.
type CategoryItemSketch struct {
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
}

// ItemsMaterializedPayload announces the final item count. total_items
// is write-once; clients size their UI from this event.
type ItemsMaterializedPayload struct {
	TotalItems int `json:"total_items"`
}

// StageInFlightPayload marks an (item, stage) attempt start.
type StageInFlightPayload struct {
	ItemIndex int    `json:"item_index"`
	Stage     string `json:"stage"`
	Attempt   int    `json:"attempt"`
}

// StageCompletedPayload carries the stage result. Payload shape depends
// on the stage: translate {english_text}, describe {description},
// allergens {entries, confidence}, ingredients {ingredients, confidence},
// image {image_ref, path}.
type StageCompletedPayload struct {
	ItemIndex    int            `json:"item_index"`
	Stage        string         `json:"stage"`
	Payload      map[string]any `json:"payload"`
	FallbackUsed bool           `json:"fallback_used,omitempty"`
}

// StageFailedPayload marks a permanently failed (item, stage).
type StageFailedPayload struct {
	ItemIndex int    `json:"item_index"`
	Stage     string `json:"stage"`
	Error     string `json:"error"`
	Attempt   int    `json:"attempt"`
}

// StageSkippedDuplicatePayload marks a redelivered task whose stage was
// already completed. No state changed.
type StageSkippedDuplicatePayload struct {
	ItemIndex int    `json:"item_index"`
	Stage     string `json:"stage"`
}
