package entity

// TrackingUpdate is one frame of the customer-facing order tracker stream.
type TrackingUpdate struct {
	Order        *Order `json:"order"`
	ReviewPrompt bool   `json:"review_prompt"` // True exactly once per stream, when the order completes unreviewed.
}
