package models

// ItinerarySource is a web page the completion service cited while grounding.
type ItinerarySource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// ItineraryResult is the outcome of one successful itinerary request.
type ItineraryResult struct {
	Text    string            `json:"text"`
	Sources []ItinerarySource `json:"sources"`
}

// ItineraryRequest carries the resolved inputs for a prompt.
type ItineraryRequest struct {
	Destination       string   `json:"destination"`
	BudgetDescription string   `json:"budgetDescription"`
	Interests         []string `json:"interests"`
	DurationDays      string   `json:"durationDays"`
}

// BlockKind tags a display block produced by the itinerary renderer.
type BlockKind string

const (
	BlockHeading      BlockKind = "heading"
	BlockListItem     BlockKind = "list_item"
	BlockEmphasisLead BlockKind = "emphasis_lead"
	BlockSpacer       BlockKind = "spacer"
	BlockParagraph    BlockKind = "paragraph"
)

// Block is one rendered line of an itinerary. Bold is only set for
// emphasis-lead blocks; Text is empty for spacers.
type Block struct {
	Kind BlockKind `json:"kind"`
	Bold string    `json:"bold,omitempty"`
	Text string    `json:"text,omitempty"`
}
