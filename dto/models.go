package dto

// Record is one worker's row recovered from the annual productivity
// report. Each record comes from a block of three consecutive lines:
// the identity line (name, 6-digit code, role), the productivity line
// holding the value, and a trailing per-worker total line that is
// consumed but not stored.
type Record struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Role string `json:"role"`

	// Value keeps the source text verbatim in Brazilian format
	// ("1.234,56") so the output matches the document exactly.
	Value string `json:"value"`

	// Filled in by the rateio calculation.
	Percentage string `json:"percentage,omitempty"`
	Total      string `json:"total,omitempty"`

	// Unformatted counterparts, kept out of serialized output.
	PercentageFloat float64 `json:"-"`
	TotalFloat      float64 `json:"-"`
}
