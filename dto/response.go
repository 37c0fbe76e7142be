package dto

// ErrorResponse represents an error response from the HTTP API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ConvertResponse is returned by the convert endpoint in JSON mode
type ConvertResponse struct {
	Records     []Record `json:"records"`
	RecordCount int      `json:"record_count"`
	TotalValue  float64  `json:"total_value"`
	ProcessedAt string   `json:"processed_at"`
}

// ConversionResult summarizes one file conversion in CLI mode
type ConversionResult struct {
	Records    []Record
	TxtPath    string
	OutputPath string
	TotalValue float64
}
