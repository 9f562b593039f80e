package models

// FindResult is a keyword search hit annotated with the document's cluster
// label from the run it was resolved against. Label -1 means the document
// was unassigned in that run.
type FindResult struct {
	Document *Document `json:"document"`
	Score    float64   `json:"score"`
	Label    int       `json:"label"`
	Rank     int       `json:"rank"`
}

// FindResponse is the response for a find request.
type FindResponse struct {
	Results   []*FindResult `json:"results"`
	Total     int           `json:"total"`
	RunID     string        `json:"run_id,omitempty"`
	Query     string        `json:"query"`
	QueryTime int64         `json:"query_time_ms"`
}
