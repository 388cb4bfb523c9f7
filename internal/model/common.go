package model

// Pagination is the metadata half of every list envelope.
type Pagination struct {
	Total int64 `json:"total"`
	Limit int   `json:"limit"`
	Skip  int   `json:"skip"`
}
