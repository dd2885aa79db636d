package models

// ListResponse is the JSON payload returned by the listing endpoint.
type ListResponse struct {
	Items []Pengguna `json:"items"`
	Total int64      `json:"total"`
}

// ErrorResponse carries the human-readable message of a failed request.
// The client does not distinguish error subtypes; the message is surfaced
// to the user as-is.
type ErrorResponse struct {
	Error string `json:"error"`
}
