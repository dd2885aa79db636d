package models

// DefaultPageSize is the fixed listing window used by the client.
const DefaultPageSize = 5

// Page is one windowed slice of the full record set, ordered by ID
// ascending. A page is recomputed wholesale on every fetch and never
// patched incrementally.
type Page struct {
	// Items holds at most the page-size number of records.
	Items []Pengguna `json:"items"`

	// Number is the 1-indexed page number this window was fetched for.
	Number int `json:"number"`

	// Total is the exact row count of the whole table at fetch time.
	Total int64 `json:"total"`
}

// Window converts a 1-indexed page number and page size to an SQL
// offset/limit pair. Page numbers below 1 are treated as page 1.
func Window(number, size int) (offset, limit uint64) {
	if number < 1 {
		number = 1
	}
	return uint64(number-1) * uint64(size), uint64(size)
}
