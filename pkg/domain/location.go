package domain

// Location represents a position in source code.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}
