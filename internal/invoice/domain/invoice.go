package domain

import "time"

// Line is one rendered invoice row. Amounts are carried as display
// strings because the document is a terminal artifact; arithmetic
// happened before generation.
type Line struct {
	Description string
	Quantity    int
	Subtotal    string
}

// Document is the write-once invoice built from a cart snapshot. It
// holds no reference to live cart state; once generated it never
// changes.
type Document struct {
	ID           string
	CustomerName string
	IssuedAt     time.Time
	Lines        []Line
	Total        string
	Filename     string
	Body         []byte
}
