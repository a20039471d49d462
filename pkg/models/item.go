package models

// NewItem is one menu entry to materialize after categorization.
type NewItem struct {
	Index      int
	SourceText string
	Box        [][2]int
	Category   string
	Price      string
}
