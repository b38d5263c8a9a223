package entity

// NewsItem is a single news search result used as grounding material for
// post generation. Summary may be empty when the provider returns none;
// Title is always non-empty.
type NewsItem struct {
	Title   string
	Summary string
}
