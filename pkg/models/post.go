package models

// Post is the single record entity managed by the store.
type Post struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	// Created timestamp (ms since epoch), set once at creation
	Created int64 `json:"created"`
	// Removed marks a post as soft-deleted; removed posts stay in storage
	// but are invisible to listing and lookup
	Removed bool `json:"removed"`
}
