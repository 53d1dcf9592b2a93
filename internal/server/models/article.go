package models

import "time"

// Article is a saved reference to an external publication. UserID references
// the owning user; rows are removed when the owner is deleted.
type Article struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	SourceURL   string
	CreatedAt   time.Time
}
