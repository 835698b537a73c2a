package model

import "time"

type Article struct {
	ID          int64      `json:"id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Author      *string    `json:"author"`
	URL         *string    `json:"url"`
	URLToImage  *string    `json:"urlToImage"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SyncReport is the outcome of a successful sync. Count is the number of
// fetched articles processed, not the number inserted.
type SyncReport struct {
	Count      int       `json:"count"`
	Inserted   int       `json:"inserted"`
	Pruned     int64     `json:"pruned"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// SyncStatus is the last sync outcome as kept by the status store.
type SyncStatus struct {
	SyncReport
	Error string `json:"error,omitempty"`
}
