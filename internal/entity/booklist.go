package entity

import "time"

type BookList struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	// BookCount caches list-membership cardinality. It is adjusted by +1/-1
	// on add/remove, not recomputed per read, so it can drift when a
	// multi-step operation partially fails.
	BookCount int `json:"bookCount"`
}
