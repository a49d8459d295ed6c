package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrNotOwner = errors.New("not the resource owner")

// Post is a user-authored entry. Sender is the owning user id and is the
// identity compared against the authenticated caller on update and delete.
type Post struct {
	ID        string    `json:"_id"`
	Sender    string    `json:"sender"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
