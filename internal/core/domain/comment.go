package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment is attached to a post. Ownership rules mirror Post: only the
// sender may update or delete it.
type Comment struct {
	ID        string    `json:"_id"`
	PostID    string    `json:"postId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
