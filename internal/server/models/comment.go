package models

import "time"

// Comment references its blog by id only; there is no foreign key, so
// orphan cleanup happens in the blog delete transaction.
type Comment struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blog_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
