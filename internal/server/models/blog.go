package models

import "time"

type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	URLs      []string  `json:"url"`
	Star      int       `json:"star"`
	CreatedAt time.Time `json:"created_at"`
}
