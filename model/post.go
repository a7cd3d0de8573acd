package model

import "time"

type Post struct {
	Id        string    `json:"id"`
	AuthorId  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedEntry is the per-request join of a post with its author's public
// profile. Author is never nil in a successful response.
type FeedEntry struct {
	Post   *Post          `json:"post"`
	Author *PublicProfile `json:"author"`
}
