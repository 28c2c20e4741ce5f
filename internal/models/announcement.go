package models

import "time"

// Announcement is a portal-wide notice authored by one user.
type Announcement struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	AuthorID  string    `db:"author_id" json:"authorId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// AnnouncementWithAuthor is the list shape: the announcement fields plus
// the joined author record.
type AnnouncementWithAuthor struct {
	Announcement
	Author User `json:"author"`
}
