package models

// Module is a unit of course content. Content is trusted rich text
// rendered verbatim by the client; the order column defines the display
// sequence within a course and is not required to be unique.
type Module struct {
	ID       int    `db:"id" json:"id"`
	CourseID int    `db:"course_id" json:"courseId"`
	Title    string `db:"title" json:"title"`
	Content  string `db:"content" json:"content"`
	Order    int    `db:"order" json:"order"`
}
