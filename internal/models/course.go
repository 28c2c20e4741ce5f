package models

// Course represents a persisted course row. The id is assigned by the
// database on insert and is immutable afterwards.
type Course struct {
	ID          int     `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	ImageURL    string  `db:"image_url" json:"imageUrl"`
	TeacherID   *string `db:"teacher_id" json:"teacherId"`
}
