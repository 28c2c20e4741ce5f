package models

import "time"

// Assignment belongs to one course. Due dates are absolute instants and
// accepted as-is, past or future.
type Assignment struct {
	ID          int       `db:"id" json:"id"`
	CourseID    int       `db:"course_id" json:"courseId"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	DueDate     time.Time `db:"due_date" json:"dueDate"`
}
