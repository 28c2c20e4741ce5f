package models

import "time"

// Submission is a student's delivered response to an assignment. Grade
// and feedback stay null until a teacher reviews it. submittedAt is set
// by the server at insert time.
type Submission struct {
	ID           int       `db:"id" json:"id"`
	AssignmentID int       `db:"assignment_id" json:"assignmentId"`
	StudentID    string    `db:"student_id" json:"studentId"`
	Content      string    `db:"content" json:"content"`
	Grade        *int      `db:"grade" json:"grade"`
	Feedback     *string   `db:"feedback" json:"feedback"`
	SubmittedAt  time.Time `db:"submitted_at" json:"submittedAt"`
}
