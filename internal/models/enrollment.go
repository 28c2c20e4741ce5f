package models

import "time"

// Enrollment joins a user to a course. No uniqueness constraint exists
// on (user, course); repeated enroll calls insert additional rows.
type Enrollment struct {
	ID         int       `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"userId"`
	CourseID   int       `db:"course_id" json:"courseId"`
	EnrolledAt time.Time `db:"enrolled_at" json:"enrolledAt"`
}
