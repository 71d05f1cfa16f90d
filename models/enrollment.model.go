package models

import "time"

// Enrollment joins a user to a course. The unique index on
// (user_id, course_id) is the only guard against double enrollment.
type Enrollment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"column:user_id;uniqueIndex:idx_user_course;not null" json:"user_id"`
	CourseID   uint      `gorm:"column:course_id;uniqueIndex:idx_user_course;not null" json:"course_id"`
	Status     string    `gorm:"default:'active'" json:"status"`
	EnrolledAt time.Time `gorm:"column:enrolled_at;autoCreateTime" json:"enrolled_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
