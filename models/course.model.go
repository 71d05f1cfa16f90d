package models

import "time"

// LearningModule is a course. The legacy schema calls the course table
// learning_modules and the sub-units chapters.
type LearningModule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	Archived    *bool     `json:"archived,omitempty"`
}

func (LearningModule) TableName() string {
	return "learning_modules"
}

// Chapter belongs to exactly one course.
type Chapter struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	CourseID uint   `gorm:"column:course_id;index;not null" json:"course_id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `json:"content"`
}

func (Chapter) TableName() string {
	return "chapters"
}
