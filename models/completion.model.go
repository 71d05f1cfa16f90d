package models

import "time"

// ModuleCompletion marks a chapter as completed by its mere existence.
// The toggle endpoint inserts and deletes these rows.
type ModuleCompletion struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"column:user_id;uniqueIndex:idx_user_chapter;not null" json:"user_id"`
	ChapterID uint `gorm:"column:chapter_id;uniqueIndex:idx_user_chapter;not null" json:"chapter_id"`
}

func (ModuleCompletion) TableName() string {
	return "module_completion"
}

// CourseCompletion records when a user finished a course. Written once;
// force-complete never overwrites an existing timestamp.
type CourseCompletion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;uniqueIndex:idx_user_course_done;not null" json:"user_id"`
	CourseID    uint      `gorm:"column:course_id;uniqueIndex:idx_user_course_done;not null" json:"course_id"`
	CompletedAt time.Time `gorm:"column:completed_at" json:"completed_at"`
}

func (CourseCompletion) TableName() string {
	return "course_completion"
}
