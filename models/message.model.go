package models

import "time"

// Message is one chat message. user_id is the recipient; the log is
// append-only.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SenderID  uint      `gorm:"column:sender_id;index;not null" json:"sender_id"`
	UserID    uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	Message   string    `gorm:"column:message;not null" json:"message"`
	ReplyTo   *uint     `gorm:"column:reply_to" json:"reply_to"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
