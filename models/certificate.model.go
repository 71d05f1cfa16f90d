package models

import "time"

// Certification is a certificate definition shared by all holders.
type Certification struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ImagePath   string `gorm:"column:image_path" json:"image_path"`
	Description string `json:"description"`
}

func (Certification) TableName() string {
	return "certifications"
}

// UserCertificate grants a certificate to a user.
type UserCertificate struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	CertificateID uint      `gorm:"column:certificate_id;not null" json:"certificate_id"`
	AssignedAt    time.Time `gorm:"column:assigned_at;autoCreateTime" json:"assigned_at"`
}

func (UserCertificate) TableName() string {
	return "user_certificates"
}
