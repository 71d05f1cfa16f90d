package models

// User mirrors the legacy users table, including the original
// camelCase profile image columns.
type User struct {
	ID                 uint   `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username           string `gorm:"column:username;not null" json:"username"`
	Email              string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password           string `gorm:"column:password;not null" json:"-"`
	Status             string `gorm:"column:status;default:'active'" json:"status"`
	IDProof            string `gorm:"column:id_proof" json:"id_proof"`
	IDProofPath        string `gorm:"column:id_proof_path" json:"id_proof_path"`
	ProofClearance     string `gorm:"column:proof_clearance" json:"proof_clearance"`
	ProofClearancePath string `gorm:"column:proof_clearance_path" json:"proof_clearance_path"`
	ProfileImage       string `gorm:"column:profileImage" json:"profileImage"`
	ProfileImagePath   string `gorm:"column:profileImage_path" json:"profileImage_path"`
}

func (User) TableName() string {
	return "users"
}
