package models

import "time"

// Profile maps an identity to the display name and email shown to admins
type Profile struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Metadata  JSON      `json:"metadata"` // identity claims captured when the profile was created
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
