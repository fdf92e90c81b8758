package models

import "time"

type Consultant struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName  string `gorm:"size:100;not null" json:"full_name"`
	Bio       string `gorm:"type:text" json:"bio"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
