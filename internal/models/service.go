package models

import "time"

const DefaultServiceCategory = "general"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConsultantID uint       `json:"consultant_id"`
	Consultant   Consultant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Category    string  `gorm:"size:50;default:'general'" json:"category"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
