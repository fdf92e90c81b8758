package dto

import "time"

type ServiceListItem struct {
	ID             uint      `json:"id"`
	ConsultantID   uint      `json:"consultant_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Duration       int       `json:"duration"`
	Price          float64   `json:"price"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"created_at"`
	ConsultantName string    `json:"consultant_name"`
}

type ServiceDetail struct {
	ID               uint      `json:"id"`
	ConsultantID     uint      `json:"consultant_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Duration         int       `json:"duration"`
	Price            float64   `json:"price"`
	Category         string    `json:"category"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	ConsultantName   string    `json:"consultant_name"`
	ConsultantBio    string    `json:"consultant_bio"`
	ConsultantAvatar string    `json:"consultant_avatar"`
}
