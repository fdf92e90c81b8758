package dto

import "time"

// UserBookingItem is a booking row enriched for the member area.
type UserBookingItem struct {
	ID             uint      `json:"id"`
	ServiceID      uint      `json:"service_id"`
	BookingDate    string    `json:"booking_date"`
	BookingTime    string    `json:"booking_time"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	ServiceTitle   string    `json:"service_title"`
	Duration       int       `json:"duration"`
	Price          float64   `json:"price"`
	ConsultantName string    `json:"consultant_name"`
}

// ConsultantBookingItem is a booking row enriched for the consultant
// back office.
type ConsultantBookingItem struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	ServiceID    uint      `json:"service_id"`
	BookingDate  string    `json:"booking_date"`
	BookingTime  string    `json:"booking_time"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	ServiceTitle string    `json:"service_title"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	UserPhone    string    `json:"user_phone"`
}
