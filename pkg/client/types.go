package client

import "time"

// Wire types mirrored from the API's JSON payloads.

type User struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type Service struct {
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
	Service
	IsActive         bool   `json:"is_active"`
	ConsultantBio    string `json:"consultant_bio"`
	ConsultantAvatar string `json:"consultant_avatar"`
}

type Consultant struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type Booking struct {
	ID             uint    `json:"id"`
	UserID         uint    `json:"user_id"`
	ServiceID      uint    `json:"service_id"`
	BookingDate    string  `json:"booking_date"`
	BookingTime    string  `json:"booking_time"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
	ServiceTitle   string  `json:"service_title"`
	Duration       int     `json:"duration"`
	Price          float64 `json:"price"`
	ConsultantName string  `json:"consultant_name"`
	UserName       string  `json:"user_name"`
	UserEmail      string  `json:"user_email"`
	UserPhone      string  `json:"user_phone"`
}

// --------- Inputs ---------

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateServiceInput struct {
	ConsultantID uint    `json:"consultant_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Duration     int     `json:"duration"`
	Price        float64 `json:"price"`
	Category     string  `json:"category,omitempty"`
}

type CreateBookingInput struct {
	UserID      uint   `json:"user_id,omitempty"`
	ServiceID   uint   `json:"service_id"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	Notes       string `json:"notes,omitempty"`
}

// --------- Responses ---------

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

type meResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type servicesResponse struct {
	Success  bool      `json:"success"`
	Services []Service `json:"services"`
}

type serviceResponse struct {
	Success bool          `json:"success"`
	Service ServiceDetail `json:"service"`
}

type createServiceResponse struct {
	Success   bool `json:"success"`
	ServiceID uint `json:"service_id"`
}

type consultantsResponse struct {
	Success     bool         `json:"success"`
	Consultants []Consultant `json:"consultants"`
}

type createBookingResponse struct {
	Success   bool `json:"success"`
	BookingID uint `json:"booking_id"`
}

type bookingsResponse struct {
	Success  bool      `json:"success"`
	Bookings []Booking `json:"bookings"`
}

type bookingResponse struct {
	Success bool    `json:"success"`
	Booking Booking `json:"booking"`
}
