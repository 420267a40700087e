package model

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleClient Role = "client"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleClient:
		return true
	}
	return false
}

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type BusinessStatus string

const (
	BusinessActive   BusinessStatus = "active"
	BusinessInactive BusinessStatus = "inactive"
	BusinessPending  BusinessStatus = "pending"
)

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	// set only for owner accounts; 0 means not linked to a business
	BusinessID int64     `json:"businessId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Business struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	OwnerName   string         `json:"ownerName"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone,omitempty"`
	Type        string         `json:"type"`
	URLSlug     string         `json:"urlSlug"`
	Address     string         `json:"address,omitempty"`
	Description string         `json:"description,omitempty"`
	Status      BusinessStatus `json:"status"`
	// lifetime counter, never decremented; cancellations do not free quota
	AppointmentCount int       `json:"appointmentCount"`
	IsPremium        bool      `json:"isPremium"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Service struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// minor currency units (cents)
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
	Description string `json:"description,omitempty"`
	BusinessID  int64  `json:"businessId"`
}

type Appointment struct {
	ID        int64 `json:"id"`
	ServiceID int64 `json:"serviceId"`
	ClientID  int64 `json:"clientId"`
	// denormalized from the service at creation time, never re-derived
	BusinessID int64             `json:"businessId"`
	Date       time.Time         `json:"date"`
	Notes      string            `json:"notes,omitempty"`
	Status     AppointmentStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type Notification struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"createdAt"`
	AppointmentID int64     `json:"appointmentId,omitempty"`
}
