package models

import "time"

// User is an account: the tenant every studio record belongs to.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'staff'" json:"role"`

	// Set on users created by an owner; nil for self-registered accounts.
	ManagedByID *uint `gorm:"index" json:"managed_by_id,omitempty"`

	StudioName string `gorm:"size:100" json:"studio_name"`
	Timezone   string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
