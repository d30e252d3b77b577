package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
