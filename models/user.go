package models

import (
	"time"
)

type Role string

const (
	AdminRole Role = "admin"
)

// User is an admin identity able to log into the management panel
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"`
	Role      Role      `json:"role" gorm:"default:'admin'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// LoginInput is the credentials payload of POST /api/auth/login
// @Description login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"changeme123"`
}
