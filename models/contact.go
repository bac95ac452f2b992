package models

import (
	"time"
)

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// Contact is a message submitted through the public contact form
// @Description Contact form submission stored with request metadata
type Contact struct {
	ID        string        `json:"id" gorm:"primaryKey;default:gen_random_uuid()"`
	Name      string        `json:"name" gorm:"not null"`
	Email     string        `json:"email" gorm:"not null;index"`
	Message   string        `json:"message" gorm:"type:text;not null"`
	IPAddress string        `json:"ipAddress" gorm:"column:ip_address"`
	UserAgent string        `json:"userAgent" gorm:"column:user_agent"`
	Status    ContactStatus `json:"status" gorm:"default:'new'"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactCreate is the payload of the public contact form
// @Description payload for submitting the contact form
type ContactCreate struct {
	Name    string `json:"name" binding:"required,min=2,max=100" example:"Jean Dupont"`
	Email   string `json:"email" binding:"required,email" example:"jean.dupont@example.com"`
	Message string `json:"message" binding:"required,min=10,max=1000" example:"I would love to discuss a project with you."`
}

// ContactStatusUpdate is the admin payload for changing a message status
type ContactStatusUpdate struct {
	Status ContactStatus `json:"status" binding:"required,oneof=new read replied archived" example:"read"`
}
