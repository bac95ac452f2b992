package models

import (
	"time"
)

// TechStack is a technology displayed in the skills section
// @Description Technology entry with icon and display metadata
type TechStack struct {
	ID           string    `json:"id" gorm:"primaryKey;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"not null"`
	Icon         string    `json:"icon" gorm:"not null"`
	Color        string    `json:"color" gorm:"not null"`
	Category     string    `json:"category" gorm:"not null;index"`
	LogoURL      string    `json:"logoUrl" gorm:"column:logo_url;default:''"`
	LogoPublicID string    `json:"logoPublicId" gorm:"column:logo_public_id;default:''"`
	Order        int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (TechStack) TableName() string {
	return "tech_stack"
}

// TechStackInput is the admin payload for creating or updating a tech stack item
// @Description payload for creating or updating a tech stack item
type TechStackInput struct {
	Name         string `json:"name" binding:"required,min=1,max=100" example:"Rust"`
	Icon         string `json:"icon" binding:"required,min=1,max=100" example:"Code"`
	Color        string `json:"color" binding:"required,hexcolor" example:"#000000"`
	Category     string `json:"category" binding:"required,oneof=Frontend Backend Database Tools Cloud Mobile" example:"Backend"`
	LogoURL      string `json:"logoUrl" binding:"omitempty,url"`
	LogoPublicID string `json:"logoPublicId" example:"portfolio/tech-logos/tech-logo-1234"`
	Order        int    `json:"order" binding:"min=0" example:"0"`
}
