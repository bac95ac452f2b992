package models

import (
	"time"
)

type ProjectCategory string

const (
	ProjectCategoryAI  ProjectCategory = "AI"
	ProjectCategoryWeb ProjectCategory = "Web"
)

// Project is a portfolio project shown on the public site
// @Description Portfolio project with media and links
type Project struct {
	ID            string          `json:"id" gorm:"primaryKey;default:gen_random_uuid()"`
	Title         string          `json:"title" gorm:"not null"`
	Description   string          `json:"description" gorm:"type:text;not null"`
	Category      ProjectCategory `json:"category" gorm:"not null;index"`
	Image         string          `json:"image" gorm:"not null"`
	ImagePublicID string          `json:"imagePublicId" gorm:"column:image_public_id;default:''"`
	TechStack     []string        `json:"techStack" gorm:"column:tech_stack;serializer:json"`
	GithubURL     string          `json:"githubUrl" gorm:"column:github_url;not null"`
	LiveURL       string          `json:"liveUrl" gorm:"column:live_url;not null"`
	Featured      bool            `json:"featured" gorm:"default:false;index"`
	Order         int             `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectInput is the admin payload for creating or updating a project
// @Description payload for creating or updating a project
type ProjectInput struct {
	Title         string   `json:"title" binding:"required,min=2,max=200" example:"AI Chat Assistant"`
	Description   string   `json:"description" binding:"required,min=10,max=1000" example:"A conversational assistant built around large language models."`
	Category      string   `json:"category" binding:"required,oneof=AI Web" example:"AI"`
	Image         string   `json:"image" binding:"required,url" example:"https://res.cloudinary.com/demo/image/upload/project.png"`
	ImagePublicID string   `json:"imagePublicId" example:"portfolio/projects/project-1234"`
	TechStack     []string `json:"techStack" binding:"required,min=1,dive,required" example:"React,Go"`
	GithubURL     string   `json:"githubUrl" binding:"required,url" example:"https://github.com/user/repo"`
	LiveURL       string   `json:"liveUrl" binding:"required,url" example:"https://demo.example.com"`
	Featured      bool     `json:"featured" example:"false"`
	Order         int      `json:"order" binding:"min=0" example:"0"`
}
