package models

import (
	"time"
)

// SocialLinks groups the optional outbound links of the site owner
type SocialLinks struct {
	Github   string `json:"github" binding:"omitempty,url" example:"https://github.com/naveen-agarwal"`
	Linkedin string `json:"linkedin" binding:"omitempty,url" example:"https://linkedin.com/in/naveen-agarwal-dev"`
	Twitter  string `json:"twitter" binding:"omitempty,url" example:"https://twitter.com/naveen_dev"`
	Email    string `json:"email" example:"mailto:naveen.agarwal.dev@gmail.com"`
}

// Personal is the single document holding the site owner's information.
// Exactly one row is expected; it is seeded on first admin read.
// @Description Personal information of the site owner
type Personal struct {
	ID                    string      `json:"id" gorm:"primaryKey;default:gen_random_uuid()"`
	Name                  string      `json:"name" gorm:"not null"`
	Title                 string      `json:"title" gorm:"not null"`
	Tagline               string      `json:"tagline" gorm:"not null"`
	Bio                   string      `json:"bio" gorm:"type:text;not null"`
	Email                 string      `json:"email" gorm:"not null"`
	Phone                 string      `json:"phone"`
	Location              string      `json:"location"`
	ProfileImageURL       string      `json:"profileImageUrl" gorm:"column:profile_image_url;default:''"`
	ProfileImagePublicID  string      `json:"profileImagePublicId" gorm:"column:profile_image_public_id;default:''"`
	ResumeURL             string      `json:"resumeUrl" gorm:"column:resume_url;default:''"`
	ResumePublicID        string      `json:"resumePublicId" gorm:"column:resume_public_id;default:''"`
	FrontendResumeURL     string      `json:"frontendResumeUrl" gorm:"column:frontend_resume_url;default:''"`
	FrontendResumePublicID string     `json:"frontendResumePublicId" gorm:"column:frontend_resume_public_id;default:''"`
	BackendResumeURL      string      `json:"backendResumeUrl" gorm:"column:backend_resume_url;default:''"`
	BackendResumePublicID string      `json:"backendResumePublicId" gorm:"column:backend_resume_public_id;default:''"`
	SocialLinks           SocialLinks `json:"socialLinks" gorm:"column:social_links;serializer:json"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

func (Personal) TableName() string {
	return "personal"
}

// PersonalInput is the admin payload for updating personal information
// @Description payload for updating personal information
type PersonalInput struct {
	Name            string      `json:"name" binding:"required,min=2,max=100" example:"Naveen Agarwal"`
	Title           string      `json:"title" binding:"required,min=2,max=200" example:"Front-End Web Developer"`
	Tagline         string      `json:"tagline" binding:"required,min=10,max=300" example:"Building modern, responsive web experiences"`
	Bio             string      `json:"bio" binding:"required,min=50,max=2000" example:"Passionate Front-End Developer with expertise in modern web technologies and a love for clean design."`
	Email           string      `json:"email" binding:"required,email" example:"naveen.agarwal.dev@gmail.com"`
	Phone           string      `json:"phone" example:"+91 98765 43210"`
	Location        string      `json:"location" example:"India"`
	ProfileImageURL string      `json:"profileImageUrl" binding:"omitempty,url"`
	ResumeURL       string      `json:"resumeUrl" binding:"omitempty,url"`
	SocialLinks     SocialLinks `json:"socialLinks"`
}

// DefaultPersonal returns the hard-coded document used until the owner
// saves their own information.
func DefaultPersonal() Personal {
	return Personal{
		Name:     "Naveen Agarwal",
		Title:    "Front-End Web Developer",
		Tagline:  "Building modern, responsive web experiences with clean code and creative design",
		Bio:      "Passionate Front-End Developer with expertise in modern web technologies.",
		Email:    "naveen.agarwal.dev@gmail.com",
		Phone:    "+91 98765 43210",
		Location: "India",
		SocialLinks: SocialLinks{
			Github:   "https://github.com/naveen-agarwal",
			Linkedin: "https://linkedin.com/in/naveen-agarwal-dev",
			Twitter:  "https://twitter.com/naveen_dev",
			Email:    "mailto:naveen.agarwal.dev@gmail.com",
		},
	}
}
