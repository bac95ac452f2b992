package routes

import (
	"portfolio-backend/handlers/contacts"
	"portfolio-backend/handlers/dashboard"
	"portfolio-backend/handlers/personal"
	"portfolio-backend/handlers/projects"
	"portfolio-backend/handlers/techstack"
	"portfolio-backend/handlers/uploads"
	"portfolio-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	group := r.Group("/api/admin")
	group.Use(middleware.JWTAuth())

	group.GET("/projects", projects.GetAllProjects)
	group.POST("/projects", projects.CreateProject)
	group.PUT("/projects/:id", projects.UpdateProject)
	group.DELETE("/projects/:id", projects.DeleteProject)

	group.GET("/tech-stack", techstack.GetAllTechStack)
	group.POST("/tech-stack", techstack.CreateTechStack)
	group.PUT("/tech-stack/:id", techstack.UpdateTechStack)
	group.DELETE("/tech-stack/:id", techstack.DeleteTechStack)

	group.GET("/personal", personal.GetPersonal)
	group.PUT("/personal", personal.UpdatePersonal)

	group.POST("/upload/resume", uploads.UploadResume)
	group.POST("/upload/profile-image", uploads.UploadProfileImage)
	group.POST("/upload/project-image", uploads.UploadProjectImage)
	group.POST("/upload/tech-logo", uploads.UploadTechLogo)

	group.GET("/contact/messages", contacts.GetAllMessages)
	group.PUT("/contact/messages/:id/status", contacts.UpdateMessageStatus)

	group.GET("/dashboard", dashboard.GetDashboard)
}
