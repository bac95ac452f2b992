package portfolio

import (
	"errors"
	"net/http"

	"portfolio-backend/db"
	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get personal information
// @Description Public personal data; falls back to defaults without persisting them
// @Tags portfolio
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/portfolio/personal [get]
func GetPersonal(c *gin.Context) {
	var personal models.Personal
	err := db.DB.First(&personal).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendDBError(c, err, "")
			return
		}
		personal = models.DefaultPersonal()
	}

	utils.SendSuccess(c, http.StatusOK, "", personal)
}

// @Summary List projects
// @Description Public project list, optionally filtered by category
// @Tags portfolio
// @Produce json
// @Param category query string false "AI, Web or All"
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/portfolio/projects [get]
func GetProjects(c *gin.Context) {
	query := db.DB.Model(&models.Project{})
	if category := c.Query("category"); category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	var projects []models.Project
	result := query.Order("featured DESC, display_order ASC, created_at DESC").Find(&projects)
	if result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", projects)
}

// @Summary List featured projects
// @Tags portfolio
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/portfolio/projects/featured [get]
func GetFeaturedProjects(c *gin.Context) {
	var projects []models.Project
	result := db.DB.Where("featured = ?", true).
		Order("display_order ASC, created_at DESC").
		Limit(3).
		Find(&projects)
	if result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", projects)
}

// @Summary List the tech stack
// @Tags portfolio
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/portfolio/tech-stack [get]
func GetTechStack(c *gin.Context) {
	var items []models.TechStack
	result := db.DB.Order("category ASC, display_order ASC, name ASC").Find(&items)
	if result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", items)
}

// @Summary Portfolio statistics
// @Description Project and technology counts for the public site
// @Tags portfolio
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/portfolio/stats [get]
func GetStats(c *gin.Context) {
	var totalProjects, aiProjects, webProjects, techCount int64

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&totalProjects, db.DB.Model(&models.Project{})},
		{&aiProjects, db.DB.Model(&models.Project{}).Where("category = ?", models.ProjectCategoryAI)},
		{&webProjects, db.DB.Model(&models.Project{}).Where("category = ?", models.ProjectCategoryWeb)},
		{&techCount, db.DB.Model(&models.TechStack{})},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			utils.SendDBError(c, err, "")
			return
		}
	}

	utils.SendSuccess(c, http.StatusOK, "", gin.H{
		"totalProjects":   totalProjects,
		"aiProjects":      aiProjects,
		"webProjects":     webProjects,
		"techCount":       techCount,
		"yearsExperience": 3,
		"clients":         25,
	})
}
