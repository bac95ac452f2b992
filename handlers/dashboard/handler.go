package dashboard

import (
	"net/http"

	"portfolio-backend/db"
	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Admin dashboard
// @Description Aggregate counts plus the five most recent projects and messages
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/dashboard [get]
func GetDashboard(c *gin.Context) {
	var (
		totalProjects    int64
		featuredProjects int64
		aiProjects       int64
		webProjects      int64
		techStackCount   int64
		totalMessages    int64
		newMessages      int64
	)

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&totalProjects, db.DB.Model(&models.Project{})},
		{&featuredProjects, db.DB.Model(&models.Project{}).Where("featured = ?", true)},
		{&aiProjects, db.DB.Model(&models.Project{}).Where("category = ?", models.ProjectCategoryAI)},
		{&webProjects, db.DB.Model(&models.Project{}).Where("category = ?", models.ProjectCategoryWeb)},
		{&techStackCount, db.DB.Model(&models.TechStack{})},
		{&totalMessages, db.DB.Model(&models.Contact{})},
		{&newMessages, db.DB.Model(&models.Contact{}).Where("status = ?", models.ContactStatusNew)},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			utils.SendDBError(c, err, "")
			return
		}
	}

	var recentProjects []models.Project
	if err := db.DB.Order("created_at DESC").Limit(5).Find(&recentProjects).Error; err != nil {
		utils.SendDBError(c, err, "")
		return
	}

	var recentMessages []models.Contact
	if err := db.DB.Order("created_at DESC").Limit(5).Find(&recentMessages).Error; err != nil {
		utils.SendDBError(c, err, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", gin.H{
		"stats": gin.H{
			"totalProjects":    totalProjects,
			"featuredProjects": featuredProjects,
			"aiProjects":       aiProjects,
			"webProjects":      webProjects,
			"techStackCount":   techStackCount,
			"totalMessages":    totalMessages,
			"newMessages":      newMessages,
		},
		"recentProjects": recentProjects,
		"recentMessages": recentMessages,
	})
}
