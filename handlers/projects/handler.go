package projects

import (
	"net/http"

	"portfolio-backend/db"
	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
)

const featuredCap = 3

// enforceFeaturedCap demotes the least recently updated featured project
// once the cap is reached. Read-then-write with no isolation: concurrent
// requests can leave more than the cap featured.
func enforceFeaturedCap(excludeID string) {
	query := db.DB.Model(&models.Project{}).Where("featured = ?", true)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var featuredCount int64
	if err := query.Count(&featuredCount).Error; err != nil {
		utils.LogError(err, "Error counting featured projects")
		return
	}
	if featuredCount < featuredCap {
		return
	}

	var oldest models.Project
	find := db.DB.Where("featured = ?", true)
	if excludeID != "" {
		find = find.Where("id <> ?", excludeID)
	}
	if err := find.Order("updated_at ASC").First(&oldest).Error; err != nil {
		utils.LogError(err, "Error finding the featured project to demote")
		return
	}

	if err := db.DB.Model(&oldest).Update("featured", false).Error; err != nil {
		utils.LogError(err, "Error demoting the oldest featured project")
	}
}

func projectFromInput(input models.ProjectInput) models.Project {
	return models.Project{
		Title:         input.Title,
		Description:   input.Description,
		Category:      models.ProjectCategory(input.Category),
		Image:         input.Image,
		ImagePublicID: input.ImagePublicID,
		TechStack:     input.TechStack,
		GithubURL:     input.GithubURL,
		LiveURL:       input.LiveURL,
		Featured:      input.Featured,
		Order:         input.Order,
	}
}

// @Summary List all projects (admin)
// @Description All projects sorted featured first, then by display order
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/projects [get]
func GetAllProjects(c *gin.Context) {
	var projects []models.Project
	result := db.DB.Order("featured DESC, display_order ASC, created_at DESC").Find(&projects)
	if result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", projects)
}

// @Summary Create a project
// @Description Create a new project; featuring a 4th project demotes the stalest featured one
// @Tags projects
// @Accept json
// @Produce json
// @Param project body models.ProjectInput true "Project information"
// @Security BearerAuth
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/projects [post]
func CreateProject(c *gin.Context) {
	var input models.ProjectInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	if input.Featured {
		enforceFeaturedCap("")
	}

	project := projectFromInput(input)
	if result := db.DB.Create(&project); result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Project created successfully", project)
}

// @Summary Update a project
// @Description Replace a project's fields with the validated payload
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body models.ProjectInput true "Updated project information"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/projects/{id} [put]
func UpdateProject(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if result := db.DB.First(&project, "id = ?", id); result.Error != nil {
		utils.SendDBError(c, result.Error, "Project not found")
		return
	}

	var input models.ProjectInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	if input.Featured && !project.Featured {
		enforceFeaturedCap(project.ID)
	}

	updated := projectFromInput(input)
	updated.ID = project.ID
	updated.CreatedAt = project.CreatedAt

	if result := db.DB.Save(&updated); result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Project updated successfully", updated)
}

// @Summary Delete a project
// @Description Delete the project row, then attempt remote image cleanup
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if result := db.DB.First(&project, "id = ?", id); result.Error != nil {
		utils.SendDBError(c, result.Error, "Project not found")
		return
	}

	if result := db.DB.Delete(&project); result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	// Cleanup failure can leak a remote asset; the row is gone either way.
	if project.ImagePublicID != "" {
		if err := utils.DeleteAsset(project.ImagePublicID, "image"); err != nil {
			utils.LogError(err, "Failed to delete the project image from the media host")
		}
	}

	utils.SendSuccess(c, http.StatusOK, "Project deleted successfully", nil)
}
