package techstack

import (
	"net/http"

	"portfolio-backend/db"
	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
)

func itemFromInput(input models.TechStackInput) models.TechStack {
	return models.TechStack{
		Name:         input.Name,
		Icon:         input.Icon,
		Color:        input.Color,
		Category:     input.Category,
		LogoURL:      input.LogoURL,
		LogoPublicID: input.LogoPublicID,
		Order:        input.Order,
	}
}

// @Summary List tech stack items (admin)
// @Tags tech-stack
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/tech-stack [get]
func GetAllTechStack(c *gin.Context) {
	var items []models.TechStack
	result := db.DB.Order("category ASC, display_order ASC, name ASC").Find(&items)
	if result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", items)
}

// @Summary Create a tech stack item
// @Tags tech-stack
// @Accept json
// @Produce json
// @Param item body models.TechStackInput true "Tech stack item"
// @Security BearerAuth
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/tech-stack [post]
func CreateTechStack(c *gin.Context) {
	var input models.TechStackInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	item := itemFromInput(input)
	if result := db.DB.Create(&item); result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Tech stack item created successfully", item)
}

// @Summary Update a tech stack item
// @Tags tech-stack
// @Accept json
// @Produce json
// @Param id path string true "Tech stack item ID"
// @Param item body models.TechStackInput true "Updated tech stack item"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/tech-stack/{id} [put]
func UpdateTechStack(c *gin.Context) {
	id := c.Param("id")

	var item models.TechStack
	if result := db.DB.First(&item, "id = ?", id); result.Error != nil {
		utils.SendDBError(c, result.Error, "Tech stack item not found")
		return
	}

	var input models.TechStackInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updated := itemFromInput(input)
	updated.ID = item.ID
	updated.CreatedAt = item.CreatedAt

	if result := db.DB.Save(&updated); result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Tech stack item updated successfully", updated)
}

// @Summary Delete a tech stack item
// @Description Delete the row, then attempt remote logo cleanup
// @Tags tech-stack
// @Produce json
// @Param id path string true "Tech stack item ID"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/tech-stack/{id} [delete]
func DeleteTechStack(c *gin.Context) {
	id := c.Param("id")

	var item models.TechStack
	if result := db.DB.First(&item, "id = ?", id); result.Error != nil {
		utils.SendDBError(c, result.Error, "Tech stack item not found")
		return
	}

	if result := db.DB.Delete(&item); result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	if item.LogoPublicID != "" {
		if err := utils.DeleteAsset(item.LogoPublicID, "image"); err != nil {
			utils.LogError(err, "Failed to delete the tech logo from the media host")
		}
	}

	utils.SendSuccess(c, http.StatusOK, "Tech stack item deleted successfully", nil)
}
