package personal

import (
	"errors"
	"net/http"

	"portfolio-backend/db"
	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get personal information (admin)
// @Description Returns the single personal document, seeding the default on first read
// @Tags personal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/personal [get]
func GetPersonal(c *gin.Context) {
	var personal models.Personal
	err := db.DB.First(&personal).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendDBError(c, err, "")
			return
		}

		personal = models.DefaultPersonal()
		if createErr := db.DB.Create(&personal).Error; createErr != nil {
			utils.SendDBError(c, createErr, "")
			return
		}
	}

	utils.SendSuccess(c, http.StatusOK, "", personal)
}

// @Summary Update personal information
// @Description Upsert the single personal document with the validated payload
// @Tags personal
// @Accept json
// @Produce json
// @Param personal body models.PersonalInput true "Personal information"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/personal [put]
func UpdatePersonal(c *gin.Context) {
	var input models.PersonalInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	var personal models.Personal
	err := db.DB.First(&personal).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendDBError(c, err, "")
		return
	}

	personal.Name = input.Name
	personal.Title = input.Title
	personal.Tagline = input.Tagline
	personal.Bio = input.Bio
	personal.Email = utils.NormalizeEmail(input.Email)
	personal.Phone = input.Phone
	personal.Location = input.Location
	personal.SocialLinks = input.SocialLinks
	if input.ProfileImageURL != "" {
		personal.ProfileImageURL = input.ProfileImageURL
	}
	if input.ResumeURL != "" {
		personal.ResumeURL = input.ResumeURL
	}

	if saveErr := db.DB.Save(&personal).Error; saveErr != nil {
		utils.SendDBError(c, saveErr, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Personal information updated successfully", personal)
}
