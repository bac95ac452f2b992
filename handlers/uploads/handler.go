package uploads

import (
	"errors"
	"net/http"

	"portfolio-backend/db"
	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// uploadFile is a package variable so tests can stub the media host away.
var uploadFile = utils.UploadFile

// loadOrDefaultPersonal fetches the singleton row, falling back to an
// unsaved default document when none exists yet.
func loadOrDefaultPersonal() (models.Personal, error) {
	var personal models.Personal
	err := db.DB.First(&personal).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return personal, err
		}
		personal = models.DefaultPersonal()
	}
	return personal, nil
}

// @Summary Upload a resume
// @Description Upload a PDF resume, replace the stored one and clean up the old remote asset
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "PDF resume, 5MB max"
// @Security BearerAuth
// @Success 200 {object} utils.Response "url and publicId of the stored asset"
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/upload/resume [post]
func UploadResume(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "No resume file provided")
		return
	}

	url, publicID, err := uploadFile(file, utils.UploadKindResume)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	personal, err := loadOrDefaultPersonal()
	if err != nil {
		utils.SendDBError(c, err, "")
		return
	}

	if personal.ResumePublicID != "" {
		if delErr := utils.DeleteAsset(personal.ResumePublicID, "raw"); delErr != nil {
			utils.LogError(delErr, "Failed to delete the replaced resume from the media host")
		}
	}

	personal.ResumeURL = url
	personal.ResumePublicID = publicID
	if saveErr := db.DB.Save(&personal).Error; saveErr != nil {
		utils.SendDBError(c, saveErr, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Resume uploaded successfully", gin.H{
		"url":      url,
		"publicId": publicID,
	})
}

// @Summary Upload a profile image
// @Description Upload the owner's profile image and replace the stored one
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param profileImage formData file true "Image, 2MB max"
// @Security BearerAuth
// @Success 200 {object} utils.Response "url and publicId of the stored asset"
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/upload/profile-image [post]
func UploadProfileImage(c *gin.Context) {
	file, err := c.FormFile("profileImage")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "No profile image provided")
		return
	}

	url, publicID, err := uploadFile(file, utils.UploadKindProfileImage)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	personal, err := loadOrDefaultPersonal()
	if err != nil {
		utils.SendDBError(c, err, "")
		return
	}

	if personal.ProfileImagePublicID != "" {
		if delErr := utils.DeleteAsset(personal.ProfileImagePublicID, "image"); delErr != nil {
			utils.LogError(delErr, "Failed to delete the replaced profile image from the media host")
		}
	}

	personal.ProfileImageURL = url
	personal.ProfileImagePublicID = publicID
	if saveErr := db.DB.Save(&personal).Error; saveErr != nil {
		utils.SendDBError(c, saveErr, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Profile image uploaded successfully", gin.H{
		"url":      url,
		"publicId": publicID,
	})
}

// @Summary Upload a project image
// @Description Upload a project image; the returned url/publicId go into the project payload
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param projectImage formData file true "Image, 3MB max"
// @Security BearerAuth
// @Success 200 {object} utils.Response "url and publicId of the stored asset"
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /api/admin/upload/project-image [post]
func UploadProjectImage(c *gin.Context) {
	file, err := c.FormFile("projectImage")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "No project image provided")
		return
	}

	url, publicID, err := uploadFile(file, utils.UploadKindProjectImage)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Project image uploaded successfully", gin.H{
		"url":      url,
		"publicId": publicID,
	})
}

// @Summary Upload a tech logo
// @Description Upload a technology logo; the returned url/publicId go into the tech stack payload
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param techLogo formData file true "Image, 1MB max"
// @Security BearerAuth
// @Success 200 {object} utils.Response "url and publicId of the stored asset"
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /api/admin/upload/tech-logo [post]
func UploadTechLogo(c *gin.Context) {
	file, err := c.FormFile("techLogo")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "No tech logo provided")
		return
	}

	url, publicID, err := uploadFile(file, utils.UploadKindTechLogo)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Tech logo uploaded successfully", gin.H{
		"url":      url,
		"publicId": publicID,
	})
}
