package auth

import (
	"errors"
	"net/http"

	"portfolio-backend/db"
	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetimeHours = 24

// @Summary Admin login
// @Description Exchange admin credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginInput true "Login credentials"
// @Success 200 {object} utils.Response "token and user summary"
// @Failure 400 {object} utils.Response "field-level validation errors"
// @Failure 401 {object} utils.Response "invalid credentials"
// @Failure 500 {object} utils.Response
// @Router /api/auth/login [post]
func Login(c *gin.Context) {
	var input models.LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	var user models.User
	result := db.DB.Where("email = ?", utils.NormalizeEmail(input.Email)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.SendDBError(c, result.Error, "")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateJWT(user, tokenLifetimeHours)
	if err != nil {
		utils.LogError(err, "Error generating the bearer token")
		utils.SendError(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// @Summary Verify a bearer token
// @Description Confirm the presented token is valid and echo its identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /api/auth/verify [post]
func Verify(c *gin.Context) {
	utils.SendSuccess(c, http.StatusOK, "Token is valid", gin.H{
		"user": gin.H{
			"id":    c.GetString("user_id"),
			"email": c.GetString("email"),
			"role":  c.GetString("role"),
		},
	})
}

// @Summary Logout
// @Description Stateless logout; the client discards its token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /api/auth/logout [post]
func Logout(c *gin.Context) {
	utils.SendSuccess(c, http.StatusOK, "Logout successful", nil)
}
