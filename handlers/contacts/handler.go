package contacts

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"portfolio-backend/db"
	"portfolio-backend/models"
	"portfolio-backend/utils"
	mailsmodels "portfolio-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
)

// Notification senders are package variables so tests can stub them.
var (
	sendAdminAlert      = mailsmodels.ContactNotification
	sendAcknowledgement = mailsmodels.ContactAcknowledgement
)

// NotificationOutcome records the result of each best-effort send of the
// contact fan-out. Neither failure affects the request outcome.
type NotificationOutcome struct {
	AdminAlertErr      error
	AcknowledgementErr error
}

func (o NotificationOutcome) AdminAlertSent() bool      { return o.AdminAlertErr == nil }
func (o NotificationOutcome) AcknowledgementSent() bool { return o.AcknowledgementErr == nil }

func dispatchNotifications(contact models.Contact) NotificationOutcome {
	data := mailsmodels.ContactEmailData{
		Name:    contact.Name,
		Email:   contact.Email,
		Message: contact.Message,
	}

	outcome := NotificationOutcome{
		AdminAlertErr:      sendAdminAlert(data),
		AcknowledgementErr: sendAcknowledgement(data),
	}

	if outcome.AdminAlertErr != nil {
		utils.LogError(outcome.AdminAlertErr, "Failed to send the admin notification email")
	}
	if outcome.AcknowledgementErr != nil {
		utils.LogError(outcome.AcknowledgementErr, "Failed to send the acknowledgement email")
	}
	return outcome
}

// @Summary Submit the contact form
// @Description Validate, persist and acknowledge a public contact submission
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactCreate true "Contact information"
// @Success 201 {object} utils.Response "id and timestamp of the stored message"
// @Failure 400 {object} utils.Response "field-level validation errors"
// @Failure 429 {object} utils.Response "submission quota exceeded"
// @Failure 500 {object} utils.Response "the message could not be stored"
// @Router /api/contact [post]
func CreateContact(c *gin.Context) {
	var input models.ContactCreate
	if !utils.BindAndValidate(c, &input) {
		return
	}

	contact := models.Contact{
		Name:      strings.TrimSpace(input.Name),
		Email:     utils.NormalizeEmail(input.Email),
		Message:   strings.TrimSpace(input.Message),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Status:    models.ContactStatusNew,
	}

	// The write is the authoritative "the submission happened" event.
	// Nothing past this point may fail the request.
	if err := db.DB.Create(&contact).Error; err != nil {
		utils.LogError(err, "Contact form submission error")
		utils.SendError(c, http.StatusInternalServerError, "Failed to submit contact form. Please try again later.")
		return
	}

	dispatchNotifications(contact)

	utils.SendSuccess(c, http.StatusCreated, "Thank you for your message! I will get back to you soon.", gin.H{
		"id":        contact.ID,
		"timestamp": contact.CreatedAt.Format(time.RFC3339),
	})
}

// @Summary List contact messages
// @Description Paginated list of contact submissions, newest first
// @Tags contacts
// @Produce json
// @Param status query string false "Filter by status (new, read, replied, archived)"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, default 10"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/contact/messages [get]
func GetAllMessages(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	status := c.Query("status")
	countQuery := db.DB.Model(&models.Contact{})
	listQuery := db.DB.Model(&models.Contact{})
	if status != "" && status != "all" {
		countQuery = countQuery.Where("status = ?", status)
		listQuery = listQuery.Where("status = ?", status)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		utils.SendDBError(c, err, "")
		return
	}

	var contacts []models.Contact
	result := listQuery.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&contacts)
	if result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", gin.H{
		"contacts": contacts,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// @Summary Update a contact message status
// @Description Set the status of a contact message (new, read, replied or archived)
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact message ID"
// @Param status body models.ContactStatusUpdate true "New status"
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/admin/contact/messages/{id}/status [put]
func UpdateMessageStatus(c *gin.Context) {
	id := c.Param("id")

	var input models.ContactStatusUpdate
	if !utils.BindAndValidate(c, &input) {
		return
	}

	var contact models.Contact
	if result := db.DB.First(&contact, "id = ?", id); result.Error != nil {
		utils.SendDBError(c, result.Error, "Contact message not found")
		return
	}

	if result := db.DB.Model(&contact).Update("status", input.Status); result.Error != nil {
		utils.SendDBError(c, result.Error, "")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Contact status updated successfully", contact)
}
