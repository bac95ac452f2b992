package mailsmodels

import (
	"fmt"
	"os"
	"strings"

	"portfolio-backend/utils"
)

// ContactEmailData carries a contact submission into the mail templates
type ContactEmailData struct {
	Name    string
	Email   string
	Message string
}

// ContactNotification alerts the site owner about a new contact submission.
// Reply-To is set to the submitter so the owner can answer directly.
func ContactNotification(contact ContactEmailData) error {
	adminEmail := os.Getenv("ADMIN_NOTIFICATION_EMAIL")
	if adminEmail == "" {
		adminEmail = os.Getenv("ADMIN_EMAIL")
	}
	if adminEmail == "" {
		return fmt.Errorf("no admin notification address configured")
	}

	headers := fmt.Sprintf("Subject: Portfolio Contact: Message from %s\r\n", contact.Name)
	headers += fmt.Sprintf("Reply-To: %s\r\n", contact.Email)
	headers += "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"

	body := fmt.Sprintf(`
	<div style="max-width: 600px; margin: 0 auto; padding: 20px; font-family: Arial, sans-serif; color: #333;">
		<div style="background: #1f2937; color: white; padding: 20px; text-align: center;">
			<h1>New Contact from Portfolio</h1>
		</div>
		<div style="background: #f9fafb; padding: 30px;">
			<p><strong>Name:</strong></p>
			<div style="background: white; padding: 15px; border: 1px solid #d1d5db; border-radius: 5px;">%s</div>
			<p><strong>Email:</strong></p>
			<div style="background: white; padding: 15px; border: 1px solid #d1d5db; border-radius: 5px;">%s</div>
			<p><strong>Message:</strong></p>
			<div style="background: white; padding: 15px; border: 1px solid #d1d5db; border-radius: 5px; min-height: 100px;">%s</div>
		</div>
		<div style="text-align: center; padding: 20px; color: #6b7280; font-size: 14px;">
			<p>This message was sent from your portfolio contact form.</p>
			<p>Reply directly to this email to respond to %s.</p>
		</div>
	</div>
`, contact.Name, contact.Email, strings.ReplaceAll(contact.Message, "\n", "<br>"), contact.Name)

	return utils.SendMail(adminEmail, []byte(headers+body))
}
