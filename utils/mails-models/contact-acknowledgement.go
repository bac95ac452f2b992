package mailsmodels

import (
	"fmt"

	"portfolio-backend/utils"
)

// ContactAcknowledgement sends the submitter the automatic "message
// received" reply.
func ContactAcknowledgement(contact ContactEmailData) error {
	headers := "Subject: Thank you for your message\r\n"
	headers += "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"

	body := fmt.Sprintf(`
	<div style="max-width: 600px; margin: 0 auto; padding: 20px; font-family: Arial, sans-serif; color: #333;">
		<div style="background: #3b82f6; color: white; padding: 20px; text-align: center;">
			<h1>Thank You, %s!</h1>
			<p>Your message has been received</p>
		</div>
		<div style="background: #f9fafb; padding: 30px;">
			<p>Hi %s,</p>
			<p>Thank you for reaching out through my portfolio website. I've received your message and will get back to you as soon as possible, typically within 24 hours.</p>
			<p>I appreciate your interest in my work and look forward to connecting with you!</p>
		</div>
		<div style="text-align: center; padding: 20px; color: #6b7280; font-size: 14px;">
			<p>This is an automated response from the portfolio contact form.</p>
		</div>
	</div>
`, contact.Name, contact.Name)

	return utils.SendMail(contact.Email, []byte(headers+body))
}
