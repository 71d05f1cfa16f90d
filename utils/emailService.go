package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"skilldev/config"
)

// SendEmail sends an HTML email through the configured SMTP server.
// A no-op when EMAIL_SENDER is unset so local setups work without SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	cfg := config.AppConfig

	if cfg.EmailSender == "" {
		log.Printf("Email sending skipped (EMAIL_SENDER not configured): %s", subject)
		return nil
	}

	from := cfg.EmailSender
	password := cfg.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SkillDev <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, cfg.SMTPHost)

	err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// SendWelcomeEmail mails a new user after registration. Best effort;
// registration never fails on email problems.
func SendWelcomeEmail(username, email string) {
	body := getEmailTemplate("Welcome to SkillDev", fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your account has been created. You can now log in from the
		mobile app, browse the course catalogue and enroll.</p>
		<p>Your documents are under review. You will be notified once your
		account is fully verified.</p>`, username))

	if err := SendEmail([]string{email}, "Welcome to SkillDev", body); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", email, err)
	}
}

// getEmailTemplate wraps body content in the shared HTML shell.
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">SkillDev Learning</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
