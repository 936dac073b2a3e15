package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"microcourses/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		fmt.Println("Email sender not configured, skipping:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: MicroCourses <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #5C6BC0; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>MICROCOURSES</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 MicroCourses. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to MicroCourses! Browse the catalog, enroll in a published course and start learning.</p>
		<p>Complete every lesson of a course and we will issue your certificate automatically.</p>
	`, name)
	SendEmail([]string{email}, "Welcome to MicroCourses", getEmailTemplate("Welcome Aboard", body))
}

// 2. Creator application decision
func SendCreatorDecisionEmail(email, name, decision string) {
	var body string
	if decision == "APPROVED" {
		body = fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>Your creator application has been <strong>approved</strong>. You can now author courses from your creator dashboard.</p>
		`, name)
	} else {
		body = fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>Unfortunately your creator application was <strong>rejected</strong>. You may apply again with updated details.</p>
		`, name)
	}
	SendEmail([]string{email}, "Your creator application", getEmailTemplate("Creator Application Update", body))
}

// 3. Course moderation decision
func SendCourseModeratedEmail(email, name, courseTitle, decision string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your course <strong>%s</strong> has been reviewed. Decision: <strong>%s</strong>.</p>
	`, name, courseTitle, decision)
	SendEmail([]string{email}, "Course review decision", getEmailTemplate("Course Review", body))
}

// 4. Certificate issued
func SendCertificateEmail(email, name, courseTitle, serial string, issuedAt time.Time) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! You completed <strong>%s</strong>.</p>
		<div class="info-box">
			<p><strong>Certificate serial:</strong> %s</p>
			<p><strong>Issued:</strong> %s</p>
		</div>
	`, name, courseTitle, serial, issuedAt.Format("02 Jan 2006"))
	SendEmail([]string{email}, "Your course certificate", getEmailTemplate("Certificate Issued", body))
}

// 5. Contact form notification to the site owner
func SendContactNotification(name, email, subject, message string) {
	body := fmt.Sprintf(`
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Subject:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>
	`, name, email, subject, message)
	SendEmail([]string{config.AppConfig.AdminEmail}, "Contact Form: "+subject, getEmailTemplate("New Contact Form Submission", body))
}

// 6. Pending review reminder for admins
func SendPendingReviewReminder(email string, pendingCourses, pendingApplications int64) {
	body := fmt.Sprintf(`
		<p>There are items waiting for review:</p>
		<div class="info-box">
			<p><strong>Pending courses:</strong> %d</p>
			<p><strong>Pending creator applications:</strong> %d</p>
		</div>
	`, pendingCourses, pendingApplications)
	SendEmail([]string{email}, "Moderation queue reminder", getEmailTemplate("Items Awaiting Review", body))
}
