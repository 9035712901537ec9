package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service.
// If sendGridAPIKey is provided, emails are sent via SendGrid; otherwise
// they are logged to the console (development mode).
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendMagicLinkEmail sends the single-use sign-in link.
func (s *Service) SendMagicLinkEmail(toEmail, token string) error {
	signInURL := fmt.Sprintf("%s/auth/magic-link/%s", s.baseURL, token)

	subject := "Your CreatorBridge sign-in link"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Sign in to CreatorBridge</h2>
			<p>Click the button below to sign in. The link works once and expires shortly.</p>
			<p><a href="%s" style="background-color: #4A90E2; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Sign In</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p>If you didn't request this, you can safely ignore this email.</p>
			<p>Thanks,<br>The CreatorBridge Team</p>
		</body>
		</html>
	`, signInURL, signInURL, signInURL)

	plainText := fmt.Sprintf(`
Sign in to CreatorBridge by clicking the link below. It works once and expires shortly.

%s

If you didn't request this, you can safely ignore this email.

Thanks,
The CreatorBridge Team
	`, signInURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, "", subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, "", subject, signInURL)
}

// SendApplicationConfirmation sends the applicant confirmation email
// after a successful submission.
func (s *Service) SendApplicationConfirmation(toEmail, creatorName string) error {
	subject := "We received your CreatorBridge application"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Application received!</h2>
			<p>Hi %s,</p>
			<p>Thanks for applying to the CreatorBridge accelerator. Your application is now under review.</p>
			<p>Our team reads every application carefully. You'll hear back from us by email once a decision has been made — usually within two weeks.</p>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Your Application</a></p>
			<p>Thanks,<br>The CreatorBridge Team</p>
		</body>
		</html>
	`, creatorName, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Thanks for applying to the CreatorBridge accelerator. Your application is now under review.

Our team reads every application carefully. You'll hear back from us by email once a decision has been made — usually within two weeks.

View your application: %s/dashboard

Thanks,
The CreatorBridge Team
	`, creatorName, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, creatorName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, creatorName, subject, s.baseURL+"/dashboard")
}

// SendAdminNotification notifies the review team about a new submission.
func (s *Service) SendAdminNotification(adminEmail, creatorName string, applicationID int) error {
	reviewURL := fmt.Sprintf("%s/admin/applications/%d", s.baseURL, applicationID)

	subject := fmt.Sprintf("New application: %s", creatorName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>New accelerator application</h2>
			<p><strong>%s</strong> just submitted an application.</p>
			<p><a href="%s" style="background-color: #4A90E2; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Review Application</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
		</body>
		</html>
	`, creatorName, reviewURL, reviewURL, reviewURL)

	plainText := fmt.Sprintf(`
%s just submitted an accelerator application.

Review it here: %s
	`, creatorName, reviewURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(adminEmail, "", subject, body, plainText)
	}

	return s.logEmailToConsole(adminEmail, "", subject, reviewURL)
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Subject: %s", subject)
	log.Printf("   Action URL: %s", actionURL)
	return nil
}
