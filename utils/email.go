// utils/email.go
package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/ashishkumar9589411421-svg/navya-jewels/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService handles sending emails using SendGrid. Without an API key it
// degrades to a logging no-op so a local setup still runs end to end.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	es := &EmailService{sender: os.Getenv("EMAIL_SENDER")}
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY is not set; outgoing email is disabled.")
		return es
	}
	es.client = sendgrid.NewSendClient(apiKey)
	return es
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		log.Printf("Email disabled, dropping %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("Navya Jewels", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	response, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", response.StatusCode)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation email to the user
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Order Confirmation - Navya Jewels"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your purchase! Your order (ID: %s) has been placed successfully.<br><br>Order Total: <strong>₹%d</strong><br>Payment Method: <strong>%s</strong><br><br>Thank you for shopping with us!",
		order.CustomerName,
		order.ID,
		order.Total,
		order.PaymentMethod,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendContactAcknowledgementEmail thanks a customer for their enquiry
func (es *EmailService) SendContactAcknowledgementEmail(toEmail, name string) error {
	subject := "We received your enquiry - Navya Jewels"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for contacting Navya Jewels. Our team will get back to you shortly.",
		name,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
