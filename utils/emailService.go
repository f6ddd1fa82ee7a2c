package utils

import (
	"bims/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendAccountEmail mails login credentials to a newly created staff account.
func SendAccountEmail(to, fullName, username, password string) error {
	if to == "" {
		return nil
	}
	if config.AppConfig.SendgridApiKey == "" {
		log.Println("Sendgrid not configured, skipping account email")
		return nil
	}

	from := mail.NewEmail(config.AppConfig.BarangayName, config.AppConfig.EmailSender)
	subject := "Your barangay system account"
	recipient := mail.NewEmail(fullName, to)

	plain := fmt.Sprintf("Hello %s,\n\nYour account has been created.\nUsername: %s\nPassword: %s\n\nPlease change your password after your first login.", fullName, username, password)
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 500px; margin: auto;">
			<h2>%s</h2>
			<p>Hello %s,</p>
			<p>Your account has been created.</p>
			<p><b>Username:</b> %s<br/><b>Password:</b> %s</p>
			<p>Please change your password after your first login.</p>
		</div>`, config.AppConfig.BarangayName, fullName, username, password)

	message := mail.NewSingleEmail(from, subject, recipient, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending account email: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send account email, response code: %d", resp.StatusCode)
		return fmt.Errorf("failed to send account email, code: %d", resp.StatusCode)
	}

	log.Println("Account email sent successfully to", to)
	return nil
}
