package utils

import (
	"bims/config"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// SendIssuanceSMS notifies a resident that their certificate is ready for
// pickup. Failures are logged, never surfaced to the issuance response.
func SendIssuanceSMS(mobile, documentTitle, controlNumber string) error {
	if mobile == "" {
		return nil
	}
	if config.AppConfig.LocalTextApi == "" {
		log.Println("SMS gateway not configured, skipping issuance notification")
		return nil
	}

	message := fmt.Sprintf("Your %s (Control No. %s) is ready for pickup at the barangay hall.", documentTitle, controlNumber)

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", config.AppConfig.LocalTextApi).
		SetBody(map[string]string{
			"number":  mobile,
			"message": message,
		}).
		Post(config.AppConfig.LocalTextApiUrl)
	if err != nil {
		log.Printf("Error while sending issuance SMS: %v", err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send issuance SMS, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send SMS, code: %d", resp.StatusCode())
	}

	log.Println("Issuance SMS sent successfully to", mobile)
	return nil
}
