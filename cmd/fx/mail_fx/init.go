package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"sahlatrack/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP_HOST not set, user notification mails disabled")
		return services.NewNoopMailService()
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Sahla-Track",
		UseSSL:   port == 465,

		AppName: "Sahla-Track",
	})
}
