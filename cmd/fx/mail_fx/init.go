package mail_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ait/internal/config"
	"ait/internal/services"
)

const appName = "AI Tourism"

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.AppConfig, logger *zap.Logger) (services.IMailService, error) {
	m := cfg.Mail

	if m.Backend == "console" {
		logger.Info("contact mails are printed to stdout", zap.String("email_backend", m.Backend))
		return services.NewConsoleMailService(m.From, appName, os.Stdout, logger), nil
	}

	if m.Username != "" && m.Password == "" {
		logger.Warn("SMTP_PASSWORD is empty, authentication will likely fail", zap.String("smtp_host", m.Host))
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       m.Host,
		Port:       m.Port, // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
		Username:   m.Username,
		Password:   m.Password,
		From:       m.From,
		FromName:   m.FromName,
		UseSSL:     m.UseSSL,
		RequireTLS: m.RequireTLS,
		AppName:    appName,
	}, logger)
}
