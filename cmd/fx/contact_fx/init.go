package contact_fx

import (
	"go.uber.org/fx"

	"ait/internal/config"
	"ait/internal/services"
)

var Module = fx.Provide(provideContactService)

func provideContactService(mail services.IMailService, cfg *config.AppConfig) services.ContactServiceInterface {
	return services.NewContactService(mail, cfg.Mail.Recipients)
}
