package services

import (
	"context"
	"fmt"
	"strings"

	"ait/internal/models/request_models"
	"ait/pkg/utils"
)

type ContactServiceInterface interface {
	Submit(ctx context.Context, req request_models.ContactRequest) error
}

type ContactService struct {
	mailService IMailService
	recipients  []string
}

func NewContactService(mailService IMailService, recipients []string) ContactServiceInterface {
	return &ContactService{
		mailService: mailService,
		recipients:  recipients,
	}
}

// Submit relays a contact form to the site owners. Delivery failures wrap utils.ErrMailDelivery.
func (s *ContactService) Submit(ctx context.Context, req request_models.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return utils.NewValidationError("message", "Please fill in your name, email and message.")
	}

	err := s.mailService.Send(ctx, OutgoingMail{
		To:          s.recipients,
		Subject:     fmt.Sprintf("Message from %s", name),
		Body:        message,
		ReplyTo:     email,
		ReplyToName: name,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", utils.ErrMailDelivery, err)
	}
	return nil
}
