package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/go-playground/validator/v10"
)

type ContactAPI interface {
	SubmitContact(ctx context.Context, msg models.ContactMessage) error
}

type ContactForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type ContactService interface {
	Send(ctx context.Context, form ContactForm) error
}

type contactService struct {
	api      ContactAPI
	validate *validator.Validate
}

func NewContactService(api ContactAPI) ContactService {
	return &contactService{api: api, validate: newValidator()}
}

func (s *contactService) Send(ctx context.Context, form ContactForm) error {
	if err := validate(s.validate, form); err != nil {
		return err
	}
	msg := models.ContactMessage{Name: form.Name, Email: form.Email, Message: form.Message}
	if err := s.api.SubmitContact(ctx, msg); err != nil {
		return fmt.Errorf("submit contact message: %w", err)
	}
	return nil
}
