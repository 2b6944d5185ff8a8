package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ConfirmationEmailData holds data for the subscription confirmation email.
// ConfirmationLink must appear identically in the html and text renderings.
type ConfirmationEmailData struct {
	Email            string
	Name             string
	ConfirmationLink string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendConfirmation(ctx context.Context, data *ConfirmationEmailData) error
}
