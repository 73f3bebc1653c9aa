package mailer

import (
	"context"

	"campuscare-service/internal/pkg/dto/requests"
)

// MailerService enqueues outbound mail on the message broker; delivery is
// asynchronous and best-effort.
type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
	ValidateEmail(email string) bool
}
