// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/taibuivan/traders/internal/platform/apperr"
	"github.com/taibuivan/traders/internal/platform/ctxutil"
	"github.com/taibuivan/traders/internal/platform/notify"
	"github.com/taibuivan/traders/internal/platform/validate"
	"github.com/taibuivan/traders/pkg/uuid"
)

const (
	receiptTitle   = "Message Launched!"
	receiptMessage = "Your message is being routed to the right team member. Expect a response within 2 hours."
)

// Service handles contact submissions.
type Service struct {
	notifier  notify.Notifier
	delay     time.Duration
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs a contact [Service] that acknowledges after delay.
func NewService(notifier notify.Notifier, delay time.Duration, logger *slog.Logger) *Service {
	return &Service{
		notifier:  notifier,
		delay:     delay,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
		now:       time.Now,
	}
}

/*
Submit validates a submission, waits the acknowledgement delay and fires
one confirmation notification.

Free text is stripped of markup before validation, so a message made only
of tags counts as empty. A cancelled context aborts the wait with a
REQUEST_TIMEOUT error and no notification is sent. A failing notifier is
logged but does not fail the submission.
*/
func (service *Service) Submit(ctx context.Context, submission Submission) (*Receipt, error) {
	submission = service.sanitize(submission)

	if err := validateSubmission(submission); err != nil {
		return nil, err
	}

	if err := service.wait(ctx); err != nil {
		return nil, apperr.RequestTimeout(err)
	}

	receipt := &Receipt{
		Reference:      uuid.New(),
		Title:          receiptTitle,
		Message:        receiptMessage,
		AcknowledgedAt: service.now().UTC(),
	}

	event := notify.Event{
		Kind:      notify.KindContactReceived,
		Reference: receipt.Reference,
		Title:     receipt.Title,
		Message:   receipt.Message,
		Recipient: submission.Email,
		Attributes: map[string]string{
			"name": strings.TrimSpace(submission.FirstName + " " + submission.LastName),
		},
		OccurredAt: receipt.AcknowledgedAt,
	}

	if err := service.notifier.Notify(ctx, event); err != nil {
		service.logger.WarnContext(ctx, "contact_notification_failed",
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.String("reference", receipt.Reference),
			slog.Any("error", err),
		)
	}

	service.logger.InfoContext(ctx, "contact_submission_acknowledged",
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.String("reference", receipt.Reference),
	)

	return receipt, nil
}

func (service *Service) wait(ctx context.Context) error {
	if service.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(service.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (service *Service) sanitize(submission Submission) Submission {
	clean := func(s string) string {
		return strings.TrimSpace(html.UnescapeString(service.sanitizer.Sanitize(s)))
	}

	return Submission{
		FirstName: clean(submission.FirstName),
		LastName:  clean(submission.LastName),
		Email:     strings.TrimSpace(submission.Email),
		Phone:     strings.TrimSpace(submission.Phone),
		Message:   clean(submission.Message),
	}
}

func validateSubmission(submission Submission) error {
	v := &validate.Validator{}

	v.Required("first_name", submission.FirstName).MaxLen("first_name", submission.FirstName, MaxNameLength)
	v.Required("last_name", submission.LastName).MaxLen("last_name", submission.LastName, MaxNameLength)

	v.Required("email", submission.Email).MaxLen("email", submission.Email, MaxEmailLength)
	if submission.Email != "" {
		v.Email("email", submission.Email)
	}

	v.Phone("phone", submission.Phone)

	v.Required("message", submission.Message)
	if submission.Message != "" {
		v.MinLen("message", submission.Message, MinMessageLength).MaxLen("message", submission.Message, MaxMessageLength)
	}

	return v.Err()
}
