// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/traders/internal/contact"
	"github.com/taibuivan/traders/internal/platform/apperr"
	"github.com/taibuivan/traders/internal/platform/notify"
	pkguuid "github.com/taibuivan/traders/pkg/uuid"
)

type recorder struct {
	mu     sync.Mutex
	events []notify.Event
	err    error
}

func (r *recorder) Notify(_ context.Context, event notify.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validSubmission() contact.Submission {
	return contact.Submission{
		FirstName: "Priya",
		LastName:  "Sharma",
		Email:     "priya@retailpartners.in",
		Phone:     "+91 98765 43210",
		Message:   "We need a quote for 40 ergonomic chairs.",
	}
}

func TestSubmit_Acknowledges(t *testing.T) {
	notifier := &recorder{}
	service := contact.NewService(notifier, 20*time.Millisecond, discard())

	start := time.Now()
	receipt, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.True(t, pkguuid.Valid(receipt.Reference))
	assert.NotEmpty(t, receipt.Title)

	require.Len(t, notifier.events, 1)
	event := notifier.events[0]
	assert.Equal(t, notify.KindContactReceived, event.Kind)
	assert.Equal(t, receipt.Reference, event.Reference)
	assert.Equal(t, "priya@retailpartners.in", event.Recipient)
	assert.Equal(t, "Priya Sharma", event.Attributes["name"])
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*contact.Submission)
		field  string
	}{
		{"missing first name", func(s *contact.Submission) { s.FirstName = "  " }, "first_name"},
		{"missing last name", func(s *contact.Submission) { s.LastName = "" }, "last_name"},
		{"bad email", func(s *contact.Submission) { s.Email = "priya-at-retail" }, "email"},
		{"bad phone", func(s *contact.Submission) { s.Phone = "call me" }, "phone"},
		{"markup only message", func(s *contact.Submission) { s.Message = "<script>alert(1)</script>" }, "message"},
		{"short message", func(s *contact.Submission) { s.Message = "Hi" }, "message"},
		{"long name", func(s *contact.Submission) { s.FirstName = strings.Repeat("a", contact.MaxNameLength+1) }, "first_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recorder{}
			service := contact.NewService(notifier, 0, discard())

			submission := validSubmission()
			tt.mutate(&submission)

			_, err := service.Submit(context.Background(), submission)
			require.Error(t, err)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
			assert.Empty(t, notifier.events)
		})
	}
}

func TestSubmit_StripsMarkup(t *testing.T) {
	notifier := &recorder{}
	service := contact.NewService(notifier, 0, discard())

	submission := validSubmission()
	submission.FirstName = "<b>Priya</b>"
	submission.Message = "Need <i>bulk</i> pricing for R&D kits, it's urgent"

	_, err := service.Submit(context.Background(), submission)
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", notifier.events[0].Attributes["name"])
}

func TestSubmit_CancelledDuringDelay(t *testing.T) {
	notifier := &recorder{}
	service := contact.NewService(notifier, time.Minute, discard())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := service.Submit(ctx, validSubmission())

	assert.True(t, apperr.HasCode(err, "REQUEST_TIMEOUT"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, notifier.events)
}

func TestSubmit_NotifierFailureIsNotFatal(t *testing.T) {
	notifier := &recorder{err: errors.New("redis down")}
	service := contact.NewService(notifier, 0, discard())

	receipt, err := service.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.Reference)
}

func TestHandler_Submit(t *testing.T) {
	handler := contact.NewHandler(contact.NewService(&recorder{}, 0, discard())).Routes()

	body := `{"first_name":"Sarah","last_name":"Chen","email":"sarah@globalimports.com","message":"Interested in vendor onboarding."}`
	response := httptest.NewRecorder()
	handler.ServeHTTP(response, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusAccepted, response.Code)
	assert.Contains(t, response.Body.String(), `"reference"`)

	response = httptest.NewRecorder()
	handler.ServeHTTP(response, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"subject":"x"}`)))
	assert.Equal(t, http.StatusBadRequest, response.Code)
}
