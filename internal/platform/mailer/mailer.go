// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

/*
Package mailer delivers confirmation codes to users over email.

The signup flow treats email as a best-effort collaborator: a persisted code
whose email fails to send is still redeemable, so implementations here report
errors but callers are free to swallow them.

Two implementations are provided:

  - SMTP: production delivery via a relay host.
  - Log: development fallback that prints the code to the structured log.
*/
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
)

// SMTP sends confirmation codes through an SMTP relay.
type SMTP struct {
	addr string // host:port of the relay
	from string
}

// NewSMTP constructs an [SMTP] mailer for the given relay address and sender.
func NewSMTP(addr, from string) *SMTP {
	return &SMTP{addr: addr, from: from}
}

// SendConfirmationCode emails a signup confirmation code to the address.
func (m *SMTP) SendConfirmationCode(ctx context.Context, email, code string) error {
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Your Librate confirmation code\r\n\r\n"+
			"Your confirmation code is: %s\r\n",
		m.from, email, code,
	)

	if err := smtp.SendMail(m.addr, nil, m.from, []string{email}, []byte(message)); err != nil {
		return fmt.Errorf("mailer: smtp send failed: %w", err)
	}
	return nil
}

// Log is a development mailer that writes the code to the log instead of
// sending anything. Never wire it in production.
type Log struct {
	logger *slog.Logger
}

// NewLog constructs a [Log] mailer.
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// SendConfirmationCode logs the code that would have been emailed.
func (m *Log) SendConfirmationCode(ctx context.Context, email, code string) error {
	m.logger.InfoContext(ctx, "confirmation_code_issued",
		slog.String("email", email),
		slog.String("code", code),
	)
	return nil
}
