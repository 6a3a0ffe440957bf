// internal/app/status_poller.go
package app

import (
	"context"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// MessageSender is the part of Notifier the poller depends on.
type MessageSender interface {
	SendMessage(text string) DeliveryResult
}

// StatusPoller runs poll cycles against the homework API. It owns the cursor
// and the last-message cache; it is not safe for concurrent use.
type StatusPoller struct {
	api         homework.API
	notifier    MessageSender
	formatter   *StatusFormatter
	logger      logrus.FieldLogger
	cursor      int64
	lastMessage string
}

func NewStatusPoller(
	api homework.API,
	notifier MessageSender,
	formatter *StatusFormatter,
	logger logrus.FieldLogger,
	startCursor int64, // usually time.Now().Unix()
) *StatusPoller {
	return &StatusPoller{
		api:       api,
		notifier:  notifier,
		formatter: formatter,
		logger:    logger.WithField("component", "status_poller"),
		cursor:    startCursor,
	}
}

// Cursor returns the timestamp the next cycle will query from.
func (p *StatusPoller) Cursor() int64 { return p.cursor }

// PollOnce runs one cycle. Recoverable failures are reported to the chat (once per
// distinct message) and logged, and PollOnce returns nil. Cancellation and
// failures outside that set are returned.
func (p *StatusPoller) PollOnce(ctx context.Context) error {
	err := p.poll(ctx)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return ctxErr
	}
	if !homework.IsRecoverable(err) {
		return fmt.Errorf("poll cycle: %w", err)
	}

	message := "Attention! " + err.Error()
	if message != p.lastMessage {
		p.lastMessage = message
		p.notifier.SendMessage(message)
	}
	p.logger.WithField("cursor", p.cursor).Error(message)
	return nil
}

func (p *StatusPoller) poll(ctx context.Context) error {
	response, err := p.api.FetchUpdates(ctx, p.cursor)
	if err != nil {
		return err
	}
	record, err := homework.ExtractLatest(response)
	if err != nil {
		return err
	}
	p.logger.Debug("Homework API response is valid")

	message, err := p.formatter.FormatStatusMessage(record)
	if err != nil {
		return err
	}
	p.lastMessage = message
	p.notifier.SendMessage(message)

	if next, ok := homework.CurrentDate(response); ok {
		p.cursor = next
	} else {
		p.logger.WithField("cursor", p.cursor).Warn("Response has no usable current_date, keeping cursor")
	}
	return nil
}
