// internal/app/notifier.go
package app

import (
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// DeliveryResult reports the outcome of one send attempt.
type DeliveryResult struct {
	Err error
}

func (r DeliveryResult) Delivered() bool { return r.Err == nil }

// Notifier delivers text to the configured chat. Delivery failures are logged
// and returned as a result value, never as an error.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         string
	logger         logrus.FieldLogger
}

func NewNotifier(tc domainTelegram.Client, chatID string, logger logrus.FieldLogger) *Notifier {
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger.WithField("component", "notifier"),
	}
}

// SendMessage sends text to the configured chat.
func (n *Notifier) SendMessage(text string) DeliveryResult {
	n.logger.Debug("Sending message to Telegram chat")
	if err := n.telegramClient.SendMessage(n.chatID, text, nil); err != nil {
		n.logger.WithError(err).Error("Failed to send message to Telegram chat")
		return DeliveryResult{Err: err}
	}
	n.logger.Debug("Message sent to Telegram chat")
	return DeliveryResult{}
}
