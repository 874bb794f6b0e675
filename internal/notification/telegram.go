package notification

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
)

// TelegramSink posts a short event summary to an admin chat.
type TelegramSink struct {
	bot    *bot.Bot
	chatID int64
}

func NewTelegramSink(token string, chatID int64) (*TelegramSink, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSink{bot: b, chatID: chatID}, nil
}

func (s *TelegramSink) Send(ctx context.Context, event Event) error {
	var text string
	switch event.Type {
	case EventBookingConfirmed:
		text = fmt.Sprintf("📅 New booking: %s on %s at %s (%s)",
			event.ServiceName, event.Day, event.StartAt, event.UserEmail)
	case EventBookingCancelled:
		text = fmt.Sprintf("❌ Booking cancelled: %s on %s at %s (%s)",
			event.ServiceName, event.Day, event.StartAt, event.UserEmail)
	case EventUserRegistered:
		text = fmt.Sprintf("👤 New user registered: %s", event.UserEmail)
	default:
		text = fmt.Sprintf("Event %s (%s)", event.Type, event.UserEmail)
	}

	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: s.chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
