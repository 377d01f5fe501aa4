package notification

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
)

// TelegramNotifier pushes registration activity to the organizers' chat.
// With an empty token it stays disabled and every call is a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" {
		slog.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) NotifyRegistrationCreated(h *models.Hackathon, reg *models.Registration) {
	who := reg.ParticipantID
	if reg.ParticipationType == models.ParticipationTeam {
		who = fmt.Sprintf("team %q (%d members)", reg.TeamName, reg.TeamSize())
	}
	n.send(fmt.Sprintf("New registration for %s: %s (%d/%d)",
		h.Title, who, h.RegistrationCount, h.MaxParticipants))
}

func (n *TelegramNotifier) NotifyRegistrationCancelled(h *models.Hackathon, reg *models.Registration) {
	n.send(fmt.Sprintf("Registration %s cancelled for %s (%d/%d)",
		reg.Code, h.Title, h.RegistrationCount, h.MaxParticipants))
}

func (n *TelegramNotifier) send(text string) {
	if n.bot == nil || n.chatID == 0 {
		slog.Debug("notification skipped (bot disabled)", "text", text)
		return
	}

	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		slog.Error("failed to send telegram notification", "error", err)
	}
}
