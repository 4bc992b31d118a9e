package analyzer

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/oddscout/oddscout/internal/pkg/models"
)

// Min interval between any two Telegram messages to the same chat to avoid
// 429 Too Many Requests (~30/min limit).
const telegramSendInterval = 2 * time.Second

// TelegramNotifier pushes positive-EV bets to a chat through a buffered
// queue so a burst of alerts never blocks an analysis pass.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64

	queue chan string
	done  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once
}

// NewTelegramNotifier creates a notifier, or returns nil when the bot
// cannot be reached (notifications are optional).
func NewTelegramNotifier(token string, chatID int64) *TelegramNotifier {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		slog.Error("Failed to create telegram bot", "error", err)
		return nil
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		slog.Error("Failed to get telegram bot info", "error", err)
		return nil
	}

	n := &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		queue:  make(chan string, 100),
		done:   make(chan struct{}),
	}
	n.wg.Add(1)
	go n.sender()
	return n
}

// NotifyBet enqueues a bet alert. Drops the message when the queue is full
// rather than blocking the caller.
func (n *TelegramNotifier) NotifyBet(matchName string, bet models.MatchedBet) {
	text := formatBetMessage(matchName, bet)
	select {
	case n.queue <- text:
	default:
		slog.Warn("Telegram queue full, dropping message", "match", matchName)
	}
}

func (n *TelegramNotifier) sender() {
	defer n.wg.Done()
	for {
		select {
		case <-n.done:
			return
		case text := <-n.queue:
			msg := tgbotapi.NewMessage(n.chatID, text)
			if _, err := n.bot.Send(msg); err != nil {
				slog.Error("Failed to send telegram message", "error", err)
			}
			time.Sleep(telegramSendInterval)
		}
	}
}

// Close stops the sender goroutine. Queued but unsent messages are dropped.
func (n *TelegramNotifier) Close() {
	n.once.Do(func() {
		close(n.done)
		n.wg.Wait()
	})
}

func formatBetMessage(matchName string, bet models.MatchedBet) string {
	line := ""
	if bet.Market != models.Moneyline {
		line = fmt.Sprintf(" %+.1f", bet.Line)
		if bet.Market == models.Total {
			line = fmt.Sprintf(" %.1f", bet.Line)
		}
	}
	return fmt.Sprintf("VALUE BET\n%s\n%s: %s%s\nBetBCK %+d vs NVP %+d\nEV %+.2f%%",
		matchName, bet.Market, bet.Selection, line,
		bet.BetbckAmerican, bet.NVPAmerican, bet.EV*100)
}
