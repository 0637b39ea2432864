// services/senders.go
package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"celebratemate-backend/config"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
	tele "gopkg.in/telebot.v3"
)

// ErrSkipped marks a send that was skipped because the channel provider is
// not configured. Skips are neither sent nor failed in the dispatch tally.
var ErrSkipped = errors.New("channel not configured, skipping")

// Every sender either delivers and returns nil or returns an error. The
// dispatch loop is the only place errors are absorbed and counted.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

type SMSSender interface {
	Send(to, body string) error
}

type ChatSender interface {
	Send(chatID, text string) error
}

// SMTPEmailSender delivers email over SMTP.
type SMTPEmailSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPEmailSender() *SMTPEmailSender {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}
	email := os.Getenv("SMTP_EMAIL")
	return &SMTPEmailSender{
		dialer: gomail.NewDialer(os.Getenv("SMTP_HOST"), port, email, os.Getenv("SMTP_PASSWORD")),
		from:   email,
	}
}

func (s *SMTPEmailSender) Send(to, subject, htmlBody string) error {
	if s.from == "" {
		config.Logger.Warnw("SMTP credentials not configured, skipping email", "to", to)
		return ErrSkipped
	}

	msg := gomail.NewMessage()
	msg.SetHeader("Message-ID", generateMessageID())
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", fmt.Sprintf("%q <%s>", "CelebrateMate", s.from))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

func generateMessageID() string {
	return fmt.Sprintf("<%s@celebratemate>", uuid.New().String())
}

// TwilioSMSSender delivers SMS through the Twilio REST API.
type TwilioSMSSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSMSSender() *TwilioSMSSender {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioSMSSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func (s *TwilioSMSSender) Send(to, body string) error {
	if s.from == "" {
		config.Logger.Warnw("Twilio credentials not configured, skipping SMS", "to", to)
		return ErrSkipped
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send SMS to %s: %w", to, err)
	}
	if resp.Sid != nil {
		config.Logger.Infow("SMS sent", "to", to, "sid", *resp.Sid)
	} else {
		config.Logger.Infow("SMS sent, no SID returned", "to", to)
	}
	return nil
}

// TelegramChatSender delivers chat messages through a Telegram bot. A nil
// bot (missing token) makes every send a soft skip, not an error.
type TelegramChatSender struct {
	bot *tele.Bot
}

func NewTelegramChatSender() *TelegramChatSender {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		config.Logger.Warn("Telegram bot token not configured, chat channel disabled")
		return &TelegramChatSender{}
	}

	bot, err := tele.NewBot(tele.Settings{Token: token})
	if err != nil {
		config.Logger.Errorw("Failed to initialize Telegram bot, chat channel disabled", "error", err)
		return &TelegramChatSender{}
	}
	return &TelegramChatSender{bot: bot}
}

func (s *TelegramChatSender) Send(chatID, text string) error {
	if s.bot == nil {
		config.Logger.Warnw("Telegram bot not configured, skipping chat message", "chatId", chatID)
		return ErrSkipped
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", chatID, err)
	}

	if _, err := s.bot.Send(&tele.Chat{ID: id}, text, tele.ModeHTML); err != nil {
		return fmt.Errorf("send telegram message to %s: %w", chatID, err)
	}
	return nil
}
