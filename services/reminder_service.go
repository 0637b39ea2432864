// services/reminder_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"celebratemate-backend/config"
	"celebratemate-backend/models"
	"celebratemate-backend/utils"

	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	jobReminder    = "reminder"
	jobAutoMessage = "auto-message"
)

// DispatchSummary is the {sent, failed} tally of one dispatch run. Skipped
// channels (unconfigured providers, already-notified occasions) count in
// neither bucket.
type DispatchSummary struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// ReminderService runs the two dispatch jobs: lead-time reminders to users
// and same-day auto-messages to contacts.
type ReminderService struct {
	store CandidateStore
	email EmailSender
	sms   SMSSender
	chat  ChatSender

	// Paces the reminder loop so rate-limited email/SMS providers see at
	// most one candidate per second.
	pacer *rate.Limiter

	// Calendar days are resolved in the scheduler's time zone, not the
	// server's: a midnight run in another zone must not pick yesterday.
	loc *time.Location
	now func() time.Time
}

func NewReminderService(db *gorm.DB, loc *time.Location) *ReminderService {
	return &ReminderService{
		store: NewGormCandidateStore(db),
		email: NewSMTPEmailSender(),
		sms:   NewTwilioSMSSender(),
		chat:  NewTelegramChatSender(),
		pacer: rate.NewLimiter(rate.Every(time.Second), 1),
		loc:   loc,
		now:   time.Now,
	}
}

func (s *ReminderService) today() time.Time {
	return utils.BeginningOfDay(s.now().In(s.loc))
}

// DispatchReminders runs the reminder job once. A candidate fetch failure
// aborts the run with a zero summary; per-channel failures are absorbed
// into the tally.
func (s *ReminderService) DispatchReminders() (DispatchSummary, error) {
	today := s.today()

	candidates, err := s.store.DueReminders(today)
	if err != nil {
		config.Logger.Errorw("Reminder run aborted, could not fetch candidates", "error", err)
		return DispatchSummary{}, err
	}

	var summary DispatchSummary
	for _, cand := range candidates {
		if err := s.pacer.Wait(context.Background()); err != nil {
			break
		}
		s.dispatchReminder(cand, &summary)
	}

	config.Logger.Infow("Reminder run finished",
		"candidates", len(candidates), "sent", summary.Sent, "failed", summary.Failed)
	return summary, nil
}

func (s *ReminderService) dispatchReminder(cand ReminderCandidate, summary *DispatchSummary) {
	done, err := s.store.AlreadyDispatched(jobReminder, cand.Kind, cand.SourceID, cand.Date.Year())
	if err != nil {
		config.Logger.Errorw("Dispatch log lookup failed", "title", cand.Title, "error", err)
	} else if done {
		config.Logger.Infow("Occasion already notified this year, skipping",
			"title", cand.Title, "kind", cand.Kind)
		return
	}

	subject := fmt.Sprintf("📅 Reminder: %s is in %d day(s)", cand.Title, cand.Lead)
	htmlBody := renderReminderEmail(cand)
	plainBody := renderReminderText(cand)

	if cand.Channels.Has(models.ChannelEmail) {
		if to := cand.EmailRecipient(); to != "" {
			s.attempt(jobReminder, cand.logEntry(models.ChannelEmail, to, plainBody), summary, func() error {
				return s.email.Send(to, subject, htmlBody)
			})
		}
	}

	if cand.Channels.Has(models.ChannelSMS) && cand.UserPhone != "" {
		to, err := utils.NormalizePhone(cand.UserPhone)
		if err != nil {
			config.Logger.Errorw("Invalid phone number, not sending SMS",
				"title", cand.Title, "phone", cand.UserPhone, "error", err)
			summary.Failed++
			s.record(cand.logEntry(models.ChannelSMS, cand.UserPhone, plainBody), "failed", err)
		} else {
			s.attempt(jobReminder, cand.logEntry(models.ChannelSMS, to, plainBody), summary, func() error {
				return s.sms.Send(to, plainBody)
			})
		}
	}

	if cand.Channels.Has(models.ChannelChat) && cand.UserChatID != "" {
		s.attempt(jobReminder, cand.logEntry(models.ChannelChat, cand.UserChatID, plainBody), summary, func() error {
			return s.chat.Send(cand.UserChatID, plainBody)
		})
	}
}

// DispatchAutoMessages runs the auto-message job once: same-day greetings
// delivered to the contact itself over the user's auto channels. No pacing
// here, the candidate sets are far smaller than reminder runs.
func (s *ReminderService) DispatchAutoMessages() (DispatchSummary, error) {
	today := s.today()

	candidates, err := s.store.TodaysOccasions(today)
	if err != nil {
		config.Logger.Errorw("Auto-message run aborted, could not fetch candidates", "error", err)
		return DispatchSummary{}, err
	}

	var summary DispatchSummary
	for _, cand := range candidates {
		s.dispatchAutoMessage(cand, &summary)
	}

	config.Logger.Infow("Auto-message run finished",
		"candidates", len(candidates), "sent", summary.Sent, "failed", summary.Failed)
	return summary, nil
}

func (s *ReminderService) dispatchAutoMessage(cand AutoMessageCandidate, summary *DispatchSummary) {
	done, err := s.store.AlreadyDispatched(jobAutoMessage, cand.Kind, cand.SourceID, cand.Date.Year())
	if err != nil {
		config.Logger.Errorw("Dispatch log lookup failed", "contact", cand.ContactName, "error", err)
	} else if done {
		config.Logger.Infow("Contact already greeted this year, skipping",
			"contact", cand.ContactName, "kind", cand.Kind)
		return
	}

	message := RenderAutoMessage(cand.Template, cand.ContactName, cand.Kind)
	subject := fmt.Sprintf("🎉 A message from %s", cand.FromName)

	// Auto-messages go out over email and SMS only.
	if cand.Channels.Has(models.ChannelEmail) && cand.ContactEmail != "" {
		entry := cand.logEntry(models.ChannelEmail, cand.ContactEmail, message)
		s.attempt(jobAutoMessage, entry, summary, func() error {
			return s.email.Send(cand.ContactEmail, subject, renderAutoMessageEmail(message, cand.FromName))
		})
	}

	if cand.Channels.Has(models.ChannelSMS) && cand.ContactPhone != "" {
		to, err := utils.NormalizePhone(cand.ContactPhone)
		if err != nil {
			config.Logger.Errorw("Invalid contact phone, not sending SMS",
				"contact", cand.ContactName, "phone", cand.ContactPhone, "error", err)
			summary.Failed++
			s.record(cand.logEntry(models.ChannelSMS, cand.ContactPhone, message), "failed", err)
		} else {
			s.attempt(jobAutoMessage, cand.logEntry(models.ChannelSMS, to, message), summary, func() error {
				return s.sms.Send(to, message)
			})
		}
	}
}

// attempt invokes one channel send, absorbs the outcome into the summary
// and writes the dispatch log row. ErrSkipped counts in neither bucket.
func (s *ReminderService) attempt(job string, entry *models.DispatchLog, summary *DispatchSummary, send func() error) {
	err := send()
	switch {
	case err == nil:
		summary.Sent++
		config.Logger.Infow("Notification sent",
			"job", job, "channel", entry.Channel, "to", entry.Recipient)
		s.record(entry, "sent", nil)
	case errors.Is(err, ErrSkipped):
		// Unconfigured provider: neither sent nor failed, already logged.
	default:
		summary.Failed++
		config.Logger.Errorw("Notification failed",
			"job", job, "channel", entry.Channel, "to", entry.Recipient, "error", err)
		s.record(entry, "failed", err)
	}
}

func (s *ReminderService) record(entry *models.DispatchLog, status string, sendErr error) {
	entry.Status = status
	entry.SentAt = s.now()
	if sendErr != nil {
		entry.ErrorMessage = sendErr.Error()
	}
	if err := s.store.RecordDispatch(entry); err != nil {
		config.Logger.Errorw("Failed to write dispatch log", "error", err)
	}
}

func (c ReminderCandidate) logEntry(channel models.Channel, recipient, message string) *models.DispatchLog {
	return &models.DispatchLog{
		UserID:       c.UserID,
		Kind:         c.Kind,
		SourceID:     c.SourceID,
		OccasionYear: c.Date.Year(),
		Job:          jobReminder,
		Channel:      string(channel),
		Recipient:    recipient,
		Message:      message,
	}
}

func (c AutoMessageCandidate) logEntry(channel models.Channel, recipient, message string) *models.DispatchLog {
	return &models.DispatchLog{
		UserID:       c.UserID,
		Kind:         c.Kind,
		SourceID:     c.SourceID,
		OccasionYear: c.Date.Year(),
		Job:          jobAutoMessage,
		Channel:      string(channel),
		Recipient:    recipient,
		Message:      message,
	}
}

func renderReminderEmail(cand ReminderCandidate) string {
	return fmt.Sprintf(`
		<h2>🎉 Upcoming Event Reminder</h2>
		<p><strong>Title:</strong> %s</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Description:</strong> %s</p>
		<p>This is a friendly reminder %d day(s) before the event.</p>
	`, cand.Title, cand.Date.Format("02 January 2006"), cand.Description, cand.Lead)
}

func renderReminderText(cand ReminderCandidate) string {
	return fmt.Sprintf("Reminder: %s on %s. %s. This is a friendly reminder %d day(s) before the event.",
		cand.Title, cand.Date.Format("02 January 2006"), cand.Description, cand.Lead)
}

// RenderAutoMessage substitutes the contact's name into the user's
// template. A birthday-flavored template applied to an anniversary gets a
// generic anniversary greeting instead, since the default template text is
// birthday-specific.
func RenderAutoMessage(template, name, kind string) string {
	if kind == models.OccasionAnniversary && strings.Contains(strings.ToLower(template), "birthday") {
		template = "Happy Anniversary {name}!"
	}
	return strings.ReplaceAll(template, "{name}", name)
}

func renderAutoMessageEmail(message, fromName string) string {
	return fmt.Sprintf(`
		<h2>🎉 %s</h2>
		<p>Sent with love via CelebrateMate on behalf of %s.</p>
	`, message, fromName)
}
