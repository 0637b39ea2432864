package services

import (
	"testing"
	"time"

	"celebratemate-backend/models"

	"github.com/google/uuid"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testUser(lead int) models.User {
	return models.User{
		ID:               uuid.New(),
		Name:             "Asha",
		Email:            "asha@example.com",
		Phone:            "+919876543210",
		ReminderLead:     lead,
		ReminderChannels: models.ChannelSet{models.ChannelEmail},
	}
}

func usersByID(users ...models.User) map[uuid.UUID]models.User {
	m := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return m
}

func TestDueContactCandidatesLeadCriterion(t *testing.T) {
	today := day(2024, time.June, 10)
	birthday := day(1990, time.June, 13) // 3 days out

	tests := []struct {
		name    string
		lead    int
		wantDue bool
	}{
		{"exactly lead days away", 3, true},
		{"one day early", 2, false},
		{"one day late", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := testUser(tt.lead)
			contacts := []models.Contact{{
				ID:       uuid.New(),
				UserID:   u.ID,
				Name:     "Ravi",
				Birthday: &birthday,
			}}

			got := dueContactCandidates(contacts, usersByID(u), today)
			if due := len(got) == 1; due != tt.wantDue {
				t.Fatalf("got %d candidates, wantDue=%v", len(got), tt.wantDue)
			}
		})
	}
}

func TestDueContactCandidateFields(t *testing.T) {
	today := day(2024, time.June, 10)
	birthday := day(1990, time.June, 13)
	anniversary := day(2015, time.June, 13)

	u := testUser(3)
	contacts := []models.Contact{{
		ID:          uuid.New(),
		UserID:      u.ID,
		Name:        "Ravi",
		Email:       "ravi@example.com",
		Birthday:    &birthday,
		Anniversary: &anniversary,
	}}

	got := dueContactCandidates(contacts, usersByID(u), today)
	if len(got) != 2 {
		t.Fatalf("expected birthday and anniversary candidates, got %d", len(got))
	}

	b := got[0]
	if b.Kind != models.OccasionBirthday {
		t.Fatalf("first candidate kind = %s", b.Kind)
	}
	if b.Title != "Ravi's Birthday" {
		t.Fatalf("title = %q", b.Title)
	}
	if !b.Date.Equal(day(2024, time.June, 13)) {
		t.Fatalf("occurrence date = %v", b.Date)
	}
	if b.ContactEmail != "ravi@example.com" || b.UserEmail != "asha@example.com" {
		t.Fatalf("address join wrong: %+v", b)
	}
	if got[1].Title != "Ravi's Anniversary" {
		t.Fatalf("second candidate title = %q", got[1].Title)
	}
}

func TestDueEventCandidates(t *testing.T) {
	today := day(2024, time.June, 10)
	u := testUser(3)

	events := []models.Event{
		{ID: uuid.New(), UserID: u.ID, Title: "Housewarming", Date: day(2024, time.June, 13)},
		{ID: uuid.New(), UserID: u.ID, Title: "Too soon", Date: day(2024, time.June, 11)},
		{ID: uuid.New(), UserID: u.ID, Title: "Last year", Date: day(2023, time.June, 13)},
		{ID: uuid.New(), UserID: uuid.New(), Title: "Orphaned", Date: day(2024, time.June, 13)},
	}

	got := dueEventCandidates(events, usersByID(u), today)
	if len(got) != 1 {
		t.Fatalf("expected exactly one due event, got %d", len(got))
	}
	if got[0].Title != "Housewarming" || got[0].Kind != models.OccasionEvent {
		t.Fatalf("unexpected candidate: %+v", got[0])
	}
}

func TestSameDayCandidates(t *testing.T) {
	today := day(2024, time.June, 13)
	birthday := day(1990, time.June, 13)

	enabled := testUser(1)
	enabled.AutoSendEnabled = true
	enabled.AutoMessageTemplate = "Happy Birthday {name}!"
	enabled.AutoChannels = models.ChannelSet{models.ChannelSMS}

	disabled := testUser(1)

	contacts := []models.Contact{
		{ID: uuid.New(), UserID: enabled.ID, Name: "Ravi", Phone: "9876543210", Birthday: &birthday},
		{ID: uuid.New(), UserID: disabled.ID, Name: "Meera", Birthday: &birthday},
	}

	got := sameDayCandidates(contacts, usersByID(enabled, disabled), today)
	if len(got) != 1 {
		t.Fatalf("expected one candidate (auto-send disabled user excluded), got %d", len(got))
	}
	if got[0].ContactName != "Ravi" || got[0].Kind != models.OccasionBirthday {
		t.Fatalf("unexpected candidate: %+v", got[0])
	}
	if got[0].FromName != "Asha" {
		t.Fatalf("FromName = %q", got[0].FromName)
	}
}

func TestSameDayExcludesOtherDays(t *testing.T) {
	birthday := day(1990, time.June, 13)
	u := testUser(1)
	u.AutoSendEnabled = true

	contacts := []models.Contact{
		{ID: uuid.New(), UserID: u.ID, Name: "Ravi", Birthday: &birthday},
	}

	if got := sameDayCandidates(contacts, usersByID(u), day(2024, time.June, 12)); len(got) != 0 {
		t.Fatalf("expected no candidates the day before, got %d", len(got))
	}
}

func TestEmailRecipientFallsBackToUser(t *testing.T) {
	c := ReminderCandidate{ContactEmail: "", UserEmail: "asha@example.com"}
	if got := c.EmailRecipient(); got != "asha@example.com" {
		t.Fatalf("EmailRecipient = %q", got)
	}
	c.ContactEmail = "ravi@example.com"
	if got := c.EmailRecipient(); got != "ravi@example.com" {
		t.Fatalf("EmailRecipient = %q", got)
	}
}
