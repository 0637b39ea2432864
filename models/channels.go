package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"celebratemate-backend/config"
)

// Channel identifies a delivery channel for reminders and auto-messages.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelChat  Channel = "chat"
)

// ChannelSet is a set of enabled channels, stored as a JSON array.
type ChannelSet []Channel

func (s ChannelSet) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan decodes a stored channel set. Malformed values decode to the empty
// set (fail closed) with a single warning, so a bad row disables delivery
// instead of picking a channel on the caller's behalf.
func (s *ChannelSet) Scan(value interface{}) error {
	if value == nil {
		*s = ChannelSet{}
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		if str, ok := value.(string); ok {
			b = []byte(str)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}

	var decoded ChannelSet
	if err := json.Unmarshal(b, &decoded); err != nil {
		config.Logger.Warnw("Malformed channel set in database, treating as empty",
			"raw", string(b), "error", err)
		*s = ChannelSet{}
		return nil
	}

	*s = decoded.normalize()
	return nil
}

// Has reports whether the channel is enabled.
func (s ChannelSet) Has(c Channel) bool {
	for _, v := range s {
		if v == c {
			return true
		}
	}
	return false
}

func (s ChannelSet) IsEmpty() bool {
	return len(s) == 0
}

// normalize drops unknown channel names and duplicates.
func (s ChannelSet) normalize() ChannelSet {
	out := ChannelSet{}
	for _, v := range s {
		switch v {
		case ChannelEmail, ChannelSMS, ChannelChat:
			if !out.Has(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

// ParseChannelSet validates channel names coming from the API.
func ParseChannelSet(names []string) (ChannelSet, error) {
	out := ChannelSet{}
	for _, n := range names {
		c := Channel(n)
		switch c {
		case ChannelEmail, ChannelSMS, ChannelChat:
			if !out.Has(c) {
				out = append(out, c)
			}
		default:
			return nil, errors.New("unknown channel: " + n)
		}
	}
	return out, nil
}
