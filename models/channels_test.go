package models

import "testing"

func TestChannelSetScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  ChannelSet
	}{
		{"valid set", []byte(`["email","sms"]`), ChannelSet{ChannelEmail, ChannelSMS}},
		{"string value", `["chat"]`, ChannelSet{ChannelChat}},
		{"nil is empty", nil, ChannelSet{}},
		{"malformed fails closed", []byte(`{"email": true}`), ChannelSet{}},
		{"garbage fails closed", []byte(`notjson`), ChannelSet{}},
		{"unknown channels dropped", []byte(`["email","pigeon"]`), ChannelSet{ChannelEmail}},
		{"duplicates dropped", []byte(`["sms","sms"]`), ChannelSet{ChannelSMS}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ChannelSet
			if err := s.Scan(tt.value); err != nil {
				t.Fatalf("Scan returned error: %v", err)
			}
			if len(s) != len(tt.want) {
				t.Fatalf("Scan = %v, want %v", s, tt.want)
			}
			for i := range s {
				if s[i] != tt.want[i] {
					t.Fatalf("Scan = %v, want %v", s, tt.want)
				}
			}
		})
	}
}

func TestChannelSetHas(t *testing.T) {
	s := ChannelSet{ChannelEmail, ChannelChat}
	if !s.Has(ChannelEmail) || !s.Has(ChannelChat) {
		t.Fatal("expected membership for email and chat")
	}
	if s.Has(ChannelSMS) {
		t.Fatal("did not expect membership for sms")
	}
}

func TestParseChannelSet(t *testing.T) {
	s, err := ParseChannelSet([]string{"email", "sms"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Has(ChannelEmail) || !s.Has(ChannelSMS) {
		t.Fatalf("ParseChannelSet = %v", s)
	}

	if _, err := ParseChannelSet([]string{"email", "fax"}); err == nil {
		t.Fatal("expected error for unknown channel")
	}
}
