package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare 10 digits gets country code", "9876543210", "+919876543210", false},
		{"already international passes through", "+14155551234", "+14155551234", false},
		{"plus prefix accepted as-is", "+1-415-555-1234", "+1-415-555-1234", false},
		{"surrounding whitespace trimmed", "  9876543210 ", "+919876543210", false},
		{"too short rejected", "12345", "", true},
		{"empty rejected", "", "", true},
		{"letters rejected", "98765abcde", "", true},
		{"eleven digits without plus rejected", "19876543210", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizePhone(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePhone(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"international", "+919876543210", true},
		{"formatted international", "+1 (415) 555-1234", true},
		{"bare digits", "9876543210", true},
		{"too short", "12345", false},
		{"leading zero", "+0123456789", false},
		{"letters", "98765abcde", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePhone(tt.input); got != tt.want {
				t.Fatalf("ValidatePhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
