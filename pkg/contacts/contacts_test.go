package contacts

import (
	"testing"
)

func TestContacts(t *testing.T) {
	e := RegexExtractor{}

	tests := []struct {
		name      string
		text      string
		wantEmail string
		wantPhone bool
	}{
		{
			name:      "email and phone",
			text:      "Reach us at info@example.com or call +91 124 456 7890 today",
			wantEmail: "info@example.com",
			wantPhone: true,
		},
		{
			name:      "email only",
			text:      "Write to sales@example.co.in for quotes",
			wantEmail: "sales@example.co.in",
		},
		{
			name: "nothing",
			text: "Welcome to our site",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.Contacts(tt.text)
			if c.Email != tt.wantEmail {
				t.Errorf("Email = %q, want %q", c.Email, tt.wantEmail)
			}
			if (c.Phone != "") != tt.wantPhone {
				t.Errorf("Phone = %q, wantPhone %v", c.Phone, tt.wantPhone)
			}
			if tt.wantEmail == "" && !tt.wantPhone && !c.Empty() {
				t.Errorf("expected empty contact, got %+v", c)
			}
		})
	}
}

func TestFooterContactsWiderPhonePattern(t *testing.T) {
	e := RegexExtractor{}

	// Slash-separated numbers only match the footer pattern.
	text := "Call +91 124 4567890/4567891"
	if c := e.Contacts("short 12345"); c.Phone != "" {
		t.Errorf("header pattern matched a too-short number: %q", c.Phone)
	}
	c := e.FooterContacts(text)
	if c.Phone == "" {
		t.Error("footer pattern did not match slash-separated number")
	}
}

func TestAddress(t *testing.T) {
	e := RegexExtractor{}

	tests := []struct {
		name        string
		text        string
		wantStreet  bool
		wantCity    string
		wantState   string
		wantCountry string
	}{
		{
			name:        "full address",
			text:        "Plot No. 45, Industrial Area, Sector-18, Gurugram, Haryana, India 122015",
			wantStreet:  true,
			wantCity:    "Gurugram",
			wantState:   "Haryana",
			wantCountry: "India",
		},
		{
			name:      "sector only",
			text:      "Visit our office in Sector-21 near the metro",
			wantStreet: true,
		},
		{
			name: "no address facts",
			text: "All rights reserved.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := e.Address(tt.text)
			if (a.Street != "") != tt.wantStreet {
				t.Errorf("Street = %q, wantStreet %v", a.Street, tt.wantStreet)
			}
			if a.City != tt.wantCity {
				t.Errorf("City = %q, want %q", a.City, tt.wantCity)
			}
			if a.State != tt.wantState {
				t.Errorf("State = %q, want %q", a.State, tt.wantState)
			}
			if a.Country != tt.wantCountry {
				t.Errorf("Country = %q, want %q", a.Country, tt.wantCountry)
			}
			if tt.name == "no address facts" && !a.Empty() {
				t.Errorf("expected empty address, got %+v", a)
			}
		})
	}
}
