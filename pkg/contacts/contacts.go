// Package contacts extracts literal contact facts (emails, phone numbers,
// postal address fragments) from plain text. The pattern vocabulary lives
// behind the Extractor interface so it can evolve without touching the
// chrome extraction logic.
package contacts

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/cms-site-parser/models"
)

// Extractor pulls structured facts out of free-form text.
type Extractor interface {
	// Contacts returns at most one email and one phone from header-style text.
	Contacts(text string) models.Contact
	// FooterContacts is Contacts with the wider phone pattern used on
	// footer text, where numbers tend to carry separators and extensions.
	FooterContacts(text string) models.Contact
	// Address assembles a best-effort postal address from footer text.
	Address(text string) models.Address
}

var (
	emailPattern       = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}`)
	phonePattern       = regexp.MustCompile(`\+?\d[\d\s\-()]{7,15}`)
	footerPhonePattern = regexp.MustCompile(`\+?\d[\d\s\-/()]{10,20}`)

	streetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Plot\s+No\.?\s*[\w\-,\s]+`),
		regexp.MustCompile(`Sector[\-\s]\d+`),
		regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*\d{6}`),
	}
)

// RegexExtractor is the default pattern-based Extractor.
type RegexExtractor struct{}

func (RegexExtractor) Contacts(text string) models.Contact {
	return extractContact(text, phonePattern)
}

func (RegexExtractor) FooterContacts(text string) models.Contact {
	return extractContact(text, footerPhonePattern)
}

func extractContact(text string, phone *regexp.Regexp) models.Contact {
	var c models.Contact
	if m := emailPattern.FindString(text); m != "" {
		c.Email = m
	}
	if m := phone.FindString(text); m != "" {
		c.Phone = strings.TrimSpace(m)
	}
	return c
}

func (RegexExtractor) Address(text string) models.Address {
	var a models.Address
	for _, pattern := range streetPatterns {
		m := pattern.FindString(text)
		if m == "" {
			continue
		}
		switch {
		case strings.Contains(m, "Plot"):
			a.Street = strings.TrimSpace(m)
		case strings.Contains(m, "Sector"):
			a.Street = strings.TrimSpace(a.Street + " " + m)
		}
	}

	// Known locality literals; matched as presence checks, not patterns.
	if strings.Contains(text, "Gurugram") {
		a.City = "Gurugram"
	}
	if strings.Contains(text, "Haryana") {
		a.State = "Haryana"
	}
	if strings.Contains(text, "India") {
		a.Country = "India"
	}
	return a
}
