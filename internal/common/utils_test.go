package common

import (
	"testing"
)

func TestSanitizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "plain URL untouched",
			raw:  "https://example.com",
			want: "https://example.com",
		},
		{
			name: "scheme defaulted",
			raw:  "example.com",
			want: "https://example.com",
		},
		{
			name: "trailing slash dropped",
			raw:  "https://example.com/",
			want: "https://example.com",
		},
		{
			name: "whitespace and trailing comma",
			raw:  "  https://example.com, ",
			want: "https://example.com",
		},
		{
			name: "markdown link unwrapped",
			raw:  "[site](https://example.com/path)",
			want: "https://example.com/path",
		},
		{
			name:    "empty input",
			raw:     "   ",
			wantErr: true,
		},
		{
			name:    "literal space",
			raw:     "https://example.com/a b",
			wantErr: true,
		},
		{
			name:    "malformed host",
			raw:     "https://example.com{}",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeBaseURL(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SanitizeBaseURL(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("SanitizeBaseURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
