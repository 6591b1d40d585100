package language

import (
	"testing"
)

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "We manufacture industrial components and deliver them to customers across the country.",
			want: "en",
		},
		{
			name: "german",
			text: "Wir stellen industrielle Komponenten her und liefern sie an Kunden im ganzen Land.",
			want: "de",
		},
		{
			name: "too short",
			text: "Hello",
			want: "",
		},
		{
			name: "empty",
			text: "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, confidence := d.Detect(tt.text)
			if code != tt.want {
				t.Errorf("Detect() code = %q, want %q", code, tt.want)
			}
			if tt.want != "" && confidence <= 0 {
				t.Errorf("Detect() confidence = %f, want > 0", confidence)
			}
		})
	}
}
