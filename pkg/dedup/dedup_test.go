package dedup

import (
	"testing"
)

func TestFingerprintText(t *testing.T) {
	a := FingerprintText("hello world")
	b := FingerprintText("hello world")
	c := FingerprintText("hello world ")

	if a != b {
		t.Errorf("same text produced different fingerprints: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different text produced identical fingerprints")
	}
	if len(a) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(a))
	}
}

func TestSeenBefore(t *testing.T) {
	d := NewDetector()

	fp := FingerprintText("page body")
	if d.SeenBefore(fp) {
		t.Error("first occurrence reported as seen")
	}
	if !d.SeenBefore(fp) {
		t.Error("second occurrence not reported as seen")
	}
	if d.SeenBefore(FingerprintText("other body")) {
		t.Error("unrelated fingerprint reported as seen")
	}
	if got := d.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}
