// Package dedup suppresses pages whose rendered content was already seen
// under a different URL.
package dedup

import (
	"crypto/sha256"
	"fmt"
	"sync"
)

// Fingerprint is a fixed-size digest of a page's primary text content.
type Fingerprint string

// FingerprintText hashes the plain text of a page's main content region.
// Identical text yields identical fingerprints regardless of URL.
func FingerprintText(text string) Fingerprint {
	sum := sha256.Sum256([]byte(text))
	return Fingerprint(fmt.Sprintf("%x", sum))
}

// Detector is a process-lifetime set of fingerprints already seen. It is
// created at run start and discarded at run end.
type Detector struct {
	mu   sync.Mutex
	seen map[Fingerprint]struct{}
}

func NewDetector() *Detector {
	return &Detector{seen: make(map[Fingerprint]struct{})}
}

// SeenBefore reports whether fp was recorded previously, registering it on
// first occurrence. A fingerprint is recorded at most once.
func (d *Detector) SeenBefore(fp Fingerprint) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[fp]; ok {
		return true
	}
	d.seen[fp] = struct{}{}
	return false
}

// Len returns the number of distinct fingerprints recorded so far.
func (d *Detector) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
