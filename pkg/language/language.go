// Package language identifies the primary written language of a site from
// its home page text.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Texts shorter than this carry too little signal to classify.
const minSampleLen = 20

// Detector wraps a lingua language detector built over all spoken
// languages. Construction is expensive; build one per process.
type Detector struct {
	inner lingua.LanguageDetector
}

func NewDetector() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the most likely language and its
// confidence, or an empty code when the sample is too short or no language
// can be determined.
func (d *Detector) Detect(text string) (code string, confidence float64) {
	sample := strings.TrimSpace(text)
	if len(sample) < minSampleLen {
		return "", 0
	}
	lang, ok := d.inner.DetectLanguageOf(sample)
	if !ok {
		return "", 0
	}
	confidence = d.inner.ComputeLanguageConfidence(sample, lang)
	return strings.ToLower(lang.IsoCode639_1().String()), confidence
}
