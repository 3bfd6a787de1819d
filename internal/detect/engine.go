package detect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// detector pairs a compiled pattern with the base confidence reported for
// its matches. Confidence is in the wire domain [0.0, 1.0].
type detector struct {
	pattern    *regexp.Regexp
	confidence float64
	// verify optionally rejects a raw regex match (e.g. Luhn check).
	verify func(string) bool
}

// Engine is the reference PII detection engine. It runs the detectors
// enabled for a partner over text content or tabular columns.
type Engine struct {
	log       *logger.Logger
	detectors map[string]detector
}

func NewEngine(log *logger.Logger) *Engine {
	return &Engine{
		log: log,
		detectors: map[string]detector{
			"EMAIL_ADDRESS": {
				pattern:    regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
				confidence: 0.95,
			},
			"PHONE_NUMBER": {
				pattern:    regexp.MustCompile(`\+?\d{1,3}[-\s]?\d{2,3}[-\s]?\d{3,4}[-\s]?\d{4}`),
				confidence: 0.80,
			},
			"CREDIT_CARD": {
				pattern:    regexp.MustCompile(`\b(?:\d[ -]?){13,16}\b`),
				confidence: 0.95,
				verify:     luhnValid,
			},
			"IC_NUMBER": {
				pattern:    regexp.MustCompile(`\b\d{6}-\d{2}-\d{4}\b`),
				confidence: 0.90,
			},
			"US_PASSPORT": {
				pattern:    regexp.MustCompile(`\b[A-Z]?\d{8,9}\b`),
				confidence: 0.65,
			},
			"US_BANK_NUMBER": {
				pattern:    regexp.MustCompile(`\b\d{8,17}\b`),
				confidence: 0.60,
			},
			"PERSON": {
				pattern:    regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)+\b`),
				confidence: 0.75,
			},
			"LOCATION": {
				pattern:    regexp.MustCompile(`(?i)\b\d{1,5} [A-Za-z ]+(?:street|st|road|rd|avenue|ave|lane|ln|jalan|lorong)\b`),
				confidence: 0.60,
			},
		},
	}
}

// DetectText scans free text with every enabled detector and returns one
// finding per match, ordered by position in the text. Overlapping matches
// from different detectors are all reported; the reviewer decides.
func (e *Engine) DetectText(content string, enabled []string) []models.DetectedEntity {
	findings := make([]models.DetectedEntity, 0, 16)

	for _, category := range orderedCategories(enabled) {
		d, ok := e.detectors[category]
		if !ok {
			continue
		}

		for _, loc := range d.pattern.FindAllStringIndex(content, -1) {
			word := content[loc[0]:loc[1]]
			if d.verify != nil && !d.verify(word) {
				continue
			}
			start, end := loc[0], loc[1]
			findings = append(findings, models.DetectedEntity{
				Detect:     category,
				Entity:     category,
				Word:       word,
				Start:      &start,
				End:        &end,
				Confidence: d.confidence,
			})
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return *findings[i].Start < *findings[j].Start
	})

	return findings
}

// Column is one named column of a tabular file with its cell values in
// row order.
type Column struct {
	Name   string
	Values []string
}

// columnSampleSize bounds how many cells per column are inspected.
const columnSampleSize = 50

// DetectTabular classifies each column by running the enabled detectors
// over a sample of its values. A column is reported under the category
// that matches the largest share of sampled cells; the share scales the
// detector's base confidence.
func (e *Engine) DetectTabular(columns []Column, enabled []string) []models.DetectedEntity {
	findings := make([]models.DetectedEntity, 0, len(columns))

	for _, col := range columns {
		sample := col.Values
		if len(sample) > columnSampleSize {
			sample = sample[:columnSampleSize]
		}
		if len(sample) == 0 {
			continue
		}

		bestCategory := ""
		bestRatio := 0.0
		bestConfidence := 0.0
		for _, category := range orderedCategories(enabled) {
			d, ok := e.detectors[category]
			if !ok {
				continue
			}

			matched := 0
			for _, value := range sample {
				word := d.pattern.FindString(value)
				if word == "" {
					continue
				}
				if d.verify != nil && !d.verify(word) {
					continue
				}
				matched++
			}

			ratio := float64(matched) / float64(len(sample))
			if ratio > bestRatio {
				bestCategory = category
				bestRatio = ratio
				bestConfidence = d.confidence * ratio
			}
		}

		if bestCategory == "" || bestRatio < 0.5 {
			continue
		}

		findings = append(findings, models.DetectedEntity{
			Detect:     bestCategory,
			Entity:     bestCategory,
			Column:     col.Name,
			Words:      col.Values,
			TopData:    topValues(col.Values, 3),
			Confidence: bestConfidence,
		})
	}

	return findings
}

// orderedCategories returns the enabled categories in a stable order so
// detection output is deterministic across runs.
func orderedCategories(enabled []string) []string {
	out := make([]string, 0, len(enabled))
	seen := make(map[string]bool, len(enabled))
	for _, c := range enabled {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func topValues(values []string, n int) []string {
	if len(values) < n {
		n = len(values)
	}
	out := make([]string, n)
	copy(out, values[:n])
	return out
}

func luhnValid(s string) bool {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) < 13 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
