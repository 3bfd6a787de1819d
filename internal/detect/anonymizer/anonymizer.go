// Package anonymizer encrypts the PII spans and columns approved during
// review. Keys are derived from the partner's encryption key, so a partner's
// artifacts stay recoverable with its stored credentials.
package anonymizer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/wanpc3/Data-Privacy-Protector/internal/detect"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// Action is one recorded anonymization step: an occurrence count per
// category for text files, a column name for tabular files.
type Action struct {
	Detect string
	Total  int
	Column string
}

// Service performs span and column encryption with AES-256-GCM.
type Service struct {
	// PBKDF2 tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	iterations int
	keyLen     int
}

func New() *Service {
	return &Service{
		iterations: 4096,
		keyLen:     32, // 256 bits
	}
}

// DeriveKey derives a 256-bit encryption key from the partner's secret and
// salt using PBKDF2-SHA256.
func (s *Service) DeriveKey(secret string, salt []byte) []byte {
	return pbkdf2.Key([]byte(secret), salt, s.iterations, s.keyLen, sha256.New)
}

// EncryptValue encrypts plaintext with AES-256-GCM. A random 12-byte nonce
// is prepended to the ciphertext: blob = nonce ‖ ciphertext. The result is
// returned base64-encoded.
func (s *Service) EncryptValue(key []byte, plaintext string) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// AnonymizeText replaces every non-ignored reviewed span in content with an
// encrypted token. Overlapping and nested spans are merged into one region,
// so every marked byte is encrypted exactly once; regions are applied back
// to front so earlier replacements do not shift later offsets. Returns the
// anonymized content and one Action per category with its occurrence count.
func (s *Service) AnonymizeText(content string, review []models.CleanedItem, key []byte) (string, []Action, error) {
	spans := make([]models.CleanedItem, 0, len(review))
	for _, item := range review {
		if item.Ignore || item.Word == "" || item.Start == nil || item.End == nil {
			continue
		}
		if *item.Start < 0 || *item.End > len(content) || *item.Start >= *item.End {
			continue
		}
		spans = append(spans, item)
	}

	sort.Slice(spans, func(i, j int) bool {
		if *spans[i].Start != *spans[j].Start {
			return *spans[i].Start < *spans[j].Start
		}
		return *spans[i].End > *spans[j].End
	})

	type region struct{ start, end int }
	regions := make([]region, 0, len(spans))
	totals := make(map[string]int, len(spans))
	for _, span := range spans {
		totals[span.Detect]++
		if n := len(regions); n > 0 && *span.Start < regions[n-1].end {
			if *span.End > regions[n-1].end {
				regions[n-1].end = *span.End
			}
			continue
		}
		regions = append(regions, region{start: *span.Start, end: *span.End})
	}

	for i := len(regions) - 1; i >= 0; i-- {
		reg := regions[i]
		token, err := s.EncryptValue(key, content[reg.start:reg.end])
		if err != nil {
			return "", nil, fmt.Errorf("encrypt span: %w", err)
		}
		content = content[:reg.start] + "ENC[" + token + "]" + content[reg.end:]
	}

	return content, textActions(totals), nil
}

// AnonymizeTabular encrypts every cell of each non-ignored reviewed column.
// Returns the rewritten columns and one Action per column.
func (s *Service) AnonymizeTabular(columns []detect.Column, review []models.CleanedItem, key []byte) ([]detect.Column, []Action, error) {
	targets := make(map[string]string, len(review))
	for _, item := range review {
		if item.Ignore || item.Column == "" {
			continue
		}
		targets[item.Column] = item.Detect
	}

	out := make([]detect.Column, len(columns))
	actions := make([]Action, 0, len(targets))
	for i, col := range columns {
		out[i] = detect.Column{Name: col.Name, Values: append([]string(nil), col.Values...)}

		category, ok := targets[col.Name]
		if !ok {
			continue
		}

		for j, value := range out[i].Values {
			if strings.TrimSpace(value) == "" {
				continue
			}
			token, err := s.EncryptValue(key, value)
			if err != nil {
				return nil, nil, fmt.Errorf("encrypt column %q: %w", col.Name, err)
			}
			out[i].Values[j] = "ENC[" + token + "]"
		}

		actions = append(actions, Action{Detect: category, Column: col.Name})
	}

	return out, actions, nil
}

func textActions(totals map[string]int) []Action {
	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	actions := make([]Action, 0, len(categories))
	for _, category := range categories {
		actions = append(actions, Action{Detect: category, Total: totals[category]})
	}
	return actions
}
