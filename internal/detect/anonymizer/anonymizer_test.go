package anonymizer

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanpc3/Data-Privacy-Protector/internal/detect"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

func intPtr(v int) *int { return &v }

func decryptToken(t *testing.T, key []byte, token string) string {
	t.Helper()

	blob, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)

	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	require.Greater(t, len(blob), gcm.NonceSize())
	plaintext, err := gcm.Open(nil, blob[:gcm.NonceSize()], blob[gcm.NonceSize():], nil)
	require.NoError(t, err)
	return string(plaintext)
}

// extractToken pulls the payload out of one "ENC[...]" marker.
func extractToken(t *testing.T, s string) string {
	t.Helper()
	start := strings.Index(s, "ENC[")
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(s[start:], "]")
	require.Greater(t, end, 0)
	return s[start+len("ENC[") : start+end]
}

// ── DeriveKey / EncryptValue ─────────────────────────────────────────────────

func TestService_DeriveKey_Deterministic(t *testing.T) {
	svc := New()

	a := svc.DeriveKey("partner-secret", []byte("partner-id"))
	b := svc.DeriveKey("partner-secret", []byte("partner-id"))
	c := svc.DeriveKey("partner-secret", []byte("other-id"))

	assert.Len(t, a, 32)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c, "a different salt yields a different key")
}

func TestService_EncryptValue_RoundTrip(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	token, err := svc.EncryptValue(key, "alice@example.com")
	require.NoError(t, err)
	assert.NotContains(t, token, "alice@example.com")

	assert.Equal(t, "alice@example.com", decryptToken(t, key, token))
}

func TestService_EncryptValue_NoncesDiffer(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	a, err := svc.EncryptValue(key, "same input")
	require.NoError(t, err)
	b, err := svc.EncryptValue(key, "same input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

// ── AnonymizeText ────────────────────────────────────────────────────────────

func TestService_AnonymizeText_ReplacesSpansBackToFront(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	content := "mail alice@example.com or call 012-345-6789 now"
	review := []models.CleanedItem{
		{Detect: "EMAIL_ADDRESS", Word: "alice@example.com", Start: intPtr(5), End: intPtr(22)},
		{Detect: "PHONE_NUMBER", Word: "012-345-6789", Start: intPtr(31), End: intPtr(43)},
	}

	out, actions, err := svc.AnonymizeText(content, review, key)
	require.NoError(t, err)

	assert.NotContains(t, out, "alice@example.com")
	assert.NotContains(t, out, "012-345-6789")
	assert.True(t, strings.HasPrefix(out, "mail ENC["))
	assert.True(t, strings.HasSuffix(out, " now"))
	assert.Equal(t, 2, strings.Count(out, "ENC["))

	require.Len(t, actions, 2)
	assert.Equal(t, Action{Detect: "EMAIL_ADDRESS", Total: 1}, actions[0])
	assert.Equal(t, Action{Detect: "PHONE_NUMBER", Total: 1}, actions[1])

	token := extractToken(t, out)
	assert.Equal(t, "alice@example.com", decryptToken(t, key, token))
}

func TestService_AnonymizeText_SkipsIgnoredAndInvalidSpans(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	content := "alice@example.com and bob@example.com"
	review := []models.CleanedItem{
		{Detect: "EMAIL_ADDRESS", Word: "alice@example.com", Start: intPtr(0), End: intPtr(17), Ignore: true},
		{Detect: "EMAIL_ADDRESS", Word: "bob@example.com", Start: intPtr(22), End: intPtr(37)},
		{Detect: "EMAIL_ADDRESS", Word: "ghost", Start: intPtr(90), End: intPtr(95)},
		{Detect: "EMAIL_ADDRESS", Word: "inverted", Start: intPtr(10), End: intPtr(5)},
	}

	out, actions, err := svc.AnonymizeText(content, review, key)
	require.NoError(t, err)

	assert.Contains(t, out, "alice@example.com", "ignored spans stay in the clear")
	assert.NotContains(t, out, "bob@example.com")
	require.Len(t, actions, 1)
	assert.Equal(t, 1, actions[0].Total)
}

func TestService_AnonymizeText_CountsPerCategory(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	content := "a@x.co b@x.co Alice Tan"
	review := []models.CleanedItem{
		{Detect: "EMAIL_ADDRESS", Word: "a@x.co", Start: intPtr(0), End: intPtr(6)},
		{Detect: "EMAIL_ADDRESS", Word: "b@x.co", Start: intPtr(7), End: intPtr(13)},
		{Detect: "PERSON", Word: "Alice Tan", Start: intPtr(14), End: intPtr(23)},
	}

	_, actions, err := svc.AnonymizeText(content, review, key)
	require.NoError(t, err)

	require.Len(t, actions, 2)
	assert.Equal(t, Action{Detect: "EMAIL_ADDRESS", Total: 2}, actions[0])
	assert.Equal(t, Action{Detect: "PERSON", Total: 1}, actions[1])
}

func TestService_AnonymizeText_NestedSpansMergeIntoOneRegion(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	content := "0123456789"
	review := []models.CleanedItem{
		{Detect: "PERSON", Word: "0123456789", Start: intPtr(0), End: intPtr(10)},
		{Detect: "EMAIL_ADDRESS", Word: "45", Start: intPtr(4), End: intPtr(6)},
	}

	out, actions, err := svc.AnonymizeText(content, review, key)
	require.NoError(t, err)

	// A single token covering the whole content: nothing of the wider
	// span survives outside the marker.
	assert.Equal(t, 1, strings.Count(out, "ENC["))
	assert.True(t, strings.HasPrefix(out, "ENC["))
	assert.True(t, strings.HasSuffix(out, "]"))
	assert.Equal(t, "0123456789", decryptToken(t, key, extractToken(t, out)))

	require.Len(t, actions, 2)
	assert.Equal(t, Action{Detect: "EMAIL_ADDRESS", Total: 1}, actions[0])
	assert.Equal(t, Action{Detect: "PERSON", Total: 1}, actions[1])
}

func TestService_AnonymizeText_IdenticalSpansProduceOneToken(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	content := "mail alice@example.com now"
	review := []models.CleanedItem{
		{Detect: "EMAIL_ADDRESS", Word: "alice@example.com", Start: intPtr(5), End: intPtr(22)},
		{Detect: "EMAIL_ADDRESS", Word: "alice@example.com", Start: intPtr(5), End: intPtr(22)},
	}

	out, _, err := svc.AnonymizeText(content, review, key)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "ENC["))
	assert.NotContains(t, out, "alice@example.com")
	assert.True(t, strings.HasPrefix(out, "mail ENC["))
	assert.True(t, strings.HasSuffix(out, " now"))
	assert.Equal(t, "alice@example.com", decryptToken(t, key, extractToken(t, out)))
}

func TestService_AnonymizeText_PartialOverlapCoversBothSpans(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	content := "abcdefghij"
	review := []models.CleanedItem{
		{Detect: "PERSON", Word: "abcde", Start: intPtr(0), End: intPtr(5)},
		{Detect: "PERSON", Word: "defgh", Start: intPtr(3), End: intPtr(8)},
	}

	out, _, err := svc.AnonymizeText(content, review, key)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "ENC["))
	assert.True(t, strings.HasSuffix(out, "]ij"))
	assert.Equal(t, "abcdefgh", decryptToken(t, key, extractToken(t, out)), "the merged region spans both marked ranges")
}

// ── AnonymizeTabular ─────────────────────────────────────────────────────────

func TestService_AnonymizeTabular_EncryptsTargetColumns(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	columns := []detect.Column{
		{Name: "email", Values: []string{"a@x.co", "", "b@x.co"}},
		{Name: "city", Values: []string{"Ipoh", "Penang", "Melaka"}},
	}
	review := []models.CleanedItem{
		{Detect: "EMAIL_ADDRESS", Column: "email"},
	}

	out, actions, err := svc.AnonymizeTabular(columns, review, key)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.True(t, strings.HasPrefix(out[0].Values[0], "ENC["))
	assert.Equal(t, "", out[0].Values[1], "blank cells stay blank")
	assert.True(t, strings.HasPrefix(out[0].Values[2], "ENC["))
	assert.Equal(t, []string{"Ipoh", "Penang", "Melaka"}, out[1].Values, "untargeted columns pass through")

	require.Len(t, actions, 1)
	assert.Equal(t, Action{Detect: "EMAIL_ADDRESS", Column: "email"}, actions[0])

	assert.Equal(t, "a@x.co", decryptToken(t, key, extractToken(t, out[0].Values[0])))
}

func TestService_AnonymizeTabular_IgnoredColumnPassesThrough(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	columns := []detect.Column{{Name: "email", Values: []string{"a@x.co"}}}
	review := []models.CleanedItem{{Detect: "EMAIL_ADDRESS", Column: "email", Ignore: true}}

	out, actions, err := svc.AnonymizeTabular(columns, review, key)
	require.NoError(t, err)

	assert.Equal(t, "a@x.co", out[0].Values[0])
	assert.Empty(t, actions)
}

func TestService_AnonymizeTabular_DoesNotMutateInput(t *testing.T) {
	svc := New()
	key := svc.DeriveKey("secret", []byte("salt"))

	columns := []detect.Column{{Name: "email", Values: []string{"a@x.co"}}}
	review := []models.CleanedItem{{Detect: "EMAIL_ADDRESS", Column: "email"}}

	_, _, err := svc.AnonymizeTabular(columns, review, key)
	require.NoError(t, err)

	assert.Equal(t, "a@x.co", columns[0].Values[0])
}
