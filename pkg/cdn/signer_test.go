package cdn

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyPEM(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	return key, string(pem.EncodeToMemory(block))
}

func fixedSigner(t *testing.T) (*Signer, *rsa.PrivateKey) {
	t.Helper()
	key, keyPEM := testKeyPEM(t)
	s, err := NewSigner("KTESTPAIR", keyPEM)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	return s, key
}

func TestSigner_DisabledReturnsURLUnchanged(t *testing.T) {
	s, err := NewSigner("", "")
	require.NoError(t, err)
	assert.False(t, s.Enabled())

	out, err := s.SignURL("https://cdn.example.com/a.mp3", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.mp3", out)
}

func TestSigner_MalformedKeyIsError(t *testing.T) {
	_, err := NewSigner("KTESTPAIR", "not a pem")
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestSigner_KeyWithoutPairID(t *testing.T) {
	_, keyPEM := testKeyPEM(t)
	_, err := NewSigner("", keyPEM)
	assert.ErrorIs(t, err, ErrMissingKeyPairID)
}

func TestSigner_EscapedNewlinesInKey(t *testing.T) {
	_, keyPEM := testKeyPEM(t)
	oneLine := strings.ReplaceAll(keyPEM, "\n", `\n`)
	s, err := NewSigner("KTESTPAIR", oneLine)
	require.NoError(t, err)
	assert.True(t, s.Enabled())
}

func TestSigner_Deterministic(t *testing.T) {
	s, _ := fixedSigner(t)

	first, err := s.SignURL("https://cdn.example.com/songs/1/320.mp3", time.Hour)
	require.NoError(t, err)
	second, err := s.SignURL("https://cdn.example.com/songs/1/320.mp3", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSigner_QueryParametersAndVerification(t *testing.T) {
	s, key := fixedSigner(t)
	resource := "https://cdn.example.com/songs/1/master.m3u8"

	signed, err := s.SignURL(resource, time.Hour)
	require.NoError(t, err)

	prefix := resource + "?Expires=1700003600&Signature="
	require.True(t, strings.HasPrefix(signed, prefix), signed)
	require.True(t, strings.HasSuffix(signed, "&Key-Pair-Id=KTESTPAIR"), signed)

	sig := strings.TrimSuffix(strings.TrimPrefix(signed, prefix), "&Key-Pair-Id=KTESTPAIR")
	assert.NotContains(t, sig, "+")
	assert.NotContains(t, sig, "=")
	assert.NotContains(t, sig, "/")

	raw, err := base64.StdEncoding.DecodeString(
		strings.NewReplacer("-", "+", "_", "=", "~", "/").Replace(sig))
	require.NoError(t, err)

	policy := `{"Statement":[{"Resource":"` + resource + `","Condition":{"DateLessThan":{"AWS:EpochTime":1700003600}}}]}`
	digest := sha1.Sum([]byte(policy))
	assert.NoError(t, rsa.VerifyPKCS1v15(&key.PublicKey, crypto.SHA1, digest[:], raw))
}

func TestSigner_AppendsToExistingQuery(t *testing.T) {
	s, _ := fixedSigner(t)

	signed, err := s.SignURL("https://cdn.example.com/a.mp3?v=2", time.Minute)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(signed, "https://cdn.example.com/a.mp3?v=2&Expires=1700000060&Signature="))
	u, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "2", u.Query().Get("v"))
	assert.Equal(t, "KTESTPAIR", u.Query().Get("Key-Pair-Id"))
}

func TestEncodeSignature_ReplacesEveryOccurrence(t *testing.T) {
	// standard base64: "+//7/w=="
	out := encodeSignature([]byte{0xfb, 0xff, 0xfb, 0xff})
	assert.Equal(t, "-~~7~w__", out)
}

func TestCannedPolicy_Shape(t *testing.T) {
	policy, err := cannedPolicy("https://cdn.example.com/a.mp3?x=1&y=<2>", 42)
	require.NoError(t, err)
	assert.Equal(t,
		`{"Statement":[{"Resource":"https://cdn.example.com/a.mp3?x=1&y=<2>","Condition":{"DateLessThan":{"AWS:EpochTime":42}}}]}`,
		string(policy))
}

func TestSigner_VerifiesWithQueryStringResource(t *testing.T) {
	s, key := fixedSigner(t)
	resource := "https://cdn.example.com/a.mp3?a=1&b=2"

	signed, err := s.SignURL(resource, time.Hour)
	require.NoError(t, err)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "1", u.Query().Get("a"))
	assert.Equal(t, "2", u.Query().Get("b"))

	sig := u.Query().Get("Signature")
	raw, err := base64.StdEncoding.DecodeString(
		strings.NewReplacer("-", "+", "_", "=", "~", "/").Replace(sig))
	require.NoError(t, err)

	policy := `{"Statement":[{"Resource":"` + resource + `","Condition":{"DateLessThan":{"AWS:EpochTime":1700003600}}}]}`
	digest := sha1.Sum([]byte(policy))
	assert.NoError(t, rsa.VerifyPKCS1v15(&key.PublicKey, crypto.SHA1, digest[:], raw))
}

func TestCannedPolicy_EscapesQuotesAndBackslashes(t *testing.T) {
	policy, err := cannedPolicy(`https://cdn.example.com/a"b\c.mp3`, 7)
	require.NoError(t, err)
	assert.Equal(t,
		`{"Statement":[{"Resource":"https://cdn.example.com/a\"b\\c.mp3","Condition":{"DateLessThan":{"AWS:EpochTime":7}}}]}`,
		string(policy))
}
