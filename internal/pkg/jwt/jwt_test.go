package jwt

import (
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := New("super-secret", time.Hour)

	tok, err := svc.IssueToken("admin")
	require.NoError(t, err)

	sub, err := svc.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestVerifyToken_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	svc := New("secret", 24*time.Hour, WithClock(clock))

	tok, err := svc.IssueToken("admin")
	require.NoError(t, err)

	now = now.Add(23*time.Hour + 59*time.Minute)
	_, err = svc.VerifyToken(tok)
	require.NoError(t, err, "token must still be valid just before expiry")

	now = now.Add(2 * time.Minute)
	_, err = svc.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := New("right-secret", time.Hour).IssueToken("admin")
	require.NoError(t, err)

	_, err = New("wrong-secret", time.Hour).VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	svc := New("secret", time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.VerifyToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyToken_TamperedPayload(t *testing.T) {
	t.Parallel()

	svc := New("secret", time.Hour)
	tok, err := svc.IssueToken("admin")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	other, err := svc.IssueToken("someone-else")
	require.NoError(t, err)
	parts[1] = strings.Split(other, ".")[1]

	_, err = svc.VerifyToken(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := jwtlib.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = New("secret", time.Hour).VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_RequiresSubject(t *testing.T) {
	t.Parallel()

	svc := New("secret", time.Hour)
	tok, err := svc.IssueToken("")
	require.NoError(t, err)

	_, err = svc.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
