// Package domain defines the authentication token, the resolved request identity and
// the authentication error taxonomy.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// CookieName is the name of the credential cookie carrying the auth token.
const CookieName = "auth-token"

// mockSignature is the placeholder signature minted into every token.
const mockSignature = "sign"

var tokenRegex = regexp.MustCompile(`^user-(\d+)\.(.+)\.(.+)$`)

// Token is the structurally parsed form of the credential cookie value
// "user-<digits>.<expiry>.<signature>".
// Expiry and Signature are opaque: nothing verifies them.
type Token struct {
	UserID    uint64
	Expiry    string
	Signature string
}

// NewToken mints a token for userID that nominally expires at expiresAt.
func NewToken(userID uint64, expiresAt time.Time) Token {
	return Token{
		UserID:    userID,
		Expiry:    strconv.FormatInt(expiresAt.Unix(), 10),
		Signature: mockSignature,
	}
}

// String renders the token in its cookie value form.
func (t Token) String() string {
	return fmt.Sprintf("user-%d.%s.%s", t.UserID, t.Expiry, t.Signature)
}

// ParseToken parses a raw cookie value.
// Returns ErrTokenWrongFormat if the shape does not match or the user id does not fit an uint64.
func ParseToken(raw string) (Token, error) {
	matches := tokenRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Token{}, ErrTokenWrongFormat
	}

	userID, err := strconv.ParseUint(matches[1], 10, 64)
	if err != nil {
		return Token{}, ErrTokenWrongFormat
	}

	return Token{
		UserID:    userID,
		Expiry:    matches[2],
		Signature: matches[3],
	}, nil
}
