package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	authDomain "github.com/allisson/tickets/internal/auth/domain"
)

type mintTokenOutput struct {
	CookieName string    `json:"cookie_name"`
	Value      string    `json:"value"`
	UserID     uint64    `json:"user_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// RunMintToken writes a token for userID in the auth cookie format.
// The output can be pasted into a browser or passed to curl with --cookie.
func RunMintToken(writer io.Writer, userID uint64, expiresAt time.Time, format string) error {
	token := authDomain.NewToken(userID, expiresAt)

	output := mintTokenOutput{
		CookieName: authDomain.CookieName,
		Value:      token.String(),
		UserID:     userID,
		ExpiresAt:  time.Unix(expiresAt.Unix(), 0).UTC(),
	}

	switch format {
	case "json":
		jsonBytes, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(writer, string(jsonBytes))
	case "text":
		_, _ = fmt.Fprintf(writer, "%s=%s\n", output.CookieName, output.Value)
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	return nil
}
