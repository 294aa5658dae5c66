package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"txmerge/pkg/jwt"
)

var errMissingSecret error = errors.New("JWT_SECRET is not set")

// IssueToken prints a signed operator token for the write endpoints.
func IssueToken(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "operator", "token subject")
	hours := fs.Int("hours", 24, "token lifetime in hours")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	secret, ok := os.LookupEnv("JWT_SECRET")
	if !ok || secret == "" {
		return errMissingSecret
	}

	token, err := jwt.NewJWTService([]byte(secret)).Issue(jwt.TokenInfo{
		Subject:    *subject,
		Expiration: time.Duration(*hours),
	})
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
