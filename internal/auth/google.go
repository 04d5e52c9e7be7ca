package auth

import (
	"errors"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

// TokenVerifier validates a bearer credential and yields the verified email.
type TokenVerifier interface {
	Verify(idToken string) (string, error)
}

// GoogleVerifier checks Google-issued ID tokens against the app's client id.
type GoogleVerifier struct {
	ClientID string
}

func (g GoogleVerifier) Verify(idToken string) (string, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{g.ClientID}); err != nil {
		return "", err
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return "", err
	}
	if claims.Email == "" {
		return "", errors.New("id token carries no email claim")
	}
	return claims.Email, nil
}
