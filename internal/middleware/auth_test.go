package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubVerifier struct {
	VerifyFunc func(idToken string) (string, error)
}

func (s stubVerifier) Verify(idToken string) (string, error) {
	return s.VerifyFunc(idToken)
}

func protectedApp(v stubVerifier) *fiber.App {
	app := fiber.New()
	app.Get("/private", RequireAuth(v), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": Email(c)})
	})
	return app
}

func TestRequireAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	v := stubVerifier{VerifyFunc: func(string) (string, error) {
		t.Fatal("verifier must not be called without a bearer token")
		return "", nil
	}}
	app := protectedApp(v)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"bare token", "Bearer"},
		{"empty token", "Bearer "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", resp.StatusCode)
			}
		})
	}
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	v := stubVerifier{VerifyFunc: func(string) (string, error) {
		return "", errors.New("token expired")
	}}
	app := protectedApp(v)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAuthAttachesVerifiedEmail(t *testing.T) {
	var gotToken string
	v := stubVerifier{VerifyFunc: func(idToken string) (string, error) {
		gotToken = idToken
		return "alice@x.com", nil
	}}
	app := protectedApp(v)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if gotToken != "good-token" {
		t.Errorf("verifier saw token %q", gotToken)
	}
}

func TestEmailOnPublicRoute(t *testing.T) {
	app := fiber.New()
	app.Get("/public", func(c *fiber.Ctx) error {
		return c.SendString(Email(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
