package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/mpetrov/dashauth/internal/server/token"
)

func TestSignup_Created(t *testing.T) {
	env := newTestEnv(t)

	res := env.signup(t, "Ann", "Ann@X.com ", "secret1")

	if res.Token == "" {
		t.Fatalf("expected token in response")
	}
	if res.User.Email != "ann@x.com" {
		t.Fatalf("email not normalized: %q", res.User.Email)
	}

	claims, err := token.Verify(res.Token, []byte(testSecret))
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if claims.Subject != res.User.ID {
		t.Fatalf("token subject %q does not match user id %q", claims.Subject, res.User.ID)
	}
}

func TestSignup_NeverReturnsPasswordOrHash(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"Ann","email":"ann@x.com","password":"secret1"}`
	rec := env.do(t, env.auth, http.MethodPost, "/api/auth/signup", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d", rec.Code)
	}

	raw := rec.Body.String()
	if strings.Contains(raw, "secret1") || strings.Contains(raw, "password") || strings.Contains(raw, "$2a$") {
		t.Fatalf("response leaks credential material: %s", raw)
	}
}

func TestSignup_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"no password", `{"name":"Ann","email":"ann@x.com"}`},
		{"invalid json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, env.auth, http.MethodPost, "/api/auth/signup", tt.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}

			var m message
			if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
				t.Fatalf("decoding error body: %v", err)
			}
			if m.Message != "Name, email, and password are required." {
				t.Fatalf("unexpected message: %q", m.Message)
			}
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "Ann", "ann@x.com", "secret1")

	body := `{"name":"Other","email":" ANN@x.com","password":"other"}`
	rec := env.do(t, env.auth, http.MethodPost, "/api/auth/signup", body, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}

	var m message
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if m.Message != "Email already registered." {
		t.Fatalf("unexpected message: %q", m.Message)
	}
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	signedUp := env.signup(t, "Ann", "Ann@X.com ", "secret1")

	body := `{"email":"ann@x.com","password":"secret1"}`
	rec := env.do(t, env.auth, http.MethodPost, "/api/auth/login", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	var res authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	if res.User.ID != signedUp.User.ID {
		t.Fatalf("login user id %q differs from signup %q", res.User.ID, signedUp.User.ID)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, env.auth, http.MethodPost, "/api/auth/login", `{"email":"ann@x.com"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var m message
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if m.Message != "Email and password are required." {
		t.Fatalf("unexpected message: %q", m.Message)
	}
}

func TestLogin_InvalidCredentials_ByteIdenticalBodies(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "Ann", "ann@x.com", "secret1")

	unknown := env.do(t, env.auth, http.MethodPost, "/api/auth/login", `{"email":"nobody@x.com","password":"secret1"}`, nil)
	wrongPw := env.do(t, env.auth, http.MethodPost, "/api/auth/login", `{"email":"ann@x.com","password":"wrong"}`, nil)

	if unknown.Code != http.StatusUnauthorized || wrongPw.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d / %d, want 401 / 401", unknown.Code, wrongPw.Code)
	}
	if unknown.Body.String() != wrongPw.Body.String() {
		t.Fatalf("bodies differ:\n%s\n%s", unknown.Body.String(), wrongPw.Body.String())
	}
}
