package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer()
	in := TokenClaims{UserID: "user-1", Email: "a@b.com", Role: domain.RoleClient}

	token, err := issuer.Issue(in, "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	out, err := issuer.Verify(token, "secret")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if *out != in {
		t.Fatalf("claims round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestTokenIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer()
	token, err := issuer.Issue(TokenClaims{UserID: "user-1"}, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := issuer.Verify(token, "secret-b"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_Verify_Expired(t *testing.T) {
	issuer := NewTokenIssuer()
	token, err := issuer.Issue(TokenClaims{UserID: "user-1"}, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := issuer.Verify(token, "secret"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenIssuer_Verify_Malformed(t *testing.T) {
	issuer := NewTokenIssuer()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Verify(token, "secret"); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenIssuer_Verify_RejectsNonHS256(t *testing.T) {
	issuer := NewTokenIssuer()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing unsigned token failed: %v", err)
	}

	if _, err := issuer.Verify(token, "secret"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestTokenIssuer_Verify_MissingExpiry(t *testing.T) {
	issuer := NewTokenIssuer()

	// a correctly signed token without an exp claim is outside the
	// issuer's contract and must not verify
	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
	})
	token, err := signed.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := issuer.Verify(token, "secret"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing exp, got %v", err)
	}
}

func TestTokenIssuer_Verify_MissingSubject(t *testing.T) {
	issuer := NewTokenIssuer()

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := signed.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := issuer.Verify(token, "secret"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing sub, got %v", err)
	}
}
