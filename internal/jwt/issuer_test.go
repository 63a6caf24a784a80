package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testSecret = []byte("super-secreto-de-al-menos-32-bytes!")

func TestIssueParse_Roundtrip(t *testing.T) {
	iss := NewIssuer("gestion", testSecret)

	in := SessionClaims{
		FullName: "Juana Pérez",
		Email:    "juana@example.cl",
		Rut:      "12.345.678-5",
		Role:     "user",
	}
	token, exp, err := iss.Issue(in)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	// TTL por defecto: 24h
	ttl := time.Until(exp)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Fatalf("unexpected exp, ttl=%v", ttl)
	}

	out, err := iss.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out != in {
		t.Fatalf("claims mismatch: got %+v want %+v", out, in)
	}
}

func TestParse_Expired(t *testing.T) {
	iss := NewIssuer("gestion", testSecret)
	iss.AccessTTL = -time.Minute // emitir ya vencido

	token, _, err := iss.Issue(SessionClaims{Email: "x@example.cl"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := iss.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	a := NewIssuer("gestion", testSecret)
	b := NewIssuer("gestion", []byte("otro-secreto-distinto-tambien-largo"))

	token, _, err := a.Issue(SessionClaims{Email: "x@example.cl"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := b.Parse(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("want ErrInvalidSignature, got %v", err)
	}
}

func TestParse_Tampered(t *testing.T) {
	iss := NewIssuer("gestion", testSecret)

	token, _, err := iss.Issue(SessionClaims{Email: "x@example.cl", Role: "user"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// alterar el payload invalida la firma
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	tampered := strings.Join(parts, ".")

	if _, err := iss.Parse(tampered); err == nil {
		t.Fatal("expected error for tampered token")
	}
}

func TestParse_WrongIssuer(t *testing.T) {
	a := NewIssuer("gestion", testSecret)
	b := NewIssuer("otro-servicio", testSecret)

	token, _, err := a.Issue(SessionClaims{Email: "x@example.cl"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := b.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	iss := NewIssuer("gestion", testSecret)
	for _, tk := range []string{"", "no-es-un-jwt", "a.b.c"} {
		if _, err := iss.Parse(tk); err == nil {
			t.Fatalf("expected error for %q", tk)
		}
	}
}
