package validation

import (
	"strings"
	"testing"
)

func TestValidEmail(t *testing.T) {
	valids := []string{
		"a@b.cl",
		"juana.perez@example.com",
		"con+tag@dominio.cl",
	}
	for _, v := range valids {
		if !ValidEmail(v) {
			t.Fatalf("expected valid: %q", v)
		}
	}

	invalids := []string{
		"",
		"   ",
		"sin-arroba",
		"@dominio.cl",
		"user@",
		"Juana <juana@example.cl>", // display name no se acepta
		"dos@@arrobas.cl",
	}
	for _, v := range invalids {
		if ValidEmail(v) {
			t.Fatalf("expected invalid: %q", v)
		}
	}
}

func TestEmailRequest_OK(t *testing.T) {
	if msg := EmailRequest("a@b.cl", "Hola", "mensaje suficientemente largo"); msg != "" {
		t.Fatalf("expected valid request, got %q", msg)
	}
	// asunto en el mínimo exacto (3 runas)
	if msg := EmailRequest("a@b.cl", "abc", "12345"); msg != "" {
		t.Fatalf("expected valid request at boundary, got %q", msg)
	}
}

func TestEmailRequest_SubjectTooShort(t *testing.T) {
	msg := EmailRequest("a@b.cl", "ab", "mensaje válido")
	if msg == "" {
		t.Fatal("expected violation for 2-char subject")
	}
	if !strings.Contains(msg, "al menos 3") {
		t.Fatalf("expected min-length message, got %q", msg)
	}
}

func TestEmailRequest_SubjectTooLong(t *testing.T) {
	long := strings.Repeat("a", SubjectMaxLen+1)
	msg := EmailRequest("a@b.cl", long, "mensaje válido")
	if msg == "" {
		t.Fatal("expected violation for oversized subject")
	}
	// 255 exactos pasa
	if m := EmailRequest("a@b.cl", strings.Repeat("a", SubjectMaxLen), "mensaje válido"); m != "" {
		t.Fatalf("255-char subject should pass, got %q", m)
	}
}

func TestEmailRequest_MessageTooShort(t *testing.T) {
	if msg := EmailRequest("a@b.cl", "Hola", "abcd"); msg == "" {
		t.Fatal("expected violation for 4-char message")
	}
}

func TestEmailRequest_BadRecipient(t *testing.T) {
	if msg := EmailRequest("no-es-email", "Hola", "mensaje válido"); msg == "" {
		t.Fatal("expected violation for invalid recipient")
	}
	if msg := EmailRequest("", "Hola", "mensaje válido"); msg == "" {
		t.Fatal("expected violation for empty recipient")
	}
}

func TestEmailRequest_RuneCount(t *testing.T) {
	// el límite cuenta runas, no bytes: "ñañañ" son 5 runas
	if msg := EmailRequest("a@b.cl", "ñañ", "ñañañ"); msg != "" {
		t.Fatalf("multibyte boundary should pass, got %q", msg)
	}
}
