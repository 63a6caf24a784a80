package password

import (
	"strings"
	"testing"
)

// parámetros baratos para que la suite corra rápido
var testParams = Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, KeyLen: 32}

func TestHashVerify_Roundtrip(t *testing.T) {
	phc, err := Hash(testParams, "s3cret-pass")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(phc, "$argon2id$v=19$") {
		t.Fatalf("unexpected PHC prefix: %q", phc)
	}
	if !Verify("s3cret-pass", phc) {
		t.Fatal("expected Verify to accept the original password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	phc, err := Hash(testParams, "correcta")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if Verify("incorrecta", phc) {
		t.Fatal("expected Verify to reject a different password")
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	if _, err := Hash(testParams, ""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestHash_UniqueSalt(t *testing.T) {
	a, err := Hash(testParams, "misma")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := Hash(testParams, "misma")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
	if !Verify("misma", a) || !Verify("misma", b) {
		t.Fatal("both hashes must verify")
	}
}

func TestVerify_Malformed(t *testing.T) {
	malformed := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=8192,t=1,p=1$saltonly",              // faltan partes
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$ZGs",             // variante equivocada
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$ZGs",            // versión equivocada
		"$argon2id$v=19$m=8192,t=1,p=1$!!!badb64$ZGs",         // salt no decodificable
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$***",            // dk no decodificable
		"$argon2id$v=19$malformed$c2FsdA$ZGs",                 // params ilegibles
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$ZGs$extraparte", // partes de más
	}
	for _, phc := range malformed {
		if Verify("cualquiera", phc) {
			t.Fatalf("expected Verify to reject malformed hash %q", phc)
		}
	}
}
