package validation

import "testing"

func TestValidRut_Valid(t *testing.T) {
	valids := []string{
		"11.111.111-1",
		"12.345.678-5",
		"11.111.112-K", // verificador K
		"11.111.112-k", // K minúscula también vale
		"1.234.567-4",  // cuerpo de 7 dígitos
	}
	for _, v := range valids {
		if !ValidRut(v) {
			t.Fatalf("expected valid: %q", v)
		}
	}
}

func TestValidRut_Invalid(t *testing.T) {
	invalids := []string{
		"",
		"11.111.111-2", // dígito verificador incorrecto
		"12.345.678-K", // verificador incorrecto
		"11111111-1",   // sin puntos
		"11.111.111",   // sin verificador
		"11.111.11-1",  // grupo corto
		"111.111.111-1",
		"aa.bbb.ccc-d",
		"11.111.111-KK",
		" 11.111.111-1", // espacio al inicio
	}
	for _, v := range invalids {
		if ValidRut(v) {
			t.Fatalf("expected invalid: %q", v)
		}
	}
}
