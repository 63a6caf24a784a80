package validation

import "regexp"

// Formato esperado: NN.NNN.NNN-D (puntos de miles y dígito verificador,
// que puede ser K). Se acepta un rango de 1 a 2 dígitos en el primer grupo.
var rutRe = regexp.MustCompile(`^\d{1,2}\.\d{3}\.\d{3}-[\dkK]$`)

// ValidRut verifica formato y dígito verificador (módulo 11) de un RUT chileno.
func ValidRut(rut string) bool {
	if !rutRe.MatchString(rut) {
		return false
	}

	// Separar cuerpo y verificador, descartando puntos y guión.
	var digits []int
	for _, r := range rut[:len(rut)-2] {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	dv := rut[len(rut)-1]

	// Módulo 11 con factores 2..7 desde el dígito menos significativo.
	sum, factor := 0, 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += digits[i] * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}
	switch 11 - sum%11 {
	case 11:
		return dv == '0'
	case 10:
		return dv == 'K' || dv == 'k'
	default:
		return int(dv-'0') == 11-sum%11
	}
}
