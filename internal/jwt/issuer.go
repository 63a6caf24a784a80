package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Errores de verificación de tokens.
var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidToken     = errors.New("invalid token")
)

// SessionClaims son los atributos de identidad embebidos en el token.
// Efímeros: se derivan del User en cada login, nunca se persisten.
type SessionClaims struct {
	FullName string
	Email    string
	Rut      string
	Role     string
}

// Issuer firma claims de sesión con HMAC-SHA256 sobre un secreto compartido.
type Issuer struct {
	Iss       string        // "iss"
	Secret    []byte        // secreto compartido del servidor
	AccessTTL time.Duration // TTL fijo de los tokens (1 día)
}

// NewIssuer crea un Issuer con TTL por defecto de 24h.
func NewIssuer(iss string, secret []byte) *Issuer {
	return &Issuer{
		Iss:       iss,
		Secret:    secret,
		AccessTTL: 24 * time.Hour,
	}
}

// Issue firma las claims con exp = now + AccessTTL y devuelve el JWT compacto.
func (i *Issuer) Issue(c SessionClaims) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(i.AccessTTL)

	claims := jwtv5.MapClaims{
		"iss":       i.Iss,
		"sub":       c.Email,
		"full_name": c.FullName,
		"email":     c.Email,
		"rut":       c.Rut,
		"role":      c.Role,
		"iat":       now.Unix(),
		"nbf":       now.Unix(),
		"exp":       exp.Unix(),
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	tk.Header["typ"] = "JWT"

	signed, err := tk.SignedString(i.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse valida firma (HS256) y exp/nbf, y devuelve las claims de sesión.
// Retorna ErrTokenExpired si venció, ErrInvalidSignature si la firma no
// corresponde al secreto, ErrInvalidToken para cualquier otra malformación.
func (i *Issuer) Parse(token string) (SessionClaims, error) {
	keyfunc := func(t *jwtv5.Token) (any, error) {
		return i.Secret, nil
	}

	tok, err := jwtv5.Parse(token, keyfunc, jwtv5.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwtv5.ErrTokenExpired):
			return SessionClaims{}, ErrTokenExpired
		case errors.Is(err, jwtv5.ErrTokenSignatureInvalid):
			return SessionClaims{}, ErrInvalidSignature
		default:
			return SessionClaims{}, ErrInvalidToken
		}
	}
	if !tok.Valid {
		return SessionClaims{}, ErrInvalidToken
	}

	mc, ok := tok.Claims.(jwtv5.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidToken
	}

	// iss check (opcional)
	if i.Iss != "" {
		if iss, _ := mc["iss"].(string); iss != i.Iss {
			return SessionClaims{}, ErrInvalidToken
		}
	}

	out := SessionClaims{}
	out.FullName, _ = mc["full_name"].(string)
	out.Email, _ = mc["email"].(string)
	out.Rut, _ = mc["rut"].(string)
	out.Role, _ = mc["role"].(string)
	return out, nil
}
