package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	dto "github.com/pymesoft/gestion/internal/http/dto/auth"
	svc "github.com/pymesoft/gestion/internal/http/services/auth"
	jwtx "github.com/pymesoft/gestion/internal/jwt"
	"github.com/pymesoft/gestion/internal/security/password"
	memstore "github.com/pymesoft/gestion/internal/store/memory"
)

var testHashParams = password.Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, KeyLen: 32}

// envelope de error que consume el frontend
type errBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

func newTestControllers(t *testing.T) *Controllers {
	t.Helper()
	repo := memstore.NewUserRepo()
	issuer := jwtx.NewIssuer("gestion", []byte("secreto-de-test-suficientemente-largo"))
	return NewControllers(svc.Services{
		Login:    svc.NewLoginService(svc.LoginDeps{Users: repo, Issuer: issuer}),
		Register: svc.NewRegisterService(svc.RegisterDeps{Users: repo, HashParams: testHashParams}),
	})
}

func postJSON(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func registerUser(t *testing.T, c *Controllers) {
	t.Helper()
	rec := postJSON(c.Register.Register, "/v1/auth/register",
		`{"fullName":"Juana Pérez","rut":"12.345.678-5","email":"juana@example.cl","password":"clave-segura"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRegister_Created(t *testing.T) {
	c := newTestControllers(t)

	rec := postJSON(c.Register.Register, "/v1/auth/register",
		`{"fullName":"Juana Pérez","rut":"12.345.678-5","email":"juana@example.cl","password":"clave-segura"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.User.ID)
	require.Equal(t, "juana@example.cl", resp.User.Email)
	require.Equal(t, "user", resp.User.Role)

	// el hash jamás aparece en la respuesta
	require.NotContains(t, rec.Body.String(), "password")
	require.NotContains(t, rec.Body.String(), "argon2id")
}

func TestRegister_DuplicateConflict(t *testing.T) {
	c := newTestControllers(t)
	registerUser(t, c)

	rec := postJSON(c.Register.Register, "/v1/auth/register",
		`{"fullName":"Otra Persona","rut":"11.111.111-1","email":"juana@example.cl","password":"otra-clave"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "El usuario ya existe", body.Error)
}

func TestRegister_UnknownFieldRejected(t *testing.T) {
	c := newTestControllers(t)

	rec := postJSON(c.Register.Register, "/v1/auth/register",
		`{"fullName":"Juana","rut":"12.345.678-5","email":"juana@example.cl","password":"x","admin":true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
}

func TestRegister_TrailingDataRejected(t *testing.T) {
	c := newTestControllers(t)

	rec := postJSON(c.Register.Register, "/v1/auth/register",
		`{"fullName":"Juana","rut":"12.345.678-5","email":"juana@example.cl","password":"x"}{"extra":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InvalidRut(t *testing.T) {
	c := newTestControllers(t)

	rec := postJSON(c.Register.Register, "/v1/auth/register",
		`{"fullName":"Juana","rut":"12.345.678-4","email":"juana@example.cl","password":"clave"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestLogin_OK(t *testing.T) {
	c := newTestControllers(t)
	registerUser(t, c)

	rec := postJSON(c.Login.Login, "/v1/auth/login",
		`{"email":"juana@example.cl","password":"clave-segura"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, int64(24*60*60), resp.ExpiresIn)
}

func TestLogin_UnknownEmailMessage(t *testing.T) {
	c := newTestControllers(t)

	rec := postJSON(c.Login.Login, "/v1/auth/login",
		`{"email":"nadie@example.cl","password":"algo"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "El email ingresado no existe.", body.Error)
}

func TestLogin_WrongPasswordMessage(t *testing.T) {
	c := newTestControllers(t)
	registerUser(t, c)

	rec := postJSON(c.Login.Login, "/v1/auth/login",
		`{"email":"juana@example.cl","password":"incorrecta"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "La contraseña ingresada es incorrecta", body.Error)
}

func TestLogin_InvalidJSON(t *testing.T) {
	c := newTestControllers(t)

	rec := postJSON(c.Login.Login, "/v1/auth/login", `{"email": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_MethodNotAllowed(t *testing.T) {
	c := newTestControllers(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	c.Login.Login(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "POST", rec.Header().Get("Allow"))
}

// Las fallas internas del service no filtran detalle al cliente.
func TestLogin_InternalErrorIsOpaque(t *testing.T) {
	c := NewControllers(svc.Services{
		Login: failingLogin{},
	})

	rec := postJSON(c.Login.Login, "/v1/auth/login",
		`{"email":"a@b.cl","password":"x"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Error interno del servidor", body.Error)
	require.NotContains(t, rec.Body.String(), "pgx")
}

type failingLogin struct{}

func (failingLogin) Login(context.Context, dto.LoginRequest) (*dto.LoginResult, error) {
	return nil, svc.ErrLoginInternal
}
