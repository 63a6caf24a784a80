package email

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	emailx "github.com/pymesoft/gestion/internal/email"
	dto "github.com/pymesoft/gestion/internal/http/dto/email"
	svc "github.com/pymesoft/gestion/internal/http/services/email"
)

type errBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

// fakeSender permite forzar fallas de transporte en el controller test.
type fakeSender struct {
	calls int
	fail  error
}

func (f *fakeSender) Send(to, subject, htmlBody, textBody string) error {
	f.calls++
	return f.fail
}

func newController(fs *fakeSender) *SendController {
	d := emailx.NewDispatcher(fs, "no-reply@pymesoft.cl", "Gestión")
	return NewSendController(svc.NewSendService(d))
}

func post(c *SendController, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/email/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.Send(rec, req)
	return rec
}

func TestSend_OK(t *testing.T) {
	fs := &fakeSender{}
	c := newController(fs)

	rec := post(c, `{"email":"cliente@example.cl","subject":"Factura disponible","message":"Su factura ya está disponible"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.SendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, `"Gestión" <no-reply@pymesoft.cl>`, resp.From)
	require.Equal(t, "cliente@example.cl", resp.To)
	require.Equal(t, "Factura disponible", resp.Subject)
	require.Equal(t, 1, fs.calls)
}

func TestSend_ValidationFailure(t *testing.T) {
	fs := &fakeSender{}
	c := newController(fs)

	rec := post(c, `{"email":"cliente@example.cl","subject":"ab","message":"mensaje válido"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Contains(t, body.Error, "al menos 3")
	// la validación corta antes del transporte
	require.Equal(t, 0, fs.calls)
}

func TestSend_UnknownFieldRejected(t *testing.T) {
	fs := &fakeSender{}
	c := newController(fs)

	rec := post(c, `{"email":"cliente@example.cl","subject":"Hola","message":"mensaje válido","cc":"otro@x.cl"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 0, fs.calls)
}

func TestSend_TransportFailure(t *testing.T) {
	fs := &fakeSender{fail: errors.New("dial tcp: connection refused")}
	c := newController(fs)

	rec := post(c, `{"email":"cliente@example.cl","subject":"Hola","message":"mensaje válido"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, 1, fs.calls)
}

func TestSend_MethodNotAllowed(t *testing.T) {
	c := newController(&fakeSender{})

	req := httptest.NewRequest(http.MethodGet, "/v1/email/send", nil)
	rec := httptest.NewRecorder()
	c.Send(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
