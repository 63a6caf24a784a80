// CLI de operación contra la API de gestión.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func (c *client) postJSON(path string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	status, body, err := c.do(http.MethodPost, path, b)
	if err != nil {
		return err
	}
	c.print(status, body)
	if status >= 400 {
		return fmt.Errorf("status=%d", status)
	}
	return nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func main() {
	var (
		baseURL = envOr("GESTION_URL", "http://localhost:8080")
		out     = envOr("GESTION_OUT", "text")
	)

	root := &cobra.Command{
		Use:   "gestionctl",
		Short: "CLI de operación para la API de gestión",
	}
	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base de la API (env GESTION_URL)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	cl := &client{OutFormat: out, HTTP: &http.Client{Timeout: 30 * time.Second}}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cl.BaseURL = baseURL
		cl.OutFormat = out
	}

	// gestionctl login <email> <password>
	loginCmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Inicia sesión y muestra el access token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.postJSON("/v1/auth/login", map[string]string{
				"email":    args[0],
				"password": args[1],
			})
		},
	}

	// gestionctl register
	var (
		regFullName string
		regRut      string
		regEmail    string
		regPassword string
	)
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Registra un nuevo usuario",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.postJSON("/v1/auth/register", map[string]string{
				"fullName": regFullName,
				"rut":      regRut,
				"email":    regEmail,
				"password": regPassword,
			})
		},
	}
	registerCmd.Flags().StringVar(&regFullName, "full-name", "", "nombre completo")
	registerCmd.Flags().StringVar(&regRut, "rut", "", "RUT con formato NN.NNN.NNN-D")
	registerCmd.Flags().StringVar(&regEmail, "email", "", "email del usuario")
	registerCmd.Flags().StringVar(&regPassword, "password", "", "contraseña")
	_ = registerCmd.MarkFlagRequired("full-name")
	_ = registerCmd.MarkFlagRequired("rut")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	// gestionctl email send
	var (
		sendTo      string
		sendSubject string
		sendMessage string
	)
	emailSendCmd := &cobra.Command{
		Use:   "send",
		Short: "Envía un correo transaccional",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.postJSON("/v1/email/send", map[string]string{
				"email":   sendTo,
				"subject": sendSubject,
				"message": sendMessage,
			})
		},
	}
	emailSendCmd.Flags().StringVar(&sendTo, "to", "", "destinatario")
	emailSendCmd.Flags().StringVar(&sendSubject, "subject", "", "asunto (3-255 caracteres)")
	emailSendCmd.Flags().StringVar(&sendMessage, "message", "", "cuerpo (mínimo 5 caracteres)")
	_ = emailSendCmd.MarkFlagRequired("to")
	_ = emailSendCmd.MarkFlagRequired("subject")
	_ = emailSendCmd.MarkFlagRequired("message")

	emailCmd := &cobra.Command{Use: "email", Short: "Operaciones de correo"}
	emailCmd.AddCommand(emailSendCmd)

	// gestionctl health
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Consulta /readyz",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do(http.MethodGet, "/readyz", nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			if status >= 400 {
				return fmt.Errorf("status=%d", status)
			}
			return nil
		},
	}

	root.AddCommand(loginCmd, registerCmd, emailCmd, healthCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
