package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	log_internal "parking-service/internal/pkg/log"
	"parking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(password string, requireSession bool) *fiber.App {
	m := &middleware.Middleware{
		Log:            log_internal.Setup(),
		Sessions:       session.New(),
		AdminPassword:  password,
		RequireSession: requireSession,
	}

	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendString("ledger") }
	app.Get("/admin", m.AdminGate, ok)
	app.Post("/admin", m.AdminGate, ok)
	return app
}

func login(t *testing.T, app *fiber.App, password string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/admin", strings.NewReader("password="+password))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestAdminGate(t *testing.T) {
	t.Run("correct password", func(t *testing.T) {
		app := newApp("secret", false)

		resp := login(t, app, "secret")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "ledger", body(t, resp))
	})

	t.Run("wrong password", func(t *testing.T) {
		app := newApp("secret", false)

		resp := login(t, app, "guess")
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Access Denied", body(t, resp))
	})

	t.Run("no password configured", func(t *testing.T) {
		app := newApp("", false)

		resp := login(t, app, "")
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("get without session requirement", func(t *testing.T) {
		app := newApp("secret", false)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("get requires session", func(t *testing.T) {
		app := newApp("secret", true)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Access Denied", body(t, resp))
	})

	t.Run("get with admin session", func(t *testing.T) {
		app := newApp("secret", true)

		loginResp := login(t, app, "secret")
		require.Equal(t, fiber.StatusOK, loginResp.StatusCode)
		cookie := loginResp.Header.Get(fiber.HeaderSetCookie)
		require.NotEmpty(t, cookie)

		req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
		req.Header.Set(fiber.HeaderCookie, strings.Split(cookie, ";")[0])

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
