package middleware

import (
	"crypto/subtle"
	"fmt"

	"parking-service/internal/module/parking/models/request"
	"parking-service/internal/pkg/errors"
	"parking-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// SessionKeyAdmin marks a session that passed the admin password check.
const SessionKeyAdmin = "admin"

var ErrAccessDenied = errors.Forbidden("Access Denied")

type Middleware struct {
	Log            *otelzap.Logger
	Sessions       *session.Store
	AdminPassword  string
	RequireSession bool
}

// AdminGate guards the admin ledger view. A POST must carry the admin
// password and marks the session on success. A GET passes unless
// RequireSession is set, in which case the session must be marked.
func (m *Middleware) AdminGate(ctx *fiber.Ctx) error {
	if ctx.Method() == fiber.MethodPost {
		return m.adminLogin(ctx)
	}

	if !m.RequireSession {
		return ctx.Next()
	}

	sess, err := m.Sessions.Get(ctx)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get session: %v", err))
		return helpers.RespError(ctx, m.Log, err)
	}

	if admin, _ := sess.Get(SessionKeyAdmin).(bool); !admin {
		m.Log.Ctx(ctx.UserContext()).Warn("admin view requested without admin session")
		return helpers.RespError(ctx, m.Log, ErrAccessDenied)
	}

	return ctx.Next()
}

func (m *Middleware) adminLogin(ctx *fiber.Ctx) error {
	var req request.AdminLogin
	if err := ctx.BodyParser(&req); err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, m.Log, errors.BadRequest("error parse request"))
	}

	if !m.passwordMatches(req.Password) {
		m.Log.Ctx(ctx.UserContext()).Warn("admin login rejected")
		return helpers.RespError(ctx, m.Log, ErrAccessDenied)
	}

	sess, err := m.Sessions.Get(ctx)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get session: %v", err))
		return helpers.RespError(ctx, m.Log, err)
	}

	sess.Set(SessionKeyAdmin, true)
	if err := sess.Save(); err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error save session: %v", err))
		return helpers.RespError(ctx, m.Log, err)
	}

	return ctx.Next()
}

// An unset password never matches.
func (m *Middleware) passwordMatches(submitted string) bool {
	if m.AdminPassword == "" || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(m.AdminPassword)) == 1
}
