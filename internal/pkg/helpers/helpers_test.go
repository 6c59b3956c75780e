package helpers_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"parking-service/internal/pkg/errors"
	"parking-service/internal/pkg/helpers"
	log_internal "parking-service/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationCalculation(t *testing.T) {
	assert.Zero(t, helpers.DurationCalculation(time.Now().Add(-time.Hour)))

	d := helpers.DurationCalculation(time.Now().Add(time.Hour))
	assert.InDelta(t, time.Hour.Seconds(), d.Seconds(), 5)
}

func TestRedirectURL(t *testing.T) {
	assert.Equal(t, "/", helpers.RedirectURL("/", nil))
	assert.Equal(t,
		"/confirm_checkout?vehicle_number=MH+12+AB&vehicle_owner=R%26D",
		helpers.RedirectURL("/confirm_checkout", map[string]string{"vehicle_number": "MH 12 AB", "vehicle_owner": "R&D"}),
	)
}

func TestRespError(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "typed client error", err: errors.NotFound("Vehicle not found."), expectedCode: fiber.StatusNotFound, expectedBody: "Vehicle not found."},
		{name: "typed server error", err: errors.InternalServerError("error find all slots"), expectedCode: fiber.StatusInternalServerError, expectedBody: helpers.StorageFailureMessage},
		{name: "untyped error", err: io.ErrUnexpectedEOF, expectedCode: fiber.StatusInternalServerError, expectedBody: helpers.StorageFailureMessage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return helpers.RespError(c, log_internal.Setup(), tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCode, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedBody, string(body))
		})
	}
}
