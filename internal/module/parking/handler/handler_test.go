package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"parking-service/internal/module/parking/handler"
	"parking-service/internal/module/parking/mocks"
	"parking-service/internal/module/parking/models/request"
	"parking-service/internal/module/parking/models/response"
	"parking-service/internal/module/parking/usecases"
	"parking-service/internal/pkg/errors"
	"parking-service/internal/pkg/helpers"
	log_internal "parking-service/internal/pkg/log"
	"parking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h             *handler.ParkingHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
	p             *mockPublisher
)

type mockPublisher struct {
	topics []string
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.topics = append(m.topics, topic)
	return nil
}

func NewMockPublisher() *mockPublisher {
	return &mockPublisher{}
}

func setup() {
	ucm = &mocks.Usecase{}
	logMock := log_internal.Setup()
	validatorTest = validator.New()
	p = NewMockPublisher()
	h = &handler.ParkingHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
		Publish:   p,
		Sessions:  session.New(),
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	p = nil
	h = nil
	app = nil
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func decode(t *testing.T, resp *http.Response) helpers.Response {
	t.Helper()
	var out helpers.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSearchSlots(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/slots", h.SearchSlots)

		ucm.On("SearchAvailable", mock.Anything, &request.SearchSlots{VehicleType: "Car"}).
			Return(response.AvailableSlots{VehicleType: "Car", Slots: []int{1, 2}}, nil)

		resp, err := app.Test(postForm("/slots", url.Values{"vehicle_type": {"Car"}}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Available slots", decode(t, resp).Message)
	})

	t.Run("fully booked", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/slots", h.SearchSlots)

		ucm.On("SearchAvailable", mock.Anything, &request.SearchSlots{VehicleType: "Bike"}).
			Return(response.AvailableSlots{VehicleType: "Bike", Slots: []int{}}, nil)

		resp, err := app.Test(postForm("/slots", url.Values{"vehicle_type": {"Bike"}}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, handler.MessageNoSlots, decode(t, resp).Message)
	})

	t.Run("unknown vehicle type", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/slots", h.SearchSlots)

		resp, err := app.Test(postForm("/slots", url.Values{"vehicle_type": {"Truck"}}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		ucm.AssertNotCalled(t, "SearchAvailable", mock.Anything, mock.Anything)
	})
}

func TestBookSlot(t *testing.T) {
	form := url.Values{
		"vehicle_number": {"KA01"},
		"vehicle_owner":  {"Asha"},
		"slot_number":    {"3"},
		"in_time":        {"2024-01-01T10:00"},
		"out_time":       {"2024-01-01T12:00"},
		"payment_method": {"Cash"},
	}
	payload := &request.BookSlot{
		VehicleNumber: "KA01",
		VehicleOwner:  "Asha",
		SlotNumber:    3,
		InTime:        "2024-01-01T10:00",
		OutTime:       "2024-01-01T12:00",
		PaymentMethod: "Cash",
	}

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/book", h.BookSlot)

		ucm.On("BookSlot", mock.Anything, payload).Return(response.Booking{SlotNumber: 3, Amount: 100}, nil)

		resp, err := app.Test(postForm("/book", form))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		out := decode(t, resp)
		assert.Equal(t, "Slot booked successfully", out.Message)
		assert.Equal(t, map[string]interface{}{"slot_number": float64(3), "amount": float64(100)}, out.Data)
	})

	t.Run("minimum stay", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/book", h.BookSlot)

		ucm.On("BookSlot", mock.Anything, payload).Return(response.Booking{}, usecases.ErrInvalidDuration)

		resp, err := app.Test(postForm("/book", form))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Error: Minimum booking time is 1 hour.", readBody(t, resp))
	})

	t.Run("slot occupied", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/book", h.BookSlot)

		ucm.On("BookSlot", mock.Anything, payload).Return(response.Booking{}, usecases.ErrSlotOccupied)

		resp, err := app.Test(postForm("/book", form))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("storage failure", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/book", h.BookSlot)

		ucm.On("BookSlot", mock.Anything, payload).Return(response.Booking{}, errors.InternalServerError("error occupy slot"))

		resp, err := app.Test(postForm("/book", form))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, helpers.StorageFailureMessage, readBody(t, resp))
	})

	t.Run("missing fields", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/book", h.BookSlot)

		resp, err := app.Test(postForm("/book", url.Values{"vehicle_number": {"KA01"}}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCheckout(t *testing.T) {
	form := url.Values{"vehicle_number": {"KA 01"}, "vehicle_owner": {"Asha"}}
	payload := &request.Checkout{VehicleNumber: "KA 01", VehicleOwner: "Asha"}

	t.Run("redirects to confirm", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/checkout", h.Checkout)

		ucm.On("Checkout", mock.Anything, payload).Return(response.CheckoutLookup{
			SlotNumber:    4,
			VehicleNumber: "KA 01",
			VehicleOwner:  "Asha",
		}, nil)

		resp, err := app.Test(postForm("/checkout", form))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/confirm_checkout?vehicle_number=KA+01&vehicle_owner=Asha", resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("penalty required", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/checkout", h.Checkout)

		ucm.On("Checkout", mock.Anything, payload).Return(response.CheckoutLookup{
			PenaltyRequired: true,
			Penalty:         100,
			SlotNumber:      4,
			VehicleNumber:   "KA 01",
			VehicleOwner:    "Asha",
		}, nil)

		resp, err := app.Test(postForm("/checkout", form))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		out := decode(t, resp)
		data := out.Data.(map[string]interface{})
		assert.Equal(t, true, data["penalty_required"])
		assert.Equal(t, float64(100), data["penalty"])
	})

	t.Run("vehicle not found", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/checkout", h.Checkout)

		ucm.On("Checkout", mock.Anything, payload).Return(response.CheckoutLookup{}, usecases.ErrVehicleNotFound)

		resp, err := app.Test(postForm("/checkout", form))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Vehicle not found.", readBody(t, resp))
	})

	t.Run("not currently parked", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/checkout", h.Checkout)

		ucm.On("Checkout", mock.Anything, payload).Return(response.CheckoutLookup{}, usecases.ErrNotCurrentlyParked)

		resp, err := app.Test(postForm("/checkout", form))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Equal(t, "This vehicle is not currently parked in the system.", readBody(t, resp))
	})
}

func TestPayPenalty(t *testing.T) {
	t.Run("redirects with owner", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/pay_penalty", h.PayPenalty)

		ucm.On("PayPenalty", mock.Anything, &request.PayPenalty{VehicleNumber: "KA01", PenaltyAmount: 100}).
			Return(response.PenaltyPayment{SlotNumber: 4, VehicleNumber: "KA01", VehicleOwner: "Asha", Penalty: 100}, nil)

		resp, err := app.Test(postForm("/pay_penalty", url.Values{"vehicle_number": {"KA01"}, "penalty_amount": {"100"}}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/confirm_checkout?vehicle_number=KA01&vehicle_owner=Asha", resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("mismatch", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/pay_penalty", h.PayPenalty)

		ucm.On("PayPenalty", mock.Anything, mock.Anything).Return(response.PenaltyPayment{}, usecases.ErrPenaltyMismatch)

		resp, err := app.Test(postForm("/pay_penalty", url.Values{"vehicle_number": {"KA01"}, "penalty_amount": {"5"}}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing amount", func(t *testing.T) {
		setup()
		defer teardown()
		app.Post("/pay_penalty", h.PayPenalty)

		resp, err := app.Test(postForm("/pay_penalty", url.Values{"vehicle_number": {"KA01"}}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestConfirmCheckout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()
		app.Get("/confirm_checkout", h.ConfirmCheckout)

		ucm.On("ConfirmCheckout", mock.Anything, &request.ConfirmCheckout{VehicleNumber: "KA01", VehicleOwner: "Asha"}).
			Return(response.CheckoutConfirmation{VehicleNumber: "KA01", SlotsReleased: 1}, nil)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/confirm_checkout?vehicle_number=KA01&vehicle_owner=Asha", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, handler.MessageCheckoutComplete, decode(t, resp).Message)
	})

	t.Run("missing owner", func(t *testing.T) {
		setup()
		defer teardown()
		app.Get("/confirm_checkout", h.ConfirmCheckout)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/confirm_checkout?vehicle_number=KA01", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestViews(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		setup()
		defer teardown()
		app.Get("/status", h.ShowStatus)

		ucm.On("ShowStatus", mock.Anything).Return([]response.SlotStatus{{SlotNumber: 1}, {SlotNumber: 2, IsOccupied: true}}, nil)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/status", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Len(t, decode(t, resp).Data, 2)
	})

	t.Run("ledger storage failure", func(t *testing.T) {
		setup()
		defer teardown()
		app.Get("/admin", h.ShowLedger)

		ucm.On("ShowLedger", mock.Anything).Return(nil, errors.InternalServerError("error find all slots"))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, helpers.StorageFailureMessage, readBody(t, resp))
	})
}

func TestLogout(t *testing.T) {
	setup()
	defer teardown()
	app.Get("/logout", h.Logout)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		setup()
		defer teardown()
		app.Get("/health", h.Health)

		ucm.On("Ping", mock.Anything).Return(nil)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("database down", func(t *testing.T) {
		setup()
		defer teardown()
		app.Get("/health", h.Health)

		ucm.On("Ping", mock.Anything).Return(context.DeadlineExceeded)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestConsumeLedgerEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		event := request.LedgerEvent{ID: "evt-1", Type: request.LedgerEventSlotBooked, SlotNumber: 3, VehicleNumber: "KA01"}
		payload, _ := json.Marshal(event)
		ucm.On("RecordLedgerEvent", mock.Anything, mock.MatchedBy(func(e *request.LedgerEvent) bool {
			return e.ID == "evt-1" && e.Type == request.LedgerEventSlotBooked
		})).Return(nil)

		err := h.ConsumeLedgerEvent(message.NewMessage(watermill.NewUUID(), payload))
		assert.NoError(t, err)
		assert.Empty(t, p.topics)
	})

	t.Run("malformed payload is poisoned", func(t *testing.T) {
		setup()
		defer teardown()

		err := h.ConsumeLedgerEvent(message.NewMessage(watermill.NewUUID(), []byte("not json")))
		assert.NoError(t, err)
		assert.Equal(t, []string{messagestream.TopicLedgerPoisoned}, p.topics)
		ucm.AssertNotCalled(t, "RecordLedgerEvent", mock.Anything, mock.Anything)
	})
}

func TestCheckOverstay(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := &request.OverstayCheck{SlotNumber: 4, VehicleNumber: "KA01", OutTime: "2024-01-01T12:00"}
		b, _ := json.Marshal(payload)
		ucm.On("CheckOverstay", mock.Anything, payload).Return(nil)

		err := h.CheckOverstay(context.Background(), asynq.NewTask("parking:overstay_check", b))
		assert.NoError(t, err)
	})

	t.Run("invalid payload", func(t *testing.T) {
		setup()
		defer teardown()

		err := h.CheckOverstay(context.Background(), asynq.NewTask("parking:overstay_check", []byte(`{"slot_number":4}`)))
		assert.Error(t, err)
		ucm.AssertNotCalled(t, "CheckOverstay", mock.Anything, mock.Anything)
	})
}
