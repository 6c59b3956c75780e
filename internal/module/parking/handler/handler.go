package handler

import (
	"context"
	"fmt"

	"parking-service/internal/module/parking/models/entity"
	"parking-service/internal/module/parking/models/request"
	"parking-service/internal/module/parking/usecases"
	"parking-service/internal/pkg/errors"
	"parking-service/internal/pkg/helpers"
	"parking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	MessageNoSlots          = "No available slots. All slots are booked."
	MessageCheckoutComplete = "Checkout successful! Slot is now free."
)

type ParkingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
	Sessions  *session.Store
}

func (h *ParkingHandler) Index(ctx *fiber.Ctx) error {
	routes := map[string]string{
		"search_slots": "POST /slots",
		"book":         "POST /book",
		"status":       "GET /status",
		"checkout":     "POST /checkout",
		"admin":        "POST /admin",
	}
	return helpers.RespSuccess(ctx, h.Log, routes, "Welcome to the parking ledger")
}

func (h *ParkingHandler) ShowSearchForm(ctx *fiber.Ctx) error {
	vehicleTypes := []entity.VehicleType{entity.VehicleTypeCar, entity.VehicleTypeBike}
	return helpers.RespSuccess(ctx, h.Log, map[string]interface{}{"vehicle_types": vehicleTypes}, "Search available slots by vehicle type")
}

func (h *ParkingHandler) SearchSlots(ctx *fiber.Ctx) error {
	var req request.SearchSlots
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.SearchAvailable(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error search available slots: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if len(resp.Slots) == 0 {
		return helpers.RespSuccess(ctx, h.Log, resp, MessageNoSlots)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Available slots")
}

func (h *ParkingHandler) BookSlot(ctx *fiber.Ctx) error {
	var req request.BookSlot
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.BookSlot(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error book slot: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Slot booked successfully")
}

func (h *ParkingHandler) ShowStatus(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowStatus(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Parking status")
}

// ShowLedger sits behind middleware.AdminGate.
func (h *ParkingHandler) ShowLedger(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowLedger(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show ledger: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Parking ledger")
}

func (h *ParkingHandler) ShowCheckoutForm(ctx *fiber.Ctx) error {
	fields := []string{"vehicle_number", "vehicle_owner"}
	return helpers.RespSuccess(ctx, h.Log, map[string]interface{}{"fields": fields}, "Enter vehicle number and owner to check out")
}

// Checkout either asks for the overtime penalty or sends the client on to
// finalize the checkout.
func (h *ParkingHandler) Checkout(ctx *fiber.Ctx) error {
	var req request.Checkout
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.Checkout(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error checkout: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if resp.PenaltyRequired {
		return helpers.RespSuccess(ctx, h.Log, resp, fmt.Sprintf("Overtime penalty of %.2f is due before checkout", resp.Penalty))
	}

	return ctx.Redirect(helpers.RedirectURL("/confirm_checkout", map[string]string{
		"vehicle_number": resp.VehicleNumber,
		"vehicle_owner":  resp.VehicleOwner,
	}), fiber.StatusSeeOther)
}

func (h *ParkingHandler) PayPenalty(ctx *fiber.Ctx) error {
	var req request.PayPenalty
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.PayPenalty(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error pay penalty: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return ctx.Redirect(helpers.RedirectURL("/confirm_checkout", map[string]string{
		"vehicle_number": resp.VehicleNumber,
		"vehicle_owner":  resp.VehicleOwner,
	}), fiber.StatusSeeOther)
}

func (h *ParkingHandler) ConfirmCheckout(ctx *fiber.Ctx) error {
	var req request.ConfirmCheckout
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.ConfirmCheckout(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error confirm checkout: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, MessageCheckoutComplete)
}

func (h *ParkingHandler) Logout(ctx *fiber.Ctx) error {
	sess, err := h.Sessions.Get(ctx)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get session: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := sess.Destroy(); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error destroy session: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return ctx.Redirect("/", fiber.StatusSeeOther)
}

func (h *ParkingHandler) Health(ctx *fiber.Ctx) error {
	if err := h.Usecase.Ping(ctx.UserContext()); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error ping database: %v", err))
		return ctx.Status(fiber.StatusServiceUnavailable).SendString("Service Unavailable")
	}

	return ctx.Status(fiber.StatusOK).SendString("OK")
}

// ConsumeLedgerEvent audits one ledger event. Undecodable payloads go straight
// to the poison topic; usecase failures are returned so the router retries.
func (h *ParkingHandler) ConsumeLedgerEvent(msg *message.Message) error {
	var req request.LedgerEvent
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.publishPoisoned(msg, err)
		return nil
	}

	if err := h.Usecase.RecordLedgerEvent(msg.Context(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error record ledger event: %v", err))
		return err
	}

	return nil
}

func (h *ParkingHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: messagestream.TopicLedgerEvents,
		ErrorMsg:    cause.Error(),
		Payload:     string(msg.Payload),
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish(messagestream.TopicLedgerPoisoned, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

func (h *ParkingHandler) CheckOverstay(ctx context.Context, t *asynq.Task) error {
	var req request.OverstayCheck
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.CheckOverstay(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error check overstay: %v", err))
		return err
	}

	return nil
}
