package usecases

import (
	"context"
	"fmt"
	"math"
	"time"

	"parking-service/internal/module/parking/fees"
	"parking-service/internal/module/parking/models/entity"
	"parking-service/internal/module/parking/models/request"
	"parking-service/internal/module/parking/models/response"
	"parking-service/internal/module/parking/repositories"
	"parking-service/internal/pkg/errors"
	"parking-service/internal/pkg/log"
	"parking-service/internal/pkg/messagestream"
	"parking-service/internal/pkg/metrics"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidDuration    = errors.BadRequest("Error: Minimum booking time is 1 hour.")
	ErrVehicleNotFound    = errors.NotFound("Vehicle not found.")
	ErrNotCurrentlyParked = errors.Conflict("This vehicle is not currently parked in the system.")
	ErrSlotNotFound       = errors.NotFound("Slot not found.")
	ErrSlotOccupied       = errors.Conflict("Slot is already occupied.")
	ErrNoPenaltyDue       = errors.Conflict("No penalty is due for this vehicle.")
	ErrPenaltyMismatch    = errors.BadRequest("Penalty amount does not match the amount due.")
)

// Layout is the number of slots per vehicle type created at provisioning.
// Car slots are numbered first.
type Layout struct {
	CarSlots  int
	BikeSlots int
}

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	publisher message.Publisher
	policy    fees.Policy
	layout    Layout
	now       func() time.Time
}

type Usecase interface {
	// startup
	Provision(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
	// http
	SearchAvailable(ctx context.Context, payload *request.SearchSlots) (response.AvailableSlots, error)
	BookSlot(ctx context.Context, payload *request.BookSlot) (response.Booking, error)
	Checkout(ctx context.Context, payload *request.Checkout) (response.CheckoutLookup, error)
	PayPenalty(ctx context.Context, payload *request.PayPenalty) (response.PenaltyPayment, error)
	ConfirmCheckout(ctx context.Context, payload *request.ConfirmCheckout) (response.CheckoutConfirmation, error)
	ShowStatus(ctx context.Context) ([]response.SlotStatus, error)
	ShowLedger(ctx context.Context) ([]response.LedgerEntry, error)
	// queue
	RecordLedgerEvent(ctx context.Context, payload *request.LedgerEvent) error
	// scheduler
	CheckOverstay(ctx context.Context, payload *request.OverstayCheck) error
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher, policy fees.Policy, layout Layout, now func() time.Time) Usecase {
	if now == nil {
		now = time.Now
	}
	return &usecase{
		repo:      repo,
		log:       log,
		publisher: publisher,
		policy:    policy,
		layout:    layout,
		now:       now,
	}
}

// Provision implements Usecase.
func (u *usecase) Provision(ctx context.Context) (int, error) {
	if err := u.repo.Migrate(ctx); err != nil {
		return 0, err
	}

	slots := make([]entity.ParkingSlot, 0, u.layout.CarSlots+u.layout.BikeSlots)
	for i := 1; i <= u.layout.CarSlots; i++ {
		slots = append(slots, entity.ParkingSlot{SlotNumber: i, VehicleType: entity.VehicleTypeCar})
	}
	for i := 1; i <= u.layout.BikeSlots; i++ {
		slots = append(slots, entity.ParkingSlot{SlotNumber: u.layout.CarSlots + i, VehicleType: entity.VehicleTypeBike})
	}

	inserted, err := u.repo.InsertSlotsIfEmpty(ctx, slots)
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		u.log.Info(ctx, fmt.Sprintf("provisioned %d parking slots", inserted))
	} else {
		u.log.Info(ctx, "parking slots already provisioned")
	}

	return inserted, nil
}

// Ping implements Usecase.
func (u *usecase) Ping(ctx context.Context) error {
	return u.repo.Ping(ctx)
}

// SearchAvailable implements Usecase.
func (u *usecase) SearchAvailable(ctx context.Context, payload *request.SearchSlots) (response.AvailableSlots, error) {
	slots, err := u.repo.FindAvailableSlots(ctx, entity.VehicleType(payload.VehicleType))
	if err != nil {
		return response.AvailableSlots{}, err
	}

	return response.AvailableSlots{
		VehicleType: payload.VehicleType,
		Slots:       slots,
	}, nil
}

// BookSlot implements Usecase.
func (u *usecase) BookSlot(ctx context.Context, payload *request.BookSlot) (response.Booking, error) {
	inTime, err := fees.ParseTime(payload.InTime)
	if err != nil {
		return response.Booking{}, errors.BadRequest("invalid in_time")
	}

	outTime, err := fees.ParseTime(payload.OutTime)
	if err != nil {
		return response.Booking{}, errors.BadRequest("invalid out_time")
	}

	if !u.policy.ValidWindow(inTime, outTime) {
		metrics.BookingsTotal.WithLabelValues("rejected").Inc()
		return response.Booking{}, ErrInvalidDuration
	}

	unlock, err := u.repo.LockSlot(ctx, payload.SlotNumber)
	if err != nil {
		return response.Booking{}, err
	}
	defer unlock()

	amount := u.policy.Amount(inTime, outTime)
	booking := entity.Booking{
		SlotNumber:    payload.SlotNumber,
		VehicleNumber: payload.VehicleNumber,
		VehicleOwner:  payload.VehicleOwner,
		InTime:        fees.FormatTime(inTime),
		OutTime:       fees.FormatTime(outTime),
		PaymentStatus: payload.PaymentMethod,
		Amount:        amount,
	}

	occupied, err := u.repo.OccupySlot(ctx, booking)
	if err != nil {
		metrics.BookingsTotal.WithLabelValues("error").Inc()
		return response.Booking{}, err
	}

	if !occupied {
		metrics.BookingsTotal.WithLabelValues("rejected").Inc()

		slot, err := u.repo.FindSlotByNumber(ctx, payload.SlotNumber)
		if err != nil {
			return response.Booking{}, err
		}
		if slot.ID == 0 {
			return response.Booking{}, ErrSlotNotFound
		}
		return response.Booking{}, ErrSlotOccupied
	}

	metrics.BookingsTotal.WithLabelValues("booked").Inc()
	u.publishLedgerEvent(ctx, request.LedgerEventSlotBooked, booking.SlotNumber, booking.VehicleNumber, booking.VehicleOwner, amount)
	u.scheduleOverstayCheck(ctx, booking.SlotNumber, booking.VehicleNumber, outTime)

	return response.Booking{
		SlotNumber: booking.SlotNumber,
		Amount:     amount,
	}, nil
}

// Checkout implements Usecase.
func (u *usecase) Checkout(ctx context.Context, payload *request.Checkout) (response.CheckoutLookup, error) {
	slot, err := u.repo.FindSlotByVehicle(ctx, payload.VehicleNumber, payload.VehicleOwner)
	if err != nil {
		return response.CheckoutLookup{}, err
	}

	if slot.ID == 0 {
		return response.CheckoutLookup{}, ErrVehicleNotFound
	}

	if !slot.IsOccupied {
		return response.CheckoutLookup{}, ErrNotCurrentlyParked
	}

	penalty, due, err := u.penaltyDue(ctx, slot)
	if err != nil {
		return response.CheckoutLookup{}, err
	}

	return response.CheckoutLookup{
		PenaltyRequired: due,
		Penalty:         penalty,
		SlotNumber:      slot.SlotNumber,
		VehicleNumber:   payload.VehicleNumber,
		VehicleOwner:    payload.VehicleOwner,
	}, nil
}

// PayPenalty implements Usecase. The penalty is derived again from the stored
// row; the submitted amount must match it.
func (u *usecase) PayPenalty(ctx context.Context, payload *request.PayPenalty) (response.PenaltyPayment, error) {
	slot, err := u.repo.FindOccupiedSlotByVehicle(ctx, payload.VehicleNumber, payload.VehicleOwner)
	if err != nil {
		return response.PenaltyPayment{}, err
	}

	if slot.ID == 0 {
		return response.PenaltyPayment{}, ErrVehicleNotFound
	}

	penalty, due, err := u.penaltyDue(ctx, slot)
	if err != nil {
		return response.PenaltyPayment{}, err
	}

	if !due {
		return response.PenaltyPayment{}, ErrNoPenaltyDue
	}

	if math.Abs(payload.PenaltyAmount-penalty) > 0.005 {
		return response.PenaltyPayment{}, ErrPenaltyMismatch
	}

	updated, err := u.repo.AddPenalty(ctx, slot.SlotNumber, penalty)
	if err != nil {
		return response.PenaltyPayment{}, err
	}

	if !updated {
		return response.PenaltyPayment{}, ErrNotCurrentlyParked
	}

	metrics.PenaltiesTotal.Inc()
	metrics.PenaltyAmountTotal.Add(penalty)
	u.publishLedgerEvent(ctx, request.LedgerEventPenaltyPaid, slot.SlotNumber, slot.VehicleNumber.String, slot.VehicleOwner.String, penalty)

	return response.PenaltyPayment{
		SlotNumber:    slot.SlotNumber,
		VehicleNumber: slot.VehicleNumber.String,
		VehicleOwner:  slot.VehicleOwner.String,
		Penalty:       penalty,
	}, nil
}

// ConfirmCheckout implements Usecase.
func (u *usecase) ConfirmCheckout(ctx context.Context, payload *request.ConfirmCheckout) (response.CheckoutConfirmation, error) {
	released, err := u.repo.ReleaseSlots(ctx, payload.VehicleNumber, payload.VehicleOwner)
	if err != nil {
		return response.CheckoutConfirmation{}, err
	}

	if released == 0 {
		return response.CheckoutConfirmation{}, ErrVehicleNotFound
	}

	metrics.CheckoutsTotal.Add(float64(released))
	u.publishLedgerEvent(ctx, request.LedgerEventSlotCheckedOut, 0, payload.VehicleNumber, payload.VehicleOwner, 0)

	return response.CheckoutConfirmation{
		VehicleNumber: payload.VehicleNumber,
		SlotsReleased: released,
	}, nil
}

// ShowStatus implements Usecase.
func (u *usecase) ShowStatus(ctx context.Context) ([]response.SlotStatus, error) {
	slots, err := u.repo.FindAllSlots(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.SlotStatus, 0, len(slots))
	for _, slot := range slots {
		resp = append(resp, response.SlotStatus{
			SlotNumber:    slot.SlotNumber,
			IsOccupied:    slot.IsOccupied,
			VehicleNumber: slot.VehicleNumber.String,
			InTime:        slot.InTime.String,
			OutTime:       slot.OutTime.String,
		})
	}
	return resp, nil
}

// ShowLedger implements Usecase.
func (u *usecase) ShowLedger(ctx context.Context) ([]response.LedgerEntry, error) {
	slots, err := u.repo.FindAllSlots(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.LedgerEntry, 0, len(slots))
	for _, slot := range slots {
		entry := response.LedgerEntry{
			SlotNumber:    slot.SlotNumber,
			VehicleType:   string(slot.VehicleType),
			VehicleNumber: slot.VehicleNumber.String,
			VehicleOwner:  slot.VehicleOwner.String,
			InTime:        slot.InTime.String,
			OutTime:       slot.OutTime.String,
			PaymentStatus: slot.PaymentStatus.String,
			IsOccupied:    slot.IsOccupied,
		}
		if slot.Amount.Valid {
			amount := slot.Amount.Float64
			entry.Amount = &amount
		}
		resp = append(resp, entry)
	}
	return resp, nil
}

// RecordLedgerEvent implements Usecase.
func (u *usecase) RecordLedgerEvent(ctx context.Context, payload *request.LedgerEvent) error {
	u.log.Info(ctx, fmt.Sprintf("ledger event %s", payload.Type),
		zap.String("event_id", payload.ID),
		zap.Int("slot_number", payload.SlotNumber),
		zap.String("vehicle_number", payload.VehicleNumber),
		zap.String("vehicle_owner", payload.VehicleOwner),
		zap.Float64("amount", payload.Amount),
		zap.Time("occurred_at", payload.OccurredAt),
	)
	return nil
}

// CheckOverstay implements Usecase. Only the booking that scheduled the check
// is reported; a slot rebooked in the meantime is left alone.
func (u *usecase) CheckOverstay(ctx context.Context, payload *request.OverstayCheck) error {
	slot, err := u.repo.FindSlotByNumber(ctx, payload.SlotNumber)
	if err != nil {
		return err
	}

	if !slot.IsOccupied || slot.VehicleNumber.String != payload.VehicleNumber || slot.OutTime.String != payload.OutTime {
		return nil
	}

	u.log.Warn(ctx, fmt.Sprintf("vehicle %s overstayed slot %d", payload.VehicleNumber, payload.SlotNumber),
		zap.String("out_time", payload.OutTime),
	)
	metrics.OverstaysTotal.Inc()
	u.publishLedgerEvent(ctx, request.LedgerEventSlotOverstayed, slot.SlotNumber, slot.VehicleNumber.String, slot.VehicleOwner.String, slot.Amount.Float64)

	return nil
}

func (u *usecase) penaltyDue(ctx context.Context, slot entity.ParkingSlot) (float64, bool, error) {
	plannedOut, err := fees.ParseTime(slot.OutTime.String)
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error parse out time of slot %d", slot.SlotNumber), err)
		return 0, false, errors.InternalServerError("error parse out time")
	}

	penalty, due := u.policy.PenaltyDue(u.now(), plannedOut, slot.Amount.Float64)
	return penalty, due, nil
}

// publishLedgerEvent never fails the caller; the ledger row is already written.
func (u *usecase) publishLedgerEvent(ctx context.Context, eventType request.LedgerEventType, slotNumber int, vehicleNumber, vehicleOwner string, amount float64) {
	event := request.LedgerEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		SlotNumber:    slotNumber,
		VehicleNumber: vehicleNumber,
		VehicleOwner:  vehicleOwner,
		Amount:        amount,
		OccurredAt:    u.now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal ledger event", err)
		return
	}

	if err := u.publisher.Publish(messagestream.TopicLedgerEvents, message.NewMessage(event.ID, payload)); err != nil {
		u.log.Error(ctx, fmt.Sprintf("error publish %s event", eventType), err)
	}
}

func (u *usecase) scheduleOverstayCheck(ctx context.Context, slotNumber int, vehicleNumber string, plannedOut time.Time) {
	payload, err := json.Marshal(request.OverstayCheck{
		SlotNumber:    slotNumber,
		VehicleNumber: vehicleNumber,
		OutTime:       fees.FormatTime(plannedOut),
	})
	if err != nil {
		u.log.Error(ctx, "error marshal overstay check", err)
		return
	}

	taskID, err := u.repo.SetTaskScheduler(ctx, plannedOut.Add(u.policy.GracePeriod), payload)
	if err != nil {
		u.log.Warn(ctx, fmt.Sprintf("overstay check for slot %d not scheduled", slotNumber), err)
		return
	}

	if taskID != "" {
		u.log.Debug(ctx, fmt.Sprintf("overstay check %s scheduled for slot %d", taskID, slotNumber))
	}
}
