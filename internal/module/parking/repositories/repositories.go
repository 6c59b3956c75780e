package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"parking-service/internal/module/parking/models/entity"
	"parking-service/internal/pkg/errors"
	"parking-service/internal/pkg/helpers"
	"parking-service/internal/pkg/log"
	"parking-service/internal/pkg/scheduler"

	"github.com/go-redsync/redsync/v4"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
)

const slotColumns = `id, slot_number, vehicle_type, is_occupied, vehicle_number, vehicle_owner, in_time, out_time, payment_status, amount`

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	asynqClient *asynq.Client
	redsync     *redsync.Redsync
	lockExpiry  time.Duration
}

type Repositories interface {
	// db
	Migrate(ctx context.Context) error
	InsertSlotsIfEmpty(ctx context.Context, slots []entity.ParkingSlot) (int, error)
	FindAvailableSlots(ctx context.Context, vehicleType entity.VehicleType) ([]int, error)
	FindSlotByNumber(ctx context.Context, slotNumber int) (entity.ParkingSlot, error)
	FindSlotByVehicle(ctx context.Context, vehicleNumber, vehicleOwner string) (entity.ParkingSlot, error)
	FindOccupiedSlotByVehicle(ctx context.Context, vehicleNumber, vehicleOwner string) (entity.ParkingSlot, error)
	FindAllSlots(ctx context.Context) ([]entity.ParkingSlot, error)
	OccupySlot(ctx context.Context, booking entity.Booking) (bool, error)
	AddPenalty(ctx context.Context, slotNumber int, penalty float64) (bool, error)
	ReleaseSlots(ctx context.Context, vehicleNumber, vehicleOwner string) (int64, error)
	Ping(ctx context.Context) error
	// redis
	LockSlot(ctx context.Context, slotNumber int) (func(), error)
	// scheduler
	SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error)
}

// New wires the ledger repository. asynqClient and rs may be nil when Redis is
// disabled; scheduling and locking then become no-ops.
func New(db *sqlx.DB, log log.Logger, asynqClient *asynq.Client, rs *redsync.Redsync, lockExpiry time.Duration) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		asynqClient: asynqClient,
		redsync:     rs,
		lockExpiry:  lockExpiry,
	}
}

// Migrate implements Repositories.
func (r *repositories) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaFor(r.db.DriverName())); err != nil {
		r.log.Error(ctx, "error create parking_slots table", err)
		return errors.InternalServerError("error create parking_slots table")
	}
	return nil
}

// InsertSlotsIfEmpty implements Repositories.
func (r *repositories) InsertSlotsIfEmpty(ctx context.Context, slots []entity.ParkingSlot) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return 0, errors.InternalServerError("error starting transaction")
	}

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM parking_slots`); err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error count parking slots", err)
		return 0, errors.InternalServerError("error count parking slots")
	}

	if count > 0 {
		tx.Rollback()
		return 0, nil
	}

	query := tx.Rebind(`INSERT INTO parking_slots (slot_number, vehicle_type, is_occupied) VALUES (?, ?, ?)`)
	for _, slot := range slots {
		if _, err := tx.ExecContext(ctx, query, slot.SlotNumber, slot.VehicleType, false); err != nil {
			tx.Rollback()
			r.log.Error(ctx, fmt.Sprintf("error insert parking slot %d", slot.SlotNumber), err)
			return 0, errors.InternalServerError("error insert parking slot")
		}
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return 0, errors.InternalServerError("error committing transaction")
	}

	return len(slots), nil
}

// FindAvailableSlots implements Repositories.
func (r *repositories) FindAvailableSlots(ctx context.Context, vehicleType entity.VehicleType) ([]int, error) {
	query := r.db.Rebind(`SELECT slot_number FROM parking_slots WHERE vehicle_type = ? AND is_occupied = ? ORDER BY slot_number ASC`)

	slots := []int{}
	if err := r.db.SelectContext(ctx, &slots, query, vehicleType, false); err != nil {
		r.log.Error(ctx, "error find available slots", err)
		return nil, errors.InternalServerError("error find available slots")
	}
	return slots, nil
}

// FindSlotByNumber implements Repositories.
func (r *repositories) FindSlotByNumber(ctx context.Context, slotNumber int) (entity.ParkingSlot, error) {
	query := r.db.Rebind(`SELECT ` + slotColumns + ` FROM parking_slots WHERE slot_number = ?`)

	var slot entity.ParkingSlot
	err := r.db.GetContext(ctx, &slot, query, slotNumber)
	if err == sql.ErrNoRows {
		return entity.ParkingSlot{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find slot by number", err)
		return entity.ParkingSlot{}, errors.InternalServerError("error find slot by number")
	}
	return slot, nil
}

// FindSlotByVehicle implements Repositories. The compound key is not unique;
// occupied rows win, then the lowest slot number.
func (r *repositories) FindSlotByVehicle(ctx context.Context, vehicleNumber, vehicleOwner string) (entity.ParkingSlot, error) {
	query := r.db.Rebind(`SELECT ` + slotColumns + ` FROM parking_slots
		WHERE vehicle_number = ? AND vehicle_owner = ?
		ORDER BY is_occupied DESC, slot_number ASC
		LIMIT 1`)

	var slot entity.ParkingSlot
	err := r.db.GetContext(ctx, &slot, query, vehicleNumber, vehicleOwner)
	if err == sql.ErrNoRows {
		return entity.ParkingSlot{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find slot by vehicle", err)
		return entity.ParkingSlot{}, errors.InternalServerError("error find slot by vehicle")
	}
	return slot, nil
}

// FindOccupiedSlotByVehicle implements Repositories. An empty owner matches
// any owner.
func (r *repositories) FindOccupiedSlotByVehicle(ctx context.Context, vehicleNumber, vehicleOwner string) (entity.ParkingSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM parking_slots WHERE vehicle_number = ? AND is_occupied = ?`
	args := []interface{}{vehicleNumber, true}
	if vehicleOwner != "" {
		query += ` AND vehicle_owner = ?`
		args = append(args, vehicleOwner)
	}
	query += ` ORDER BY slot_number ASC LIMIT 1`

	var slot entity.ParkingSlot
	err := r.db.GetContext(ctx, &slot, r.db.Rebind(query), args...)
	if err == sql.ErrNoRows {
		return entity.ParkingSlot{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find occupied slot by vehicle", err)
		return entity.ParkingSlot{}, errors.InternalServerError("error find occupied slot by vehicle")
	}
	return slot, nil
}

// FindAllSlots implements Repositories.
func (r *repositories) FindAllSlots(ctx context.Context) ([]entity.ParkingSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM parking_slots ORDER BY slot_number ASC`

	slots := []entity.ParkingSlot{}
	if err := r.db.SelectContext(ctx, &slots, query); err != nil {
		r.log.Error(ctx, "error find all slots", err)
		return nil, errors.InternalServerError("error find all slots")
	}
	return slots, nil
}

// OccupySlot implements Repositories. The update only applies to a free slot,
// so two bookings racing for the same slot cannot both succeed.
func (r *repositories) OccupySlot(ctx context.Context, booking entity.Booking) (bool, error) {
	query := r.db.Rebind(`UPDATE parking_slots
		SET is_occupied = ?, vehicle_number = ?, vehicle_owner = ?, in_time = ?, out_time = ?, payment_status = ?, amount = ?
		WHERE slot_number = ? AND is_occupied = ?`)

	result, err := r.db.ExecContext(ctx, query,
		true, booking.VehicleNumber, booking.VehicleOwner, booking.InTime, booking.OutTime,
		booking.PaymentStatus, booking.Amount, booking.SlotNumber, false,
	)
	if err != nil {
		r.log.Error(ctx, "error occupy slot", err)
		return false, errors.InternalServerError("error occupy slot")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		r.log.Error(ctx, "error occupy slot rows affected", err)
		return false, errors.InternalServerError("error occupy slot")
	}
	return rows > 0, nil
}

// AddPenalty implements Repositories.
func (r *repositories) AddPenalty(ctx context.Context, slotNumber int, penalty float64) (bool, error) {
	query := r.db.Rebind(`UPDATE parking_slots
		SET payment_status = ?, amount = COALESCE(amount, 0) + ?
		WHERE slot_number = ? AND is_occupied = ?`)

	result, err := r.db.ExecContext(ctx, query, entity.PaymentStatusPaid, penalty, slotNumber, true)
	if err != nil {
		r.log.Error(ctx, "error add penalty", err)
		return false, errors.InternalServerError("error add penalty")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		r.log.Error(ctx, "error add penalty rows affected", err)
		return false, errors.InternalServerError("error add penalty")
	}
	return rows > 0, nil
}

// ReleaseSlots implements Repositories. Every row matching the compound key is
// cleared.
func (r *repositories) ReleaseSlots(ctx context.Context, vehicleNumber, vehicleOwner string) (int64, error) {
	query := r.db.Rebind(`UPDATE parking_slots
		SET is_occupied = ?, vehicle_number = NULL, vehicle_owner = NULL, in_time = NULL, out_time = NULL, payment_status = NULL, amount = NULL
		WHERE vehicle_number = ? AND vehicle_owner = ?`)

	result, err := r.db.ExecContext(ctx, query, false, vehicleNumber, vehicleOwner)
	if err != nil {
		r.log.Error(ctx, "error release slots", err)
		return 0, errors.InternalServerError("error release slots")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		r.log.Error(ctx, "error release slots rows affected", err)
		return 0, errors.InternalServerError("error release slots")
	}
	return rows, nil
}

// Ping implements Repositories.
func (r *repositories) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// LockSlot implements Repositories.
func (r *repositories) LockSlot(ctx context.Context, slotNumber int) (func(), error) {
	if r.redsync == nil {
		return func() {}, nil
	}

	mutex := r.redsync.NewMutex(
		fmt.Sprintf("parking:slot:%d", slotNumber),
		redsync.WithExpiry(r.lockExpiry),
		redsync.WithTries(8),
	)
	if err := mutex.LockContext(ctx); err != nil {
		r.log.Error(ctx, fmt.Sprintf("error lock slot %d", slotNumber), err)
		return nil, errors.Conflict("slot is being booked, please retry")
	}

	return func() {
		if _, err := mutex.UnlockContext(context.Background()); err != nil {
			r.log.Warn(ctx, fmt.Sprintf("error unlock slot %d", slotNumber), err)
		}
	}, nil
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error) {
	if r.asynqClient == nil {
		return "", nil
	}

	task := asynq.NewTask(scheduler.TypeOverstayCheck, payload)
	info, err := r.asynqClient.EnqueueContext(ctx, task, asynq.ProcessIn(helpers.DurationCalculation(processAt)))
	if err != nil {
		r.log.Error(ctx, "error set task scheduler", err)
		return "", errors.InternalServerError("error set task scheduler")
	}
	return info.ID, nil
}
