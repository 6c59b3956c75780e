package entity

import (
	"database/sql"
)

type VehicleType string

const (
	VehicleTypeCar  VehicleType = "Car"
	VehicleTypeBike VehicleType = "Bike"
)

// PaymentStatusPaid replaces the payment method label once a penalty is settled.
const PaymentStatusPaid = "Paid"

// ParkingSlot is one row of the slot ledger. Occupancy columns are NULL while
// the slot is free.
type ParkingSlot struct {
	ID            int64           `db:"id"`
	SlotNumber    int             `db:"slot_number"`
	VehicleType   VehicleType     `db:"vehicle_type"`
	IsOccupied    bool            `db:"is_occupied"`
	VehicleNumber sql.NullString  `db:"vehicle_number"`
	VehicleOwner  sql.NullString  `db:"vehicle_owner"`
	InTime        sql.NullString  `db:"in_time"`
	OutTime       sql.NullString  `db:"out_time"`
	PaymentStatus sql.NullString  `db:"payment_status"`
	Amount        sql.NullFloat64 `db:"amount"`
}

// Booking carries the occupancy fields written by a booking.
type Booking struct {
	SlotNumber    int     `db:"slot_number"`
	VehicleNumber string  `db:"vehicle_number"`
	VehicleOwner  string  `db:"vehicle_owner"`
	InTime        string  `db:"in_time"`
	OutTime       string  `db:"out_time"`
	PaymentStatus string  `db:"payment_status"`
	Amount        float64 `db:"amount"`
}
