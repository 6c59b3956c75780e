package request

import "time"

type SearchSlots struct {
	VehicleType string `form:"vehicle_type" validate:"required,oneof=Car Bike"`
}

type BookSlot struct {
	VehicleNumber string `form:"vehicle_number" validate:"required"`
	VehicleOwner  string `form:"vehicle_owner" validate:"required"`
	SlotNumber    int    `form:"slot_number" validate:"required,gte=1"`
	InTime        string `form:"in_time" validate:"required,datetime=2006-01-02T15:04"`
	OutTime       string `form:"out_time" validate:"required,datetime=2006-01-02T15:04"`
	PaymentMethod string `form:"payment_method" validate:"required"`
}

type Checkout struct {
	VehicleNumber string `form:"vehicle_number" validate:"required"`
	VehicleOwner  string `form:"vehicle_owner" validate:"required"`
}

type PayPenalty struct {
	VehicleNumber string  `form:"vehicle_number" validate:"required"`
	VehicleOwner  string  `form:"vehicle_owner"`
	PenaltyAmount float64 `form:"penalty_amount" validate:"required,gt=0"`
}

type ConfirmCheckout struct {
	VehicleNumber string `query:"vehicle_number" validate:"required"`
	VehicleOwner  string `query:"vehicle_owner" validate:"required"`
}

type AdminLogin struct {
	Password string `form:"password" validate:"required"`
}

type OverstayCheck struct {
	SlotNumber    int    `json:"slot_number" validate:"required,gte=1"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	OutTime       string `json:"out_time" validate:"required"`
}

type LedgerEventType string

const (
	LedgerEventSlotBooked     LedgerEventType = "slot_booked"
	LedgerEventPenaltyPaid    LedgerEventType = "penalty_paid"
	LedgerEventSlotCheckedOut LedgerEventType = "slot_checked_out"
	LedgerEventSlotOverstayed LedgerEventType = "slot_overstayed"
)

type LedgerEvent struct {
	ID            string          `json:"id" validate:"required"`
	Type          LedgerEventType `json:"type" validate:"required"`
	SlotNumber    int             `json:"slot_number,omitempty"`
	VehicleNumber string          `json:"vehicle_number" validate:"required"`
	VehicleOwner  string          `json:"vehicle_owner,omitempty"`
	Amount        float64         `json:"amount,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
