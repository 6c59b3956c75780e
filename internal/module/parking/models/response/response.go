package response

type AvailableSlots struct {
	VehicleType string `json:"vehicle_type"`
	Slots       []int  `json:"slots"`
}

type Booking struct {
	SlotNumber int     `json:"slot_number"`
	Amount     float64 `json:"amount"`
}

type CheckoutLookup struct {
	PenaltyRequired bool    `json:"penalty_required"`
	Penalty         float64 `json:"penalty,omitempty"`
	SlotNumber      int     `json:"slot_number"`
	VehicleNumber   string  `json:"vehicle_number"`
	VehicleOwner    string  `json:"vehicle_owner"`
}

type PenaltyPayment struct {
	SlotNumber    int     `json:"slot_number"`
	VehicleNumber string  `json:"vehicle_number"`
	VehicleOwner  string  `json:"vehicle_owner"`
	Penalty       float64 `json:"penalty"`
}

type CheckoutConfirmation struct {
	VehicleNumber string `json:"vehicle_number"`
	SlotsReleased int64  `json:"slots_released"`
}

type SlotStatus struct {
	SlotNumber    int    `json:"slot_number"`
	IsOccupied    bool   `json:"is_occupied"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
	InTime        string `json:"in_time,omitempty"`
	OutTime       string `json:"out_time,omitempty"`
}

type LedgerEntry struct {
	SlotNumber    int      `json:"slot_number"`
	VehicleType   string   `json:"vehicle_type"`
	VehicleNumber string   `json:"vehicle_number,omitempty"`
	VehicleOwner  string   `json:"vehicle_owner,omitempty"`
	InTime        string   `json:"in_time,omitempty"`
	OutTime       string   `json:"out_time,omitempty"`
	PaymentStatus string   `json:"payment_status,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	IsOccupied    bool     `json:"is_occupied"`
}
