// Package fees holds the tariff arithmetic of the slot ledger. Nothing here
// touches storage or the clock.
package fees

import "time"

// TimeLayout is the wire and storage format of in/out times. Times carry no
// zone and are read in the server's local zone.
const TimeLayout = "2006-01-02T15:04"

// MinimumStay is the shortest bookable window; the window must exceed it.
const MinimumStay = time.Hour

const (
	DefaultRatePerHour = 50
	DefaultGracePeriod = 30 * time.Minute
)

type Policy struct {
	RatePerHour float64
	GracePeriod time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		RatePerHour: DefaultRatePerHour,
		GracePeriod: DefaultGracePeriod,
	}
}

// ValidWindow reports whether out lies strictly more than MinimumStay after in.
func (p Policy) ValidWindow(in, out time.Time) bool {
	return out.After(in.Add(MinimumStay))
}

// Amount charges fractional hours at the hourly rate.
func (p Policy) Amount(in, out time.Time) float64 {
	return out.Sub(in).Hours() * p.RatePerHour
}

// PenaltyDue returns the flat overtime penalty, equal to the amount already
// charged, once now is past the planned out time plus the grace period.
func (p Policy) PenaltyDue(now, plannedOut time.Time, charged float64) (float64, bool) {
	if now.After(plannedOut.Add(p.GracePeriod)) {
		return charged, true
	}
	return 0, false
}

func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}

func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
