package helpers

import (
	"net/url"
	"time"
)

// DurationCalculation returns how long until t, never negative.
func DurationCalculation(t time.Time) time.Duration {
	d := time.Until(t)
	if d < 0 {
		return 0
	}
	return d
}

// RedirectURL builds path?key=value with the values query-escaped.
func RedirectURL(path string, params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
