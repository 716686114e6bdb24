package datetime

// Duration is a signed nanosecond count.
type Duration struct {
	Nanos int64
}

// Days returns a Duration of n days.
func Days(n int64) *Duration { return &Duration{Nanos: n * nanosPerDay} }

// Hours returns a Duration of n hours.
func Hours(n int64) *Duration { return &Duration{Nanos: n * 3600 * nanosPerSecond} }

// Minutes returns a Duration of n minutes.
func Minutes(n int64) *Duration { return &Duration{Nanos: n * 60 * nanosPerSecond} }

// Seconds returns a Duration of n seconds.
func Seconds(n int64) *Duration { return &Duration{Nanos: n * nanosPerSecond} }

// AsDays returns the Duration's length in days as a float64, fractional
// days included.
func (d *Duration) AsDays() float64 { return float64(d.Nanos) / float64(nanosPerDay) }

// AsSeconds returns the Duration's length in seconds, fractional seconds
// included.
func (d *Duration) AsSeconds() float64 { return float64(d.Nanos) / float64(nanosPerSecond) }

// Add returns d + x.
func (d *Duration) Add(x *Duration) *Duration { return &Duration{Nanos: d.Nanos + x.Nanos} }

// Sub returns d - x.
func (d *Duration) Sub(x *Duration) *Duration { return &Duration{Nanos: d.Nanos - x.Nanos} }

// Neg returns -d.
func (d *Duration) Neg() *Duration { return &Duration{Nanos: -d.Nanos} }

// MulInt returns d scaled by an exact integer factor.
func (d *Duration) MulInt(factor int64) *Duration { return &Duration{Nanos: d.Nanos * factor} }

// MulFloat returns d scaled by a (possibly non-integer) factor.
func (d *Duration) MulFloat(factor float64) *Duration {
	return &Duration{Nanos: int64(float64(d.Nanos) * factor)}
}

// DivInt divides d by another Duration, returning the truncated integer
// ratio. ok is false when x is zero.
func (d *Duration) DivInt(x *Duration) (ratio int64, ok bool) {
	if x.Nanos == 0 {
		return 0, false
	}
	return d.Nanos / x.Nanos, true
}

// DivFloat divides d's length by a scalar factor, returning a new
// Duration. ok is false when factor is zero.
func (d *Duration) DivFloat(factor float64) (*Duration, bool) {
	if factor == 0 {
		return nil, false
	}
	return &Duration{Nanos: int64(float64(d.Nanos) / factor)}, true
}

// Sign returns -1, 0, or 1.
func (d *Duration) Sign() int {
	switch {
	case d.Nanos < 0:
		return -1
	case d.Nanos > 0:
		return 1
	default:
		return 0
	}
}

// String renders d in the abbreviated "dD HH:MM:SS" form named in spec
// §4.6 as the default Duration display.
func (d *Duration) String() string {
	return d.Format()
}

// Format renders d as "dD HH:MM:SS" (days suffixed with D, then
// zero-padded hours:minutes:seconds), with a leading '-' for negative
// durations.
func (d *Duration) Format() string {
	n := d.Nanos
	neg := n < 0
	if neg {
		n = -n
	}
	days := n / nanosPerDay
	n %= nanosPerDay
	hh := n / (3600 * nanosPerSecond)
	n %= 3600 * nanosPerSecond
	mm := n / (60 * nanosPerSecond)
	n %= 60 * nanosPerSecond
	ss := n / nanosPerSecond
	sign := ""
	if neg {
		sign = "-"
	}
	return sign + itoa(days) + "D " + pad2(int(hh)) + ":" + pad2(int(mm)) + ":" + pad2(int(ss))
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	s := string(buf[i:])
	if neg {
		return "-" + s
	}
	return s
}

func pad2(v int) string {
	if v < 10 {
		return "0" + itoa(int64(v))
	}
	return itoa(int64(v))
}
