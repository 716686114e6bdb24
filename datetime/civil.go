// Package datetime implements Folio's nanosecond civil-calendar kernel:
// DateTime and Duration values built on the proleptic Gregorian algorithm
// Howard Hinnant popularized (days_from_civil / civil_from_days), the way
// spec §4.7 names it, rather than on time.Time's monotonic-clock-aware
// representation.
package datetime

const nanosPerSecond = 1_000_000_000
const secondsPerDay = 86400
const nanosPerDay = nanosPerSecond * secondsPerDay

// daysFromCivil converts a proleptic-Gregorian (year, month, day) into the
// number of days relative to 1970-01-01 (which is day 0). Adapted from
// Howard Hinnant's public-domain days_from_civil algorithm.
func daysFromCivil(y int64, m, d int) int64 {
	y -= boolToInt64(m <= 2)
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (int64(m) + 9) % 12
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (y int64, m, d int) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int(mp + 3)
	} else {
		m = int(mp - 9)
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func isLeapYear(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func daysInMonth(y int64, m int) int {
	switch m {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(y) {
			return 29
		}
		return 28
	default:
		return 30
	}
}

// DateTime is a signed nanosecond count since the Unix epoch plus an
// optional UTC offset in seconds, carried as metadata: comparisons and
// equality use the absolute nanosecond count, per spec's Open Questions
// resolution, not the offset.
type DateTime struct {
	UnixNanos     int64
	OffsetSeconds int32
}

// New constructs a DateTime from civil-calendar components, validating
// each one (month 1..12, day per month honoring leap years, hour 0..23,
// minute/second 0..59, nanosecond 0..1e9).
func New(year int64, month, day, hour, minute, second, nsec int, offsetSeconds int32) (*DateTime, *Error) {
	if month < 1 || month > 12 {
		return nil, newErr(InvalidDate, "month %d out of range 1..12", month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return nil, newErr(InvalidDate, "day %d out of range for %04d-%02d", day, year, month)
	}
	if hour < 0 || hour > 23 {
		return nil, newErr(InvalidTime, "hour %d out of range 0..23", hour)
	}
	if minute < 0 || minute > 59 {
		return nil, newErr(InvalidTime, "minute %d out of range 0..59", minute)
	}
	if second < 0 || second > 59 {
		return nil, newErr(InvalidTime, "second %d out of range 0..59", second)
	}
	if nsec < 0 || nsec >= int(nanosPerSecond) {
		return nil, newErr(InvalidTime, "nanosecond %d out of range 0..%d", nsec, nanosPerSecond-1)
	}
	days := daysFromCivil(year, month, day)
	nanos := days*nanosPerDay + int64(hour)*3600*nanosPerSecond + int64(minute)*60*nanosPerSecond + int64(second)*nanosPerSecond + int64(nsec)
	return &DateTime{UnixNanos: nanos - int64(offsetSeconds)*nanosPerSecond, OffsetSeconds: offsetSeconds}, nil
}

// Date constructs a DateTime at midnight UTC for the given civil date.
func Date(year int64, month, day int) (*DateTime, *Error) {
	return New(year, month, day, 0, 0, 0, 0, 0)
}

func (d *DateTime) localNanos() int64 {
	return d.UnixNanos + int64(d.OffsetSeconds)*nanosPerSecond
}

func (d *DateTime) days() int64 {
	return floorDiv(d.localNanos(), nanosPerDay)
}

func (d *DateTime) nanosOfDay() int64 {
	n := d.localNanos() % nanosPerDay
	if n < 0 {
		n += nanosPerDay
	}
	return n
}

// civil returns the local civil-calendar components of d.
func (d *DateTime) civil() (year int64, month, day, hour, minute, second, nsec int) {
	year, month, day = civilFromDays(d.days())
	n := d.nanosOfDay()
	hour = int(n / (3600 * nanosPerSecond))
	n %= 3600 * nanosPerSecond
	minute = int(n / (60 * nanosPerSecond))
	n %= 60 * nanosPerSecond
	second = int(n / nanosPerSecond)
	nsec = int(n % nanosPerSecond)
	return
}

// Year returns d's civil year.
func (d *DateTime) Year() int64 { y, _, _, _, _, _, _ := d.civil(); return y }

// Month returns d's civil month, 1..12.
func (d *DateTime) Month() int { _, m, _, _, _, _, _ := d.civil(); return m }

// Day returns d's civil day of month.
func (d *DateTime) Day() int { _, _, dd, _, _, _, _ := d.civil(); return dd }

// Hour returns d's local hour, 0..23.
func (d *DateTime) Hour() int { _, _, _, h, _, _, _ := d.civil(); return h }

// Minute returns d's local minute, 0..59.
func (d *DateTime) Minute() int { _, _, _, _, mi, _, _ := d.civil(); return mi }

// Second returns d's local second, 0..59.
func (d *DateTime) Second() int { _, _, _, _, _, s, _ := d.civil(); return s }

// Nanosecond returns d's nanosecond-of-second, 0..999999999.
func (d *DateTime) Nanosecond() int { _, _, _, _, _, _, n := d.civil(); return n }

// Weekday returns ISO weekday: Monday=1 .. Sunday=7.
func (d *DateTime) Weekday() int {
	days := d.days()
	// 1970-01-01 was a Thursday (ISO weekday 4).
	w := (days%7 + 7 + 3) % 7
	return int(w) + 1
}

// DayOfYear returns d's 1-based ordinal day within its civil year.
func (d *DateTime) DayOfYear() int {
	y, m, day, _, _, _, _ := d.civil()
	var ordinal int64
	for mm := 1; mm < m; mm++ {
		ordinal += int64(daysInMonth(y, mm))
	}
	ordinal += int64(day)
	return int(ordinal)
}

// ISOWeek returns the ISO-8601 (week-year, week-number) for d.
func (d *DateTime) ISOWeek() (year int, week int) {
	days := d.days()
	wd := d.Weekday() // Monday=1..Sunday=7
	// Thursday of this week determines the ISO week-year.
	thursday := days - int64(wd) + 4
	y, _, _ := civilFromDays(thursday)
	jan1 := daysFromCivil(y, 1, 1)
	week = int((thursday-jan1)/7) + 1
	return int(y), week
}

// String renders d's local civil time in ISO-8601 form (date, 'T', time);
// the offset is not included.
func (d *DateTime) String() string {
	return d.Format("YYYY-MM-DDTHH:mm:ss")
}

// Equal reports whether d and x represent the same instant, ignoring the
// offset metadata (comparison is by absolute nanoseconds, per the spec's
// Open Questions resolution).
func (d *DateTime) Equal(x *DateTime) bool { return d.UnixNanos == x.UnixNanos }

// Cmp compares d and x by absolute nanoseconds since epoch.
func (d *DateTime) Cmp(x *DateTime) int {
	switch {
	case d.UnixNanos < x.UnixNanos:
		return -1
	case d.UnixNanos > x.UnixNanos:
		return 1
	default:
		return 0
	}
}

// Sub returns the Duration d - x.
func (d *DateTime) Sub(x *DateTime) *Duration {
	return &Duration{Nanos: d.UnixNanos - x.UnixNanos}
}

// Add returns d shifted by dur.
func (d *DateTime) Add(dur *Duration) *DateTime {
	return &DateTime{UnixNanos: d.UnixNanos + dur.Nanos, OffsetSeconds: d.OffsetSeconds}
}
