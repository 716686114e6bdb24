package datetime

import "strings"

// Parse reads an ISO-8601-flavored timestamp: a date-only form
// (YYYY-MM-DD), or a date followed by 'T' or a space and a time
// (HH:mm:ss), an optional fractional-second suffix, and an optional
// offset ('Z' or ±HH:MM). The layout argument is currently advisory and
// unused by the parser itself: every accepted value is ISO-8601
// shaped, per spec §4.7.
func Parse(layout, value string) (*DateTime, *Error) {
	return ParseISO8601(value)
}

// ParseISO8601 parses value as described by Parse.
func ParseISO8601(value string) (*DateTime, *Error) {
	s := strings.TrimSpace(value)
	if len(s) < 10 {
		return nil, newErr(ParseError, "timestamp %q too short to contain a date", value)
	}

	datePart := s[:10]
	year, month, day, perr := parseDate(datePart)
	if perr != nil {
		return nil, perr
	}
	rest := s[10:]
	if rest == "" {
		return Date(year, month, day)
	}

	sep := rest[0]
	if sep != 'T' && sep != 't' && sep != ' ' {
		return nil, newErr(ParseError, "timestamp %q: expected 'T' or space after date", value)
	}
	rest = rest[1:]

	offsetSeconds, offsetLen, operr := findOffset(rest)
	if operr != nil {
		return nil, operr
	}
	timePart := rest[:len(rest)-offsetLen]

	hour, minute, second, nsec, terr := parseTime(timePart)
	if terr != nil {
		return nil, terr
	}

	return New(year, month, day, hour, minute, second, nsec, offsetSeconds)
}

func parseDate(s string) (year int64, month, day int, err *Error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, newErr(ParseError, "date %q: expected YYYY-MM-DD", s)
	}
	y, ok1 := parseDigits(s[0:4])
	mo, ok2 := parseDigits(s[5:7])
	d, ok3 := parseDigits(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, newErr(ParseError, "date %q: non-digit in YYYY-MM-DD", s)
	}
	return int64(y), mo, d, nil
}

func parseTime(s string) (hour, minute, second, nsec int, err *Error) {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return 0, 0, 0, 0, newErr(ParseError, "time %q: expected HH:mm:ss", s)
	}
	hh, ok1 := parseDigits(s[0:2])
	mm, ok2 := parseDigits(s[3:5])
	ss, ok3 := parseDigits(s[6:8])
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, 0, newErr(ParseError, "time %q: non-digit in HH:mm:ss", s)
	}
	nsec = 0
	if len(s) > 8 {
		if s[8] != '.' {
			return 0, 0, 0, 0, newErr(ParseError, "time %q: expected '.' before fractional seconds", s)
		}
		frac := s[9:]
		if frac == "" {
			return 0, 0, 0, 0, newErr(ParseError, "time %q: empty fractional seconds", s)
		}
		n := 0
		for _, c := range frac {
			if c < '0' || c > '9' {
				return 0, 0, 0, 0, newErr(ParseError, "time %q: non-digit in fractional seconds", s)
			}
			n = n*10 + int(c-'0')
		}
		for i := len(frac); i < 9; i++ {
			n *= 10
		}
		if len(frac) > 9 {
			for i := 9; i < len(frac); i++ {
				n /= 10
			}
		}
		nsec = n
	}
	return hh, mm, ss, nsec, nil
}

// findOffset scans the trailing portion of a time string for 'Z' or a
// ±HH:MM offset, returning the offset in seconds and how many trailing
// bytes it consumed.
func findOffset(s string) (offsetSeconds int32, consumed int, err *Error) {
	if s == "" {
		return 0, 0, nil
	}
	if s[len(s)-1] == 'Z' || s[len(s)-1] == 'z' {
		return 0, 1, nil
	}
	idx := strings.LastIndexAny(s, "+-")
	if idx < 0 {
		return 0, 0, nil
	}
	tail := s[idx:]
	if len(tail) != 6 || tail[3] != ':' {
		return 0, 0, newErr(ParseError, "offset %q: expected ±HH:MM", tail)
	}
	sign := int32(1)
	if tail[0] == '-' {
		sign = -1
	}
	hh, ok1 := parseDigits(tail[1:3])
	mm, ok2 := parseDigits(tail[4:6])
	if !ok1 || !ok2 {
		return 0, 0, newErr(ParseError, "offset %q: non-digit in ±HH:MM", tail)
	}
	return sign * (int32(hh)*3600 + int32(mm)*60), len(tail), nil
}

func parseDigits(s string) (int, bool) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
