package datetime

import "strings"

// layoutTokens are matched longest-first so e.g. "YYYY" is not mistaken
// for four copies of "Y" (which is not itself a token).
var layoutTokens = []string{
	"YYYY", "SSS", "DDD",
	"YY", "MM", "DD", "HH", "hh", "mm", "ss",
	"M", "D", "H", "h", "m", "s", "A", "a", "W",
}

// Format renders d according to a pattern built from the tokens YYYY YY MM
// M DD D HH H hh h mm m ss s SSS A a DDD W; any other character is copied
// through literally.
func (d *DateTime) Format(layout string) string {
	y, mo, day, hh, mi, ss, ns := d.civil()
	var b strings.Builder
	i := 0
	for i < len(layout) {
		matched := ""
		for _, tok := range layoutTokens {
			if strings.HasPrefix(layout[i:], tok) {
				matched = tok
				break
			}
		}
		if matched == "" {
			b.WriteByte(layout[i])
			i++
			continue
		}
		b.WriteString(d.renderToken(matched, y, mo, day, hh, mi, ss, ns))
		i += len(matched)
	}
	return b.String()
}

func (d *DateTime) renderToken(tok string, y int64, mo, day, hh, mi, ss, ns int) string {
	switch tok {
	case "YYYY":
		return pad4(y)
	case "YY":
		return pad2(int(((y % 100) + 100) % 100))
	case "MM":
		return pad2(mo)
	case "M":
		return itoa(int64(mo))
	case "DD":
		return pad2(day)
	case "D":
		return itoa(int64(day))
	case "HH":
		return pad2(hh)
	case "H":
		return itoa(int64(hh))
	case "hh":
		return pad2(to12Hour(hh))
	case "h":
		return itoa(int64(to12Hour(hh)))
	case "mm":
		return pad2(mi)
	case "m":
		return itoa(int64(mi))
	case "ss":
		return pad2(ss)
	case "s":
		return itoa(int64(ss))
	case "SSS":
		return pad3(ns / 1_000_000)
	case "A":
		if hh < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if hh < 12 {
			return "am"
		}
		return "pm"
	case "DDD":
		return pad3(d.DayOfYear())
	case "W":
		_, w := d.ISOWeek()
		return itoa(int64(w))
	default:
		return tok
	}
}

func to12Hour(h int) int {
	h = h % 12
	if h == 0 {
		h = 12
	}
	return h
}

func pad3(v int) string {
	s := itoa(int64(v))
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

func pad4(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := itoa(v)
	for len(s) < 4 {
		s = "0" + s
	}
	if neg {
		return "-" + s
	}
	return s
}
