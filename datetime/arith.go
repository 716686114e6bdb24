package datetime

// AddDays returns d shifted by n civil days.
func (d *DateTime) AddDays(n int64) *DateTime {
	return &DateTime{UnixNanos: d.UnixNanos + n*nanosPerDay, OffsetSeconds: d.OffsetSeconds}
}

// AddMonths returns d shifted by n months, clamping the day of month to
// the last valid day when the target month is shorter (e.g. Jan 31 + 1
// month = Feb 28/29).
func (d *DateTime) AddMonths(n int64) *DateTime {
	y, m, day, hh, mi, ss, ns := d.civil()
	total := int64(m-1) + n
	y += floorDiv(total, 12)
	m = int(total%12) + 1
	if m <= 0 {
		m += 12
	}
	if day > daysInMonth(y, m) {
		day = daysInMonth(y, m)
	}
	nd, _ := New(y, m, day, hh, mi, ss, ns, d.OffsetSeconds)
	return nd
}

// AddYears returns d shifted by n years, clamping Feb 29 to Feb 28 when
// the target year is not a leap year.
func (d *DateTime) AddYears(n int64) *DateTime {
	return d.AddMonths(n * 12)
}

// AddWorkdays returns d shifted forward (or backward) by n business days,
// skipping Saturdays and Sundays.
func (d *DateTime) AddWorkdays(n int64) *DateTime {
	step := int64(1)
	if n < 0 {
		step = -1
		n = -n
	}
	cur := d
	for n > 0 {
		cur = cur.AddDays(step)
		if cur.Weekday() < 6 {
			n--
		}
	}
	return cur
}

// StartOfDay returns midnight of d's local civil day.
func (d *DateTime) StartOfDay() *DateTime {
	y, m, day, _, _, _, _ := d.civil()
	nd, _ := New(y, m, day, 0, 0, 0, 0, d.OffsetSeconds)
	return nd
}

// EndOfDay returns the last nanosecond of d's local civil day.
func (d *DateTime) EndOfDay() *DateTime {
	y, m, day, _, _, _, _ := d.civil()
	nd, _ := New(y, m, day, 23, 59, 59, int(nanosPerSecond-1), d.OffsetSeconds)
	return nd
}

// StartOfMonth returns midnight on the 1st of d's local civil month.
func (d *DateTime) StartOfMonth() *DateTime {
	y, m, _, _, _, _, _ := d.civil()
	nd, _ := New(y, m, 1, 0, 0, 0, 0, d.OffsetSeconds)
	return nd
}

// EndOfMonth returns the last nanosecond of d's local civil month.
func (d *DateTime) EndOfMonth() *DateTime {
	y, m, _, _, _, _, _ := d.civil()
	nd, _ := New(y, m, daysInMonth(y, m), 23, 59, 59, int(nanosPerSecond-1), d.OffsetSeconds)
	return nd
}

// StartOfYear returns midnight on Jan 1 of d's local civil year.
func (d *DateTime) StartOfYear() *DateTime {
	y, _, _, _, _, _, _ := d.civil()
	nd, _ := New(y, 1, 1, 0, 0, 0, 0, d.OffsetSeconds)
	return nd
}

// EndOfYear returns the last nanosecond of d's local civil year.
func (d *DateTime) EndOfYear() *DateTime {
	y, _, _, _, _, _, _ := d.civil()
	nd, _ := New(y, 12, 31, 23, 59, 59, int(nanosPerSecond-1), d.OffsetSeconds)
	return nd
}

// StartOfQuarter returns midnight on the 1st day of d's local civil
// quarter.
func (d *DateTime) StartOfQuarter() *DateTime {
	y, m, _, _, _, _, _ := d.civil()
	qm := ((m-1)/3)*3 + 1
	nd, _ := New(y, qm, 1, 0, 0, 0, 0, d.OffsetSeconds)
	return nd
}

// EndOfQuarter returns the last nanosecond of d's local civil quarter.
func (d *DateTime) EndOfQuarter() *DateTime {
	start := d.StartOfQuarter()
	y, m, _, _, _, _, _ := start.civil()
	qm := m + 2
	nd, _ := New(y, qm, daysInMonth(y, qm), 23, 59, 59, int(nanosPerSecond-1), d.OffsetSeconds)
	return nd
}

// StartOfWeek returns midnight on the Monday of d's local ISO week.
func (d *DateTime) StartOfWeek() *DateTime {
	return d.StartOfDay().AddDays(int64(-(d.Weekday() - 1)))
}

// EndOfWeek returns the last nanosecond of the Sunday of d's local ISO
// week.
func (d *DateTime) EndOfWeek() *DateTime {
	return d.StartOfWeek().AddDays(6).EndOfDay()
}

// Tomorrow returns d shifted forward by one civil day.
func (d *DateTime) Tomorrow() *DateTime { return d.AddDays(1) }

// NextWeek returns d shifted forward by seven civil days.
func (d *DateTime) NextWeek() *DateTime { return d.AddDays(7) }

// NextMonth returns d shifted forward by one month, with end-of-month
// clamping.
func (d *DateTime) NextMonth() *DateTime { return d.AddMonths(1) }

// NextMonthFirstWorkday returns the first business day (Mon-Fri) of the
// month following d.
func (d *DateTime) NextMonthFirstWorkday() *DateTime {
	first := d.NextMonth().StartOfMonth()
	if first.Weekday() >= 6 {
		return first.AddWorkdays(1)
	}
	return first
}
