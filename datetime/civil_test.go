package datetime

import "testing"

func TestDaysFromCivilRoundTrip(t *testing.T) {
	cases := []struct {
		y int64
		m, d int
	}{
		{1970, 1, 1},
		{1969, 12, 31},
		{2000, 2, 29},
		{1900, 2, 28},
		{2400, 2, 29},
		{1, 1, 1},
		{-1, 3, 1},
	}
	for _, c := range cases {
		days := daysFromCivil(c.y, c.m, c.d)
		y, m, d := civilFromDays(days)
		if y != c.y || m != c.m || d != c.d {
			t.Errorf("round trip %04d-%02d-%02d: got %04d-%02d-%02d", c.y, c.m, c.d, y, m, d)
		}
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(2024, 2, 30, 0, 0, 0, 0, 0); err == nil {
		t.Fatal("expected InvalidDate for Feb 30")
	}
	if _, err := New(2023, 2, 29, 0, 0, 0, 0, 0); err == nil {
		t.Fatal("expected InvalidDate for Feb 29 in non-leap year")
	}
	if _, err := New(2024, 1, 1, 24, 0, 0, 0, 0); err == nil {
		t.Fatal("expected InvalidTime for hour 24")
	}
	if _, err := New(2024, 1, 1, 0, 0, 0, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWeekday(t *testing.T) {
	d, err := Date(1970, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Weekday(); got != 4 {
		t.Errorf("1970-01-01 weekday = %d, want 4 (Thursday)", got)
	}
}

func TestEqualIgnoresOffset(t *testing.T) {
	a, _ := New(2024, 6, 1, 12, 0, 0, 0, 0)
	b, _ := New(2024, 6, 1, 8, 0, 0, 0, -4*3600)
	if !a.Equal(b) {
		t.Errorf("expected %v to equal %v across differing offsets", a, b)
	}
	if a.Cmp(b) != 0 {
		t.Errorf("expected Cmp == 0 across differing offsets")
	}
}

func TestSubAndAdd(t *testing.T) {
	a, _ := Date(2024, 1, 1)
	b, _ := Date(2024, 1, 11)
	dur := b.Sub(a)
	if got := dur.AsDays(); got != 10 {
		t.Errorf("Sub = %v days, want 10", got)
	}
	c := a.Add(Days(10))
	if !c.Equal(b) {
		t.Errorf("Add(Days(10)) = %v, want %v", c, b)
	}
}

func TestAddMonthsClampsEndOfMonth(t *testing.T) {
	d, _ := Date(2024, 1, 31)
	next := d.AddMonths(1)
	if next.Month() != 2 || next.Day() != 29 {
		t.Errorf("Jan 31 + 1 month = %04d-%02d-%02d, want 2024-02-29", next.Year(), next.Month(), next.Day())
	}
}

func TestAddWorkdaysSkipsWeekend(t *testing.T) {
	fri, _ := Date(2024, 6, 7) // a Friday
	got := fri.AddWorkdays(1)
	if got.Weekday() != 1 {
		t.Errorf("Friday + 1 workday weekday = %d, want 1 (Monday)", got.Weekday())
	}
}

func TestFormatTokens(t *testing.T) {
	d, _ := New(2024, 3, 5, 9, 7, 3, 250_000_000, 0)
	got := d.Format("YYYY-MM-DD HH:mm:ss.SSS")
	want := "2024-03-05 09:07:03.250"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat12Hour(t *testing.T) {
	d, _ := New(2024, 1, 1, 0, 0, 0, 0, 0)
	if got := d.Format("hh:mm A"); got != "12:00 AM" {
		t.Errorf("midnight Format = %q, want 12:00 AM", got)
	}
	d2, _ := New(2024, 1, 1, 13, 30, 0, 0, 0)
	if got := d2.Format("hh:mm a"); got != "01:30 pm" {
		t.Errorf("13:30 Format = %q, want 01:30 pm", got)
	}
}

func TestDurationFormat(t *testing.T) {
	d := Hours(26).Add(Minutes(5))
	if got := d.Format(); got != "1D 02:05:00" {
		t.Errorf("Format = %q, want 1D 02:05:00", got)
	}
	neg := d.Neg()
	if got := neg.Format(); got != "-1D 02:05:00" {
		t.Errorf("negative Format = %q, want -1D 02:05:00", got)
	}
}
