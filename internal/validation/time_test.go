package validation

import "testing"

func TestIsOrdered(t *testing.T) {
	cases := []struct {
		name    string
		timeIn  string
		timeOut string
		want    bool
	}{
		{"normal workday", "09:00", "17:00", true},
		{"one minute apart", "09:00", "09:01", true},
		{"equal times", "09:00", "09:00", false},
		{"out before in same hour", "09:30", "09:15", false},
		{"out hour before in hour", "14:00", "09:59", false},
		{"crosses noon", "11:45", "12:15", true},
		{"late evening", "22:00", "23:59", true},
		{"malformed in", "9am", "17:00", false},
		{"malformed out", "09:00", "late", false},
		{"missing minute", "09", "17:00", false},
		{"hour out of range", "25:00", "26:00", false},
		{"minute out of range", "09:70", "10:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOrdered(tc.timeIn, tc.timeOut); got != tc.want {
				t.Errorf("IsOrdered(%q, %q) = %v, want %v", tc.timeIn, tc.timeOut, got, tc.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("08:05")
	if err != nil {
		t.Fatalf("ParseClock(08:05) returned error: %v", err)
	}
	if h != 8 || m != 5 {
		t.Errorf("ParseClock(08:05) = (%d, %d), want (8, 5)", h, m)
	}

	for _, bad := range []string{"", "08", "08:05:01", "ab:cd", "24:00", "12:60"} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) succeeded, want error", bad)
		}
	}
}
