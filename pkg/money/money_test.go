package money

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1234, "12.34"},
		{10000, "100.00"},
		{-6000, "-60.00"},
	}
	for _, tc := range cases {
		if got := Format(tc.minor); got != tc.want {
			t.Fatalf("Format(%d) = %q, want %q", tc.minor, got, tc.want)
		}
	}
}

func TestMajor(t *testing.T) {
	if got := Major(10000); got != 100.00 {
		t.Fatalf("Major(10000) = %v, want 100.00", got)
	}
}

func TestParseDecimalToMinor(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12.345", 1234, false},
		{"12.346", 1235, false},
		{"0.05", 5, false},
		{"100", 10000, false},
		{"-1.00", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.2.3", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToMinor(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseDecimalToMinor(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDecimalToMinor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDecimalToMinor(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
