package keys

import "testing"

func TestPlayerKeyFromName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ash", "ash"},
		{"Ash Ketchum", "ash_ketchum"},
		{"  ash   KETCHUM  ", "ash_ketchum"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := PlayerKeyFromName(tc.in); got != tc.want {
			t.Errorf("PlayerKeyFromName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
