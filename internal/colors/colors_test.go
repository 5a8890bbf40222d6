package colors

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#FF0000", RGB{R: 255}, true},
		{"00ff00", RGB{G: 255}, true},
		{"#0000Ff", RGB{B: 255}, true},
		{"#123456", RGB{R: 0x12, G: 0x34, B: 0x56}, true},
		{"#ABC", RGB{}, false},
		{"", RGB{}, false},
		{"#", RGB{}, false},
		{"##FF0000", RGB{}, false},
		{"#GG0000", RGB{}, false},
		{"+12345", RGB{}, false},
		{"#FF00000", RGB{}, false},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Parse(%q) = %+v, %v; want %+v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(RGB{R: 255, G: 8, B: 171}); got != "#FF08AB" {
		t.Fatalf("unexpected hex %s", got)
	}
}
