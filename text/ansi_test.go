package text

import "testing"

func TestStripANSIRemovesColorCodes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"\x1b[1;38;5;230mbold\x1b[0m tail", "bold tail"},
		{"", ""},
	}
	for _, c := range cases {
		if got := StripANSI(c.in); got != c.want {
			t.Errorf("StripANSI(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestVisibleWidthIgnoresEscapes(t *testing.T) {
	styled := "\x1b[32m1 2 3\x1b[0m"
	if w := VisibleWidth(styled); w != 5 {
		t.Errorf("expected visible width 5, got %d", w)
	}
}
