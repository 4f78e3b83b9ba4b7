package palette

import "testing"

func TestByteToPalette(t *testing.T) {
	// the boot rom's 0xFC palette: 0 -> white, 1,2,3 -> black
	p := ByteToPalette(0xFC)
	want := Palette{White, Black, Black, Black}
	if p != want {
		t.Errorf("got %v want %v", p, want)
	}

	p = ByteToPalette(0xE4)
	want = Palette{White, LightGrey, DarkGrey, Black}
	if p != want {
		t.Errorf("got %v want %v", p, want)
	}
	if p.Shade(6) != DarkGrey {
		t.Errorf("expected colour index to be masked to 2 bits")
	}
}

func TestScheme_RGB(t *testing.T) {
	s := Schemes[Greyscale]
	for i, shade := range Shades {
		if got := s.RGB(shade); got != s[i] {
			t.Errorf("shade %02x: got %v want %v", shade, got, s[i])
		}
	}
}
