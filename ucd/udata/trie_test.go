package udata

import "testing"

func TestGeneralCategoryTrie(t *testing.T) {
	cases := map[uint32]string{
		'A':      "Lu",
		'a':      "Ll",
		'1':      "Nd",
		0x0300:   "Mn",
		0x10FFFF: "Cn",
	}
	for c, want := range cases {
		if got := GeneralCategory(c); got != want {
			t.Errorf("GeneralCategory(%#x) = %q, want %q", c, got, want)
		}
	}
}

func TestScriptTrie(t *testing.T) {
	cases := map[uint32]string{
		'A':    "Latin",
		0x3B1:  "Greek",
		0x430:  "Cyrillic",
		0x4E2D: "Han",
		0xAC00: "Hangul",
	}
	for c, want := range cases {
		if got := Script(c); got != want {
			t.Errorf("Script(%#x) = %q, want %q", c, got, want)
		}
	}
	if got := Script(0x10FFFF); got != "" {
		t.Errorf("Script(0x10FFFF) = %q, want unassigned (empty)", got)
	}
}

func TestBlockTrie(t *testing.T) {
	if got := Block('A'); got != "Basic Latin" {
		t.Errorf("Block('A') = %q, want Basic Latin", got)
	}
	if got := Block(0xC0); got != "Latin-1 Supplement" {
		t.Errorf("Block(0xC0) = %q, want Latin-1 Supplement", got)
	}
}

func TestCCCTrie(t *testing.T) {
	cases := map[uint32]uint8{
		0x0300: 230,
		0x05BD: 22,
		0x1939: 222,
		'A':    0,
	}
	for c, want := range cases {
		if got := CCC(c); got != want {
			t.Errorf("CCC(%#x) = %d, want %d", c, got, want)
		}
	}
}

func TestQuickCheckTrie(t *testing.T) {
	for composed := range Canonical {
		if got := QuickCheck("NFD", composed); got != QCNo {
			t.Errorf("QuickCheck(NFD, %#x) = %d, want QCNo", composed, got)
		}
	}
	for c := range CombiningClass {
		if got := QuickCheck("NFC", c); got != QCMaybe {
			t.Errorf("QuickCheck(NFC, %#x) = %d, want QCMaybe", c, got)
		}
	}
	if got := QuickCheck("NFC", 'A'); got != QCYes {
		t.Errorf("QuickCheck(NFC, 'A') = %d, want QCYes (default)", got)
	}
	if got := QuickCheck("bogus-form", 'A'); got != QCYes {
		t.Errorf("QuickCheck with unknown form = %d, want QCYes", got)
	}
}
