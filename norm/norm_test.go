package norm

import "testing"

// TestConcreteScenarios checks §8's concrete normalization scenarios,
// spelled out with explicit rune literals to avoid any ambiguity between
// precomposed and decomposed source-file encodings.
func TestConcreteScenarios(t *testing.T) {
	decomposed := string([]rune{'A', 0x0308, 'f', 'f', 'i', 'n'})
	composed := string([]rune{0x00C4, 'f', 'f', 'i', 'n'})
	if got := NFCString(decomposed); got != composed {
		t.Errorf("NFC(A+combining diaeresis+ffin) = %q, want %q", got, composed)
	}
	if got := NFDString(composed); got != decomposed {
		t.Errorf("NFD(A-with-diaeresis+ffin) = %q, want %q", got, decomposed)
	}

	nfkdInput := string([]rune{'2', 0x00B9, 0x2070}) // "2" + superscript 1 + superscript 0
	if got := NFKDString(nfkdInput); got != "210" {
		t.Errorf("NFKD(2 sup1 sup0) = %q, want %q", got, "210")
	}
}

func TestComposeJamo(t *testing.T) {
	if got := ComposeJamo(0x1100, 0x1161); got != 0xAC00 {
		t.Errorf("ComposeJamo(L,V) = %#x, want 0xAC00", got)
	}
	if got := ComposeJamo(0x1100, 0x1161, 0x11A8); got != 0xAC01 {
		t.Errorf("ComposeJamo(L,V,T) = %#x, want 0xAC01", got)
	}
}

func TestCombiningClassSpotValues(t *testing.T) {
	cases := map[rune]uint8{
		0x05BD: 22,
		0x0300: 230,
		0x0317: 220,
		0x1939: 222,
		'A':    0,
	}
	for c, want := range cases {
		if got := CombiningClass(c); got != want {
			t.Errorf("CombiningClass(%#U) = %d, want %d", c, got, want)
		}
	}
}

func TestIdempotence(t *testing.T) {
	s := string([]rune{'A', 0x0308, 'f', 'f', 'i', 'n'})
	for _, f := range []Form{NFC, NFD, NFKC, NFKD} {
		once := Normalize(s, f)
		twice := Normalize(once, f)
		if once != twice {
			t.Errorf("form %v not idempotent: %q then %q", f, once, twice)
		}
	}
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	s := string([]rune{'A', 0x0308, 'f', 'f', 'i', 'n'})
	nfc := Normalize(s, NFC)
	if got := Normalize(nfc, NFC); got != nfc {
		t.Errorf("NFC . NFC != NFC: %q vs %q", got, nfc)
	}
	nfd := Normalize(s, NFD)
	if got := Normalize(nfd, NFD); got != nfd {
		t.Errorf("NFD . NFD != NFD: %q vs %q", got, nfd)
	}
}

func TestInvarianceAlreadyNormalized(t *testing.T) {
	s := string([]rune{0x00C4, 'f', 'f', 'i', 'n'}) // already NFC
	if got := Normalize(s, NFC); got != s {
		t.Errorf("Normalize(already-NFC, NFC) = %q, want identical %q", got, s)
	}
	if !IsNormalized(s, NFC) {
		t.Error("expected already-composed string to report IsNormalized(NFC) == true")
	}
}

func TestCanonicalReordering(t *testing.T) {
	// Cedilla (class 202) before acute (class 230) is already in order;
	// the reverse input must come out the same way after reordering.
	inOrder := string([]rune{'e', 0x0327, 0x0301})
	reversed := string([]rune{'e', 0x0301, 0x0327})
	want := inOrder

	if out := Normalize(inOrder, NFD); out != want {
		t.Errorf("reorder(already sorted) = %q, want %q", out, want)
	}
	if out := Normalize(reversed, NFD); out != want {
		t.Errorf("reorder(reversed) = %q, want %q", out, want)
	}
}
