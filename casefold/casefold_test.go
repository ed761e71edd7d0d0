package casefold

import (
	"testing"

	"golang.org/x/text/language"
)

// TestScenario4 checks §8's concrete scenario 4 verbatim.
func TestScenario4(t *testing.T) {
	ss := string([]rune{0x00DF, 'a'}) // ßa
	if got := Icmp(ss, "ssa"); got != 0 {
		t.Errorf("Icmp(%q, %q) = %d, want 0", ss, "ssa", got)
	}
	if got := Sicmp(ss, "ssa"); got == 0 {
		t.Errorf("Sicmp(%q, %q) = 0, want nonzero", ss, "ssa")
	}
}

func TestSicmpCaseInsensitive(t *testing.T) {
	if got := Sicmp("Hello", "hello"); got != 0 {
		t.Errorf("Sicmp(Hello, hello) = %d, want 0", got)
	}
	if got := Sicmp("Hello", "World"); got == 0 {
		t.Error("Sicmp(Hello, World) should not be 0")
	}
}

func TestToLowerToUpper(t *testing.T) {
	if got := ToLower('A'); got != 'a' {
		t.Errorf("ToLower('A') = %q, want 'a'", got)
	}
	if got := ToUpper('a'); got != 'A' {
		t.Errorf("ToUpper('a') = %q, want 'A'", got)
	}
	if got := ToLower(0x391); got != 0x3B1 { // Greek Alpha -> alpha
		t.Errorf("ToLower(Alpha) = %#x, want %#x", got, 0x3B1)
	}
}

func TestTurkicFold(t *testing.T) {
	if got := ToLowerMode('I', TurkicFold); got != dotlessI {
		t.Errorf("ToLowerMode('I', TurkicFold) = %#x, want dotless i %#x", got, dotlessI)
	}
	if got := ToLowerMode('I', DefaultFold); got != 'i' {
		t.Errorf("ToLowerMode('I', DefaultFold) = %q, want 'i'", got)
	}
}

func TestModeForLocale(t *testing.T) {
	if got := ModeForLocale(language.Make("tr-TR")); got != TurkicFold {
		t.Errorf("ModeForLocale(tr-TR) = %v, want TurkicFold", got)
	}
	if got := ModeForLocale(language.Make("en-US")); got != DefaultFold {
		t.Errorf("ModeForLocale(en-US) = %v, want DefaultFold", got)
	}
}
