package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/ucore/cpset"
)

func TestSplitASCIIStraddlingInterval(t *testing.T) {
	ascii, rest := splitASCII([]cpset.Interval{{Lo: 0x60, Hi: 0x100}})
	if len(ascii) != 1 || ascii[0] != (cpset.Interval{Lo: 0x60, Hi: 0x80}) {
		t.Errorf("ascii half = %v, want [{0x60 0x80}]", ascii)
	}
	if len(rest) != 1 || rest[0] != (cpset.Interval{Lo: 0x80, Hi: 0x100}) {
		t.Errorf("non-ASCII half = %v, want [{0x80 0x100}]", rest)
	}
}

func TestSplitASCIIDisjoint(t *testing.T) {
	ascii, rest := splitASCII([]cpset.Interval{{Lo: 0x41, Hi: 0x5B}, {Lo: 0x400, Hi: 0x430}})
	if len(ascii) != 1 || len(rest) != 1 {
		t.Fatalf("expected one interval on each side, got ascii=%v rest=%v", ascii, rest)
	}
}

func TestLinearScanUpToThree(t *testing.T) {
	expr := linearScan([]cpset.Interval{{Lo: 0x41, Hi: 0x5B}, {Lo: 0x61, Hi: 0x7B}}, "c")
	if !strings.Contains(expr, "||") {
		t.Errorf("expected two disjuncts joined by ||, got %q", expr)
	}
}

func TestBisectFallsBackToLinearScan(t *testing.T) {
	intervals := []cpset.Interval{{Lo: 0x30, Hi: 0x3A}}
	expr := bisect(intervals, "c")
	if expr != linearScan(intervals, "c") {
		t.Errorf("bisect of <=3 intervals should equal linearScan, got %q vs %q", expr, linearScan(intervals, "c"))
	}
}

func TestBisectSplitsLargerLists(t *testing.T) {
	intervals := []cpset.Interval{
		{Lo: 0x30, Hi: 0x3A}, {Lo: 0x41, Hi: 0x5B}, {Lo: 0x61, Hi: 0x7B}, {Lo: 0x400, Hi: 0x430},
	}
	expr := bisect(intervals, "c")
	if !strings.Contains(expr, "<") || !strings.Contains(expr, ">=") {
		t.Errorf("expected a bisection split (< and >= branches), got %q", expr)
	}
}

func TestBisectEmpty(t *testing.T) {
	if got := bisect(nil, "c"); got != "false" {
		t.Errorf("bisect(nil) = %q, want \"false\"", got)
	}
}
