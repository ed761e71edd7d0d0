/*
Command gensetcode implements §4.3's "source-code emitter": it resolves
a named Unicode property through ucd.Resolve and writes a Go source file
defining a predicate function over that property's frozen interval set,
instead of a program that looks the property up at runtime via cpset or
utrie.

The emitted function bisects on the ASCII/non-ASCII boundary first, then
recursively bisects the remaining intervals down to a linear scan of at
most three intervals, per §4.3's own description of the emitter; §9
notes this is "peripheral to the core" and "can be realized as a
standalone code-gen tool", which is exactly what this command is.

Usage:

	gensetcode -prop Alphabetic -func IsAlphabetic -pkg mypkg -out alphabetic.go

License

This project is provided under the terms of the UNLICENSE or the
3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/npillmayer/ucore/cpset"
	"github.com/npillmayer/ucore/ucd"
)

var logger = log.New(os.Stderr, "gensetcode: ", log.LstdFlags)

var verbose bool

var fileHeader = `// Code generated by cmd/gensetcode from property {{.PropertyName}}; DO NOT EDIT.

package {{.Package}}

// {{.FuncName}} reports whether c belongs to the {{.PropertyName}} set,
// frozen at generation time from its interval table.
func {{.FuncName}}(c rune) bool {
`

func main() {
	pkg := flag.String("pkg", "main", "package name for the generated file")
	prop := flag.String("prop", "", "property name to resolve via ucd.Resolve")
	funcName := flag.String("func", "", "generated predicate function name")
	out := flag.String("out", "", "output file path (default: stdout)")
	v := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *v

	if *prop == "" || *funcName == "" {
		logger.Fatal("both -prop and -func are required")
	}

	set, err := ucd.ResolveOrErr(*prop)
	checkFatal(err)

	w, closeFn := openOutput(*out)
	defer closeFn()

	defer timeTrack(time.Now(), "emit "+*funcName)
	emit(w, *pkg, *funcName, *prop, set)
	checkFatal(w.Flush())
}

func openOutput(path string) (*bufio.Writer, func()) {
	if path == "" {
		return bufio.NewWriter(os.Stdout), func() {}
	}
	f, err := os.Create(path)
	checkFatal(err)
	return bufio.NewWriter(f), func() { f.Close() }
}

func emit(w *bufio.Writer, pkg, funcName, propName string, set cpset.Set) {
	t := template.Must(template.New("header").Parse(fileHeader))
	checkFatal(t.Execute(w, struct {
		Package      string
		FuncName     string
		PropertyName string
	}{pkg, funcName, propName}))

	ascii, rest := splitASCII(set.Intervals())
	fmt.Fprintf(w, "\tif c < 0x80 {\n\t\treturn %s\n\t}\n", bisect(ascii, "c"))
	fmt.Fprintf(w, "\treturn %s\n", bisect(rest, "c"))
	w.WriteString("}\n")
}

// splitASCII partitions intervals on the ASCII/non-ASCII boundary
// (§4.3: "bisect on the ASCII/non-ASCII boundary first"), splitting any
// interval that straddles 0x80 into its ASCII and non-ASCII halves.
func splitASCII(intervals []cpset.Interval) (ascii, rest []cpset.Interval) {
	for _, iv := range intervals {
		switch {
		case iv.Hi <= 0x80:
			ascii = append(ascii, iv)
		case iv.Lo >= 0x80:
			rest = append(rest, iv)
		default:
			ascii = append(ascii, cpset.Interval{Lo: iv.Lo, Hi: 0x80})
			rest = append(rest, cpset.Interval{Lo: 0x80, Hi: iv.Hi})
		}
	}
	return
}

// bisect emits a boolean Go expression testing whether v (the generated
// function's rune parameter) falls in one of intervals. It recursively
// splits the interval list in half until at most three remain, then
// falls back to a linear scan — §4.3's "recursive bisection down to
// linear scans of up to three intervals".
func bisect(intervals []cpset.Interval, v string) string {
	if len(intervals) == 0 {
		return "false"
	}
	if len(intervals) <= 3 {
		return linearScan(intervals, v)
	}
	mid := len(intervals) / 2
	left, right := intervals[:mid], intervals[mid:]
	boundary := right[0].Lo
	return fmt.Sprintf("(%s < 0x%X && %s) || (%s >= 0x%X && %s)",
		v, boundary, bisect(left, v), v, boundary, bisect(right, v))
}

func linearScan(intervals []cpset.Interval, v string) string {
	parts := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		parts = append(parts, fmt.Sprintf("(%s >= 0x%X && %s < 0x%X)", v, iv.Lo, v, iv.Hi))
	}
	return strings.Join(parts, " || ")
}

func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: emitting took %s\n", elapsed)
	}
}

func checkFatal(err error) {
	if err != nil {
		logger.Fatalln(err)
	}
}
