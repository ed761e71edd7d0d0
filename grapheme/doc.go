/*
Package grapheme implements the bare grapheme cluster state machine: a
Grapheme value type holding one user-perceived character, DecodeGrapheme
to split the next cluster off a string, an Iterator to walk a whole
string's clusters, and the read-only grapheme.String convenience type
for indexing into a string by grapheme rather than by byte or rune.

Typical usage

	it := grapheme.NewIterator("Hello World")
	for {
	    g, ok := it.Next()
	    if !ok {
	        break
	    }
	    fmt.Println(g)
	}

Grapheme strings

	s := grapheme.StringFromString("世界")
	fmt.Printf("number of graphemes: %d\n", s.Len())         // => 2
	fmt.Printf("bytes in 2nd grapheme: %d\n", len(s.Nth(1))) // => 3

Grapheme strings are not meant to be built for large amounts of text,
but rather for manageable segments (MaxByteLen caps them at 32766
bytes); for larger texts use an Iterator directly.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package grapheme
