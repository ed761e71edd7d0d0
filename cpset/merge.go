package cpset

// This file holds the interval-list merge algorithms behind Add, Union,
// Intersect, and Subtract: the "polarity" merge from ICU's UnicodeSet,
// ported from other_examples/vitessio-vitess__unicode_set.go's addbuffer
// and retain. Both walk two boundary lists in lockstep; a 2-bit polarity
// records which side currently owns an open interval, and its four
// states select which side advances and which boundary gets emitted.
//
// The vitess/ICU version keeps a permanent trailing HIGH sentinel inside
// the live list. Set stores boundaries without that sentinel, so these
// functions pad local copies with high before running the merge and
// strip it again from the result.

func pad(b []uint32) []uint32 {
	out := make([]uint32, len(b)+1)
	copy(out, b)
	out[len(b)] = high
	return out
}

// unpad converts an ICU-style list (always ending in the value high,
// which may either be a genuine boundary — when the set's last interval
// reaches the domain maximum, giving the list even length — or a bare
// loop-terminating sentinel with no paired boundary before it, giving
// the list odd length) into this package's storage form, which never
// carries the unpaired sentinel. Parity, not value, decides: an odd
// length always means the trailing high is unpaired and gets dropped;
// an even length means every entry, including a trailing high, is a
// real boundary and is kept.
func unpad(b []uint32) []uint32 {
	if len(b)%2 == 1 {
		return b[:len(b)-1]
	}
	return b
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// union merges boundary lists a and b (neither padded with the high
// sentinel) and returns their union's boundary list, also unpadded. This
// is addbuffer with polarity fixed at 0 (the only polarity this module
// needs; ICU's other polarities serve AddAll variants this package
// doesn't expose).
func union(a, b []uint32) []uint32 {
	list := pad(a)
	other := pad(b)
	out := make([]uint32, 0, len(list)+len(other))

	i, j, k := 1, 1, 0
	av, bv := list[0], other[0]
	polarity := 0

	for {
		switch polarity {
		case 0:
			if av < bv {
				if k > 0 && av <= out[k-1] {
					k--
					prev := out[k]
					out = out[:k]
					av = maxU32(list[i], prev)
				} else {
					out = append(out, av)
					k++
					av = list[i]
				}
				i++
				polarity ^= 1
			} else if bv < av {
				if k > 0 && bv <= out[k-1] {
					k--
					prev := out[k]
					out = out[:k]
					bv = maxU32(other[j], prev)
				} else {
					out = append(out, bv)
					k++
					bv = other[j]
				}
				j++
				polarity ^= 2
			} else {
				if av == high {
					goto done
				}
				if k > 0 && av <= out[k-1] {
					k--
					prev := out[k]
					out = out[:k]
					av = maxU32(list[i], prev)
				} else {
					out = append(out, av)
					k++
					av = list[i]
				}
				i++
				polarity ^= 1
				bv = other[j]
				j++
				polarity ^= 2
			}
		case 3:
			if bv <= av {
				if av == high {
					goto done
				}
				out = append(out, av)
				k++
			} else {
				if bv == high {
					goto done
				}
				out = append(out, bv)
				k++
			}
			av = list[i]
			i++
			polarity ^= 1
			bv = other[j]
			j++
			polarity ^= 2
		case 1:
			if av < bv {
				out = append(out, av)
				k++
				av = list[i]
				i++
				polarity ^= 1
			} else if bv < av {
				bv = other[j]
				j++
				polarity ^= 2
			} else {
				if av == high {
					goto done
				}
				av = list[i]
				i++
				polarity ^= 1
				bv = other[j]
				j++
				polarity ^= 2
			}
		case 2:
			if bv < av {
				out = append(out, bv)
				k++
				bv = other[j]
				j++
				polarity ^= 2
			} else if av < bv {
				av = list[i]
				i++
				polarity ^= 1
			} else {
				if av == high {
					goto done
				}
				av = list[i]
				i++
				polarity ^= 1
				bv = other[j]
				j++
				polarity ^= 2
			}
		}
	}
done:
	out = append(out, high)
	return unpad(out)
}

// retain implements both intersect (polarity 0) and subtract (polarity
// 2), matching vitess's RetainAll/RemoveAll split.
func retain(a, b []uint32, polarity int) []uint32 {
	list := pad(a)
	other := pad(b)
	out := make([]uint32, 0, len(list)+len(other))

	i, j := 1, 1
	av, bv := list[0], other[0]

	for {
		switch polarity {
		case 0: // both first; drop the smaller
			if av < bv {
				av = list[i]
				i++
				polarity ^= 1
			} else if bv < av {
				bv = other[j]
				j++
				polarity ^= 2
			} else {
				if av == high {
					goto done
				}
				out = append(out, av)
				av = list[i]
				i++
				polarity ^= 1
				bv = other[j]
				j++
				polarity ^= 2
			}
		case 3: // both second; take the lower
			if av < bv {
				out = append(out, av)
				av = list[i]
				i++
				polarity ^= 1
			} else if bv < av {
				out = append(out, bv)
				bv = other[j]
				j++
				polarity ^= 2
			} else {
				if av == high {
					goto done
				}
				out = append(out, av)
				av = list[i]
				i++
				polarity ^= 1
				bv = other[j]
				j++
				polarity ^= 2
			}
		case 1: // a second, b first
			if av < bv {
				av = list[i]
				i++
				polarity ^= 1
			} else if bv < av {
				out = append(out, bv)
				bv = other[j]
				j++
				polarity ^= 2
			} else {
				if av == high {
					goto done
				}
				av = list[i]
				i++
				polarity ^= 1
				bv = other[j]
				j++
				polarity ^= 2
			}
		case 2: // a first, b second
			if bv < av {
				bv = other[j]
				j++
				polarity ^= 2
			} else if av < bv {
				out = append(out, av)
				av = list[i]
				i++
				polarity ^= 1
			} else {
				if av == high {
					goto done
				}
				av = list[i]
				i++
				polarity ^= 1
				bv = other[j]
				j++
				polarity ^= 2
			}
		}
	}
done:
	out = append(out, high)
	return unpad(out)
}

// mergeBuffer is Set.Add / Set.Union's entry point: it replaces s's
// boundary array with the union of its current contents and other.
// polarity is accepted for symmetry with ICU's addbuffer signature but
// only union (polarity 0) is exercised by this module's public API.
func (s *Set) mergeBuffer(other []uint32, polarity int8) {
	merged := union(s.boundaries(), other)
	s.b = replaceArray(merged)
}

// retain replaces s's boundary array with retain(cur, other, polarity).
func (s *Set) retain(other []uint32, polarity int) {
	merged := retain(s.boundaries(), other, polarity)
	s.b = replaceArray(merged)
}
