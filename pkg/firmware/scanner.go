package firmware

import "bytes"

// FindAll returns the offsets of every occurrence of needle in haystack,
// in ascending order. The search resumes one byte after each match start,
// so overlapping occurrences are reported too. An empty result means no
// match and is not an error.
func FindAll(haystack, needle []byte) []int {
	if len(needle) == 0 {
		return nil
	}
	var offs []int
	i := bytes.Index(haystack, needle)
	for i != -1 {
		offs = append(offs, i)
		next := bytes.Index(haystack[i+1:], needle)
		if next == -1 {
			break
		}
		i += 1 + next
	}
	return offs
}
