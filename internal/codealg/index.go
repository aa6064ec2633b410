// Package codealg provides exact search primitives over code-point
// sequences.
package codealg

// Equal reports whether a and b hold the same codes.
func Equal(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Index finds the first occurrence of needle in haystack, or -1.
// Candidate windows are filtered on two codes of the needle before the
// window is compared in full.
func Index(haystack, needle []rune) int {
	n := len(needle)
	if n == 0 {
		return 0
	}
	if len(haystack) < n {
		return -1
	}

	// Quick check for position-0 match
	if haystack[0] == needle[0] && Equal(haystack[:n], needle) {
		return 0
	}

	// Use first + last code (max spread), or first + middle if first==last
	first := needle[0]
	off2 := n - 1
	if n > 2 && first == needle[n-1] {
		off2 = n / 2
	}
	second := needle[off2]

	for i := 1; i <= len(haystack)-n; i++ {
		if haystack[i] != first || haystack[i+off2] != second {
			continue
		}
		if Equal(haystack[i:i+n], needle) {
			return i
		}
	}
	return -1
}

// Count returns the number of possibly overlapping occurrences of needle in
// haystack. An empty needle has no occurrences.
func Count(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	count := 0
	for {
		i := Index(haystack, needle)
		if i < 0 {
			return count
		}
		count++
		haystack = haystack[i+1:]
	}
}
