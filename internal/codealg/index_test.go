package codealg

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func naiveIndex(haystack, needle []rune) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if Equal(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func TestIndex(t *testing.T) {
	tests := []struct {
		hay, needle string
		want        int
	}{
		{"", "", 0},
		{"a", "", 0},
		{"", "a", -1},
		{"abc", "a", 0},
		{"abc", "b", 1},
		{"abc", "c", 2},
		{"abc", "d", -1},
		{"abc", "abcd", -1},
		{"xabax", "aba", 1},
		{"aaaab", "aab", 2},
		{"ACGTACGT", "GTA", 2},
		{"日本語日本語", "語日", 2},
		{strings.Repeat("x", 100) + "needle", "needle", 100},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.hay, tt.needle), func(t *testing.T) {
			got := Index([]rune(tt.hay), []rune(tt.needle))
			if got != tt.want {
				t.Errorf("Index(%q, %q) = %d, want %d", tt.hay, tt.needle, got, tt.want)
			}
		})
	}
}

func TestIndexMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	alphabet := []rune("ACGT")
	gen := func(n int) []rune {
		out := make([]rune, n)
		for i := range out {
			out[i] = alphabet[r.Intn(len(alphabet))]
		}
		return out
	}
	for i := 0; i < 2000; i++ {
		hay := gen(r.Intn(64))
		needle := gen(1 + r.Intn(5))
		if got, want := Index(hay, needle), naiveIndex(hay, needle); got != want {
			t.Fatalf("Index(%q, %q) = %d, want %d", string(hay), string(needle), got, want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		hay, needle string
		want        int
	}{
		{"abab", "ab", 2},
		{"aaaa", "aa", 3},
		{"aaaa", "", 0},
		{"", "a", 0},
		{"ACGTACGTAC", "AC", 3},
		{"abc", "abc", 1},
	}
	for _, tt := range tests {
		if got := Count([]rune(tt.hay), []rune(tt.needle)); got != tt.want {
			t.Errorf("Count(%q, %q) = %d, want %d", tt.hay, tt.needle, got, tt.want)
		}
	}
}

func BenchmarkCount(b *testing.B) {
	hay := []rune(strings.Repeat("ACGTTGCA", 128))
	needle := []rune("TTGCAAC")
	b.SetBytes(int64(len(hay)))
	for i := 0; i < b.N; i++ {
		Count(hay, needle)
	}
}
