package match

// codeRank is a frequency table for ASCII codes based on corpus analysis.
// Lower rank = rarer code = better candidate for filtering. Derived from
// memchr's BYTE_FREQUENCIES table (corpus: CIA World Factbook, rustc source,
// Septuaginta). Codes above 0x7F rank 0.
var codeRank = [ASIZE]byte{
	55, 52, 51, 50, 49, 48, 47, 46, 45, 103, 242, 66, 67, 229, 44, 43,
	42, 41, 40, 39, 38, 37, 36, 35, 34, 33, 56, 32, 31, 30, 29, 28,
	255, 148, 164, 149, 136, 160, 155, 173, 221, 222, 134, 122, 232, 202, 215, 224,
	208, 220, 204, 187, 183, 179, 177, 168, 178, 200, 226, 195, 154, 184, 174, 126,
	120, 191, 157, 194, 170, 189, 162, 161, 150, 193, 142, 137, 171, 176, 185, 167,
	186, 112, 175, 192, 188, 156, 140, 143, 123, 133, 128, 147, 138, 146, 114, 223,
	151, 249, 216, 238, 236, 253, 227, 218, 230, 247, 135, 180, 241, 233, 246, 244,
	231, 139, 245, 243, 251, 235, 201, 196, 240, 214, 152, 182, 205, 181, 127, 27,
}

// Ranks maps the codes 0..255 to a frequency rank; codes above 255 rank 0.
type Ranks [256]byte

// DefaultRanks returns the built-in table.
func DefaultRanks() *Ranks {
	var r Ranks
	copy(r[:], codeRank[:])
	return &r
}

func (r *Ranks) of(c rune) byte {
	if c < 0 || c > 255 {
		return 0
	}
	return r[c]
}

// BuildRanks builds a frequency table from a corpus sample.
func BuildRanks(corpus []string) *Ranks {
	var counts [256]int
	for _, s := range corpus {
		for _, c := range s {
			if c >= 0 && c <= 255 {
				counts[c]++
			}
		}
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	var ranks Ranks
	for i := range ranks {
		ranks[i] = byte((counts[i] * 255) / maxCount)
	}
	return &ranks
}
