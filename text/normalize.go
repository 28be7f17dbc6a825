package text

import "golang.org/x/text/unicode/norm"

// Normalize applies Unicode compatibility composition (NFKC) so that ligature
// glyphs such as "ﬁ" become plain letter sequences and full-width forms fold
// to their ASCII counterparts.
func Normalize(s string) string {
	if s == "" || norm.NFKC.IsNormalString(s) {
		return s
	}
	return norm.NFKC.String(s)
}

// NormalizeAll normalizes every cell in place and returns the same slice.
func NormalizeAll(cells []string) []string {
	for i, c := range cells {
		cells[i] = Normalize(c)
	}
	return cells
}
