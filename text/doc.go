// Package text holds the positioned glyph records that feed layout analysis
// and the normalization applied to reconstructed cell text.
//
// # Fragments
//
// A [Fragment] is one glyph as the parser saw it: its text, its baseline
// origin (X, Y), advance width, height and font. Fragments are produced by
// the reader package (from PDF content streams) and by the ocr package
// (from Tesseract symbol boxes):
//
//	frags, rects, err := r.Fragments(0)
//
// # Normalization
//
// [Normalize] folds Unicode compatibility forms (NFKC) so ligatures and
// full-width digits in cell text compare equal to their plain spellings:
//
//	text.Normalize("ﬁnal") // "final"
package text
