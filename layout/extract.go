package layout

// ExtractCharacters flattens a layout tree into its characters, depth-first
// and in child order. Text boxes, text lines and collections are descended
// into; figures, rectangles, curves, images and annotations contribute
// nothing. No sorting
// is done here.
func ExtractCharacters(n Node) []*Char {
	switch v := n.(type) {
	case *Char:
		return []*Char{v}
	case *Container:
		if !v.Kind.IsText() {
			return nil
		}
		return extractAll(v.Children)
	case Collection:
		return extractAll(v)
	case *Rect, *Curve, *Image, *Anno:
		return nil
	default:
		return nil
	}
}

func extractAll(nodes []Node) []*Char {
	var chars []*Char
	for _, n := range nodes {
		chars = append(chars, ExtractCharacters(n)...)
	}
	return chars
}
