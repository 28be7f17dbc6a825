package layout

import "github.com/tsawler/pdfrows/model"

// Node is one element of a page's layout tree. The set of node types is
// closed: *Char, *Container, Collection, *Rect, *Curve, *Image and *Anno.
type Node interface {
	BoundingBox() model.BBox
	node()
}

// Kind identifies what a Container groups.
type Kind int

const (
	KindTextBox Kind = iota
	KindTextBoxHorizontal
	KindTextLine
	KindTextLineHorizontal
	KindFigure
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindTextBox:
		return "textbox"
	case KindTextBoxHorizontal:
		return "textbox-horizontal"
	case KindTextLine:
		return "textline"
	case KindTextLineHorizontal:
		return "textline-horizontal"
	case KindFigure:
		return "figure"
	default:
		return "unknown"
	}
}

// IsText reports whether containers of this kind hold text (boxes and
// lines). Figures do not.
func (k Kind) IsText() bool {
	switch k {
	case KindTextBox, KindTextBoxHorizontal, KindTextLine, KindTextLineHorizontal:
		return true
	default:
		return false
	}
}

// Char is a single rendered glyph. Text is one text unit, usually one rune
// but possibly a ligature.
type Char struct {
	BBox     model.BBox
	Text     string
	FontName string
	FontSize float64
}

// Container groups child nodes: a text box, a text line, or a figure.
type Container struct {
	Kind     Kind
	BBox     model.BBox
	Children []Node
}

// Collection is a plain ordered list of nodes.
type Collection []Node

// Rect is a drawn rectangle.
type Rect struct {
	BBox model.BBox
}

// Curve is a drawn path other than a rectangle.
type Curve struct {
	BBox   model.BBox
	Points []model.Point
}

// Image is a placed raster image.
type Image struct {
	BBox model.BBox
	Name string
}

// Anno is virtual text inserted by the analyzer (word spaces and line
// ends). It has no position of its own and is never a character.
type Anno struct {
	Text string
}

func (c *Char) BoundingBox() model.BBox      { return c.BBox }
func (c *Container) BoundingBox() model.BBox { return c.BBox }
func (r *Rect) BoundingBox() model.BBox      { return r.BBox }
func (c *Curve) BoundingBox() model.BBox     { return c.BBox }
func (i *Image) BoundingBox() model.BBox     { return i.BBox }
func (a *Anno) BoundingBox() model.BBox      { return model.BBox{} }

// BoundingBox returns the union of the members' boxes.
func (c Collection) BoundingBox() model.BBox {
	var b model.BBox
	for _, n := range c {
		if _, ok := n.(*Anno); ok {
			continue
		}
		b = b.Union(n.BoundingBox())
	}
	return b
}

func (*Char) node()      {}
func (*Container) node() {}
func (Collection) node() {}
func (*Rect) node()      {}
func (*Curve) node()     {}
func (*Image) node()     {}
func (*Anno) node()      {}

// Text returns the text of the container's characters and annotations in
// order.
func (c *Container) Text() string {
	var out []byte
	var walk func(n Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case *Char:
			out = append(out, v.Text...)
		case *Anno:
			out = append(out, v.Text...)
		case *Container:
			for _, child := range v.Children {
				walk(child)
			}
		case Collection:
			for _, child := range v {
				walk(child)
			}
		}
	}
	walk(c)
	return string(out)
}

// Page is the analyzed layout of one page.
type Page struct {
	Number int // 1-indexed page number
	Width  float64
	Height float64
	Nodes  []Node
}

// TextBoxes returns the page's top-level horizontal text boxes in order.
func (p *Page) TextBoxes() []*Container {
	var boxes []*Container
	for _, n := range p.Nodes {
		if c, ok := n.(*Container); ok && c.Kind == KindTextBoxHorizontal {
			boxes = append(boxes, c)
		}
	}
	return boxes
}
