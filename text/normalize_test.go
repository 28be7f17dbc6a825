package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain ascii", "Total 42", "Total 42"},
		{"fi ligature", "ﬁnance", "finance"},
		{"ffl ligature", "waﬄe", "waffle"},
		{"full-width digits", "１２３", "123"},
		{"composed accent", "éte", "éte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	cells := []string{"ﬁ", "", "ok"}
	got := NormalizeAll(cells)

	want := []string{"fi", "", "ok"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeAll()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if &got[0] != &cells[0] {
		t.Error("NormalizeAll() should normalize in place")
	}
}

func TestFragmentGeometry(t *testing.T) {
	f := Fragment{Text: "A", X: 10, Y: 700, Width: 6, FontSize: 12}

	if got := f.Right(); got != 16 {
		t.Errorf("Right() = %v, want 16", got)
	}
	if got := f.Top(); got != 712 {
		t.Errorf("Top() with zero height = %v, want 712", got)
	}

	f.Height = 9
	if got := f.Top(); got != 709 {
		t.Errorf("Top() = %v, want 709", got)
	}
}

func TestFragmentSpace(t *testing.T) {
	if !(Fragment{Text: " "}).IsSpace() {
		t.Error("IsSpace() = false for a space glyph")
	}
	if (Fragment{Text: "x"}).IsSpace() {
		t.Error("IsSpace() = true for a letter")
	}
	if !(Fragment{}).IsEmpty() {
		t.Error("IsEmpty() = false for an empty fragment")
	}
}
