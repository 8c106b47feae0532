package token

import "testing"

func TestNarrowInt(t *testing.T) {
	tests := []struct {
		v      int64
		signed bool
		want   Size
	}{
		{0, false, Byte},
		{255, false, Byte},
		{256, false, Word},
		{65535, false, Word},
		{65536, false, DWord},
		{-1, true, Byte},
		{-129, true, Word},
		{1 << 40, false, QWord},
	}
	for _, tt := range tests {
		got, ok := NarrowInt(tt.v, tt.signed)
		if !ok {
			t.Fatalf("NarrowInt(%d, %v): not ok", tt.v, tt.signed)
		}
		if got != tt.want {
			t.Errorf("NarrowInt(%d, %v) = %s, want %s", tt.v, tt.signed, got, tt.want)
		}
	}
}

func TestNarrowFloat(t *testing.T) {
	sz, f32, _ := NarrowFloat(1.5)
	if sz != DWord {
		t.Errorf("NarrowFloat(1.5) size = %s, want dword", sz)
	}
	if float64(f32) != 1.5 {
		t.Errorf("NarrowFloat(1.5) f32 = %v, want 1.5", f32)
	}

	sz, _, f64 := NarrowFloat(0.1)
	if sz != QWord {
		t.Errorf("NarrowFloat(0.1) size = %s, want qword (precision loss at 32 bits)", sz)
	}
	if f64 != 0.1 {
		t.Errorf("NarrowFloat(0.1) f64 = %v, want 0.1", f64)
	}
}

func TestSizeString(t *testing.T) {
	for _, tt := range []struct {
		s    Size
		want string
	}{
		{Byte, "byte"}, {Word, "word"}, {DWord, "dword"}, {QWord, "qword"},
	} {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
