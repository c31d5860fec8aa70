package blend

import "testing"

func TestOverAlphaSaturation(t *testing.T) {
	dst := Color{R: 10, G: 20, B: 30, A: 255}

	// alpha==0 leaves destination untouched.
	if got := Over(dst, Color{R: 200, G: 200, B: 200, A: 0}); got != dst {
		t.Errorf("Over with src.A=0 = %+v, want dst unchanged %+v", got, dst)
	}

	// alpha==255 yields the foreground color exactly.
	fg := Color{R: 9, G: 8, B: 7, A: 255}
	got := Over(dst, fg)
	if got.R != fg.R || got.G != fg.G || got.B != fg.B || got.A != 255 {
		t.Errorf("Over with src.A=255 = %+v, want %+v", got, fg)
	}
}

func TestOverScenarioS1(t *testing.T) {
	// Spec scenario S1: RGBA (0,0,0,255) destination, rectangle color
	// (255,0,0,128). Expect out.a = 254, out.r ~= 128.
	dst := Color{R: 0, G: 0, B: 0, A: 255}
	src := Color{R: 255, G: 0, B: 0, A: 128}

	got := Over(dst, src)
	if got.A != 254 {
		t.Errorf("out.a = %d, want 254", got.A)
	}
	if got.R < 126 || got.R > 130 {
		t.Errorf("out.r = %d, want ~128", got.R)
	}
	if got.G != 0 || got.B != 0 {
		t.Errorf("out.g/out.b = %d/%d, want 0/0", got.G, got.B)
	}
}

func TestQuadCompositeSkipsZeroCoverage(t *testing.T) {
	q := NewQuad()
	q.Composite(0, Color{R: 1, G: 2, B: 3, A: 0})
	if q[0] != (Color{}) {
		t.Errorf("lane 0 = %+v, want zero value (untouched)", q[0])
	}
	if q.AnyCoverage() {
		t.Error("AnyCoverage() = true, want false for an untouched quad")
	}
}

func TestQuadCompositePainterOrder(t *testing.T) {
	q := NewQuad()
	q.Composite(0, Color{R: 0, G: 0, B: 255, A: 255}) // blue first
	q.Composite(0, Color{R: 255, G: 0, B: 0, A: 255}) // red second, opaque

	if q[0].R != 255 || q[0].G != 0 || q[0].B != 0 {
		t.Errorf("lane 0 = %+v, want opaque red (later command wins)", q[0])
	}
}

func TestLumaOver(t *testing.T) {
	if got := LumaOver(100, 200, 255); got != 199 {
		t.Errorf("LumaOver with fa=255 = %d, want 199 ((200*255)>>8)", got)
	}
	if got := LumaOver(100, 200, 0); got != 100 {
		t.Errorf("LumaOver with fa=0 = %d, want 100 (unchanged)", got)
	}
}
