package viewport

import "testing"

func TestOnResizeBreakpoint(t *testing.T) {
	cases := []struct {
		width        float64
		wantDiameter float64
		wantSpeed    float64
	}{
		{0, 320, 1.4},
		{320, 320, 1.4},
		{639, 320, 1.4},
		{639.9, 320, 1.4},
		{640, 600, 3},
		{1920, 600, 3},
	}

	for _, tc := range cases {
		cfg := OnResize(tc.width, 900)
		if cfg.Diameter != tc.wantDiameter || cfg.Speed != tc.wantSpeed {
			t.Errorf("OnResize(%v): got diameter=%v speed=%v, want %v/%v",
				tc.width, cfg.Diameter, cfg.Speed, tc.wantDiameter, tc.wantSpeed)
		}
		if cfg.Bounds != (Bounds{Width: tc.width, Height: 900}) {
			t.Errorf("OnResize(%v): unexpected bounds %+v", tc.width, cfg.Bounds)
		}
	}
}

func TestOnResizeNegativeExtents(t *testing.T) {
	cfg := OnResize(-10, -5)
	if cfg.Bounds.Width != 0 || cfg.Bounds.Height != 0 {
		t.Errorf("expected zero bounds, got %+v", cfg.Bounds)
	}
	if !cfg.Compact() {
		t.Error("zero width should use the compact profile")
	}
}

func TestAdapterResizeAlwaysRecomputes(t *testing.T) {
	a := NewAdapter(1280, 800)
	if got := a.Config(); got.Diameter != WideDiameter {
		t.Fatalf("expected wide profile at mount, got %+v", got)
	}

	if a.Resize(1280, 800) {
		t.Error("same size should not report a change")
	}
	if !a.Resize(500, 800) {
		t.Error("new size should report a change")
	}
	if got := a.Config(); got.Diameter != CompactDiameter || got.Speed != CompactSpeed {
		t.Errorf("expected compact profile, got %+v", got)
	}
}

func TestAdapterConfigIsSnapshot(t *testing.T) {
	a := NewAdapter(1280, 800)
	snap := a.Config()
	a.Resize(300, 300)
	if snap.Bounds.Width != 1280 {
		t.Errorf("snapshot changed after resize: %+v", snap)
	}
}

func TestGridIndexing(t *testing.T) {
	g := NewGrid(Bounds{Width: 150, Height: 150})
	if g.Cols != 2 || g.Rows != 2 || g.Len() != 4 {
		t.Fatalf("unexpected grid %+v", g)
	}

	c1, ok := g.Cell(1)
	if !ok || c1.X != 75 || c1.Y != 0 {
		t.Errorf("cell 1: got %+v", c1)
	}
	c2, ok := g.Cell(2)
	if !ok || c2.X != 0 || c2.Y != 75 {
		t.Errorf("cell 2: got %+v", c2)
	}
	if _, ok := g.Cell(4); ok {
		t.Error("cell 4 should be out of range")
	}
	if _, ok := g.Cell(-1); ok {
		t.Error("cell -1 should be out of range")
	}
}

func TestGridPartialCells(t *testing.T) {
	g := NewGrid(Bounds{Width: 1280, Height: 800})
	if g.Cols != 18 || g.Rows != 11 {
		t.Errorf("expected 18x11, got %dx%d", g.Cols, g.Rows)
	}
	if NewGrid(Bounds{}).Len() != 0 {
		t.Error("empty bounds should have no cells")
	}
}

func TestGridIndexAt(t *testing.T) {
	g := NewGrid(Bounds{Width: 150, Height: 150})
	cases := []struct {
		x, y float64
		want int
	}{
		{0, 0, 0},
		{74.9, 10, 0},
		{75, 0, 1},
		{10, 80, 2},
		{149, 149, 3},
		{150, 10, -1},
		{-1, 10, -1},
	}
	for _, tc := range cases {
		if got := g.IndexAt(tc.x, tc.y); got != tc.want {
			t.Errorf("IndexAt(%v, %v) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestHoverMove(t *testing.T) {
	var h Hover
	if h.Is(0) {
		t.Fatal("zero hover should have no focus")
	}

	left, entered := h.Move(3)
	if left != -1 || entered != 3 || !h.Is(3) {
		t.Errorf("enter 3: left=%d entered=%d hover=%+v", left, entered, h)
	}

	left, entered = h.Move(3)
	if left != -1 || entered != -1 {
		t.Errorf("staying on 3 should report nothing: left=%d entered=%d", left, entered)
	}

	left, entered = h.Move(4)
	if left != 3 || entered != 4 || h.Is(3) || !h.Is(4) {
		t.Errorf("3 -> 4: left=%d entered=%d hover=%+v", left, entered, h)
	}

	left, entered = h.Move(-1)
	if left != 4 || entered != -1 || h.Active {
		t.Errorf("leave grid: left=%d entered=%d hover=%+v", left, entered, h)
	}
}
