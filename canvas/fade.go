package canvas

import "portfolio-canvas/anim"

// HoverFade eases each grid cell's hover fill in and out.
type HoverFade struct {
	duration float64
	cells    map[int]*anim.Transition
}

// NewHoverFade returns a fader whose transitions take duration seconds.
func NewHoverFade(duration float64) *HoverFade {
	return &HoverFade{duration: duration, cells: map[int]*anim.Transition{}}
}

// Enter starts fading cell index in at time now.
func (f *HoverFade) Enter(index int, now float64) {
	tr, ok := f.cells[index]
	if !ok {
		tr = anim.NewTransition(0, f.duration, anim.EaseInOut)
		f.cells[index] = tr
	}
	tr.Set(1, now)
}

// Leave starts fading cell index out at time now.
func (f *HoverFade) Leave(index int, now float64) {
	if tr, ok := f.cells[index]; ok {
		tr.Set(0, now)
	}
}

// Level returns the fill level of cell index at time now.
func (f *HoverFade) Level(index int, now float64) float64 {
	tr, ok := f.cells[index]
	if !ok {
		return 0
	}
	return tr.Value(now)
}

// Prune forgets cells that have fully faded out.
func (f *HoverFade) Prune(now float64) {
	for i, tr := range f.cells {
		if tr.Target() == 0 && tr.Value(now) == 0 {
			delete(f.cells, i)
		}
	}
}

// Reset drops all fades, e.g. after the grid is re-laid out.
func (f *HoverFade) Reset() {
	clear(f.cells)
}

// Len is the number of cells with a live fade.
func (f *HoverFade) Len() int { return len(f.cells) }
