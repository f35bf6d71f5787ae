package voxel

import (
	"testing"

	"github.com/annel0/mmo-mapgen/internal/vec"
)

func TestAreaExtentAndVolume(t *testing.T) {
	a := NewArea(vec.Vec3{X: -2, Y: 0, Z: 3}, vec.Vec3{X: 2, Y: 4, Z: 5})

	e := a.Extent()
	if e.X != 5 || e.Y != 5 || e.Z != 3 {
		t.Errorf("Ожидался размер {5,5,3}, получено %v", e)
	}
	if a.Volume() != 75 {
		t.Errorf("Ожидался объём 75, получено %d", a.Volume())
	}
}

func TestAreaIndexRoundTrip(t *testing.T) {
	a := NewArea(vec.Vec3{X: -3, Y: -5, Z: -7}, vec.Vec3{X: 4, Y: 2, Z: 1})

	// Каждая точка области должна получать уникальный индекс в [0, Volume)
	seen := make(map[Cursor]bool)
	for z := a.MinEdge.Z; z <= a.MaxEdge.Z; z++ {
		for y := a.MinEdge.Y; y <= a.MaxEdge.Y; y++ {
			for x := a.MinEdge.X; x <= a.MaxEdge.X; x++ {
				p := vec.Vec3{X: x, Y: y, Z: z}
				c := a.Index(p)
				if int(c) < 0 || int(c) >= a.Volume() {
					t.Fatalf("Индекс %d точки %v вне буфера", c, p)
				}
				if seen[c] {
					t.Fatalf("Индекс %d точки %v не уникален", c, p)
				}
				seen[c] = true

				if back := a.Position(c); !back.Equals(p) {
					t.Fatalf("Ожидалась точка %v, получено %v", p, back)
				}
			}
		}
	}
}

func TestAreaCursorStepping(t *testing.T) {
	a := NewArea(vec.Vec3{X: 0, Y: 0, Z: 0}, vec.Vec3{X: 9, Y: 9, Z: 9})
	p := vec.Vec3{X: 4, Y: 5, Z: 6}
	c := a.Index(p)

	if got := a.StepX(c, 2); got != a.Index(p.Add(vec.Vec3{X: 2})) {
		t.Errorf("Шаг по X дал индекс %d, ожидалось %d", got, a.Index(p.Add(vec.Vec3{X: 2})))
	}
	if got := a.StepY(c, -3); got != a.Index(p.OffsetY(-3)) {
		t.Errorf("Шаг по Y дал индекс %d, ожидалось %d", got, a.Index(p.OffsetY(-3)))
	}
	if got := a.StepZ(c, 1); got != a.Index(p.Add(vec.Vec3{Z: 1})) {
		t.Errorf("Шаг по Z дал индекс %d, ожидалось %d", got, a.Index(p.Add(vec.Vec3{Z: 1})))
	}
}

func TestAreaIndexPanicsOutside(t *testing.T) {
	a := NewArea(vec.Vec3{}, vec.Vec3{X: 3, Y: 3, Z: 3})

	defer func() {
		if recover() == nil {
			t.Error("Ожидалась паника при индексации точки вне области")
		}
	}()
	a.Index(vec.Vec3{X: 4, Y: 0, Z: 0})
}

func TestAreaContains(t *testing.T) {
	a := NewArea(vec.Vec3{X: -1, Y: -1, Z: -1}, vec.Vec3{X: 1, Y: 1, Z: 1})

	if !a.Contains(vec.Vec3{}) {
		t.Error("Центр области должен лежать внутри")
	}
	if !a.Contains(vec.Vec3{X: -1, Y: 1, Z: -1}) {
		t.Error("Угол области должен лежать внутри (границы включающие)")
	}
	if a.Contains(vec.Vec3{X: 2, Y: 0, Z: 0}) {
		t.Error("Точка за границей не должна лежать внутри")
	}
}
