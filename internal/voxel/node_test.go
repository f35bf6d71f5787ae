package voxel

import (
	"testing"

	"github.com/annel0/mmo-mapgen/internal/vec"
)

func TestLightPairBanks(t *testing.T) {
	var l LightPair

	l.Set(BankDay, 15)
	l.Set(BankNight, 7)

	if l.Get(BankDay) != 15 || l.Get(BankNight) != 7 {
		t.Errorf("Ожидалось день=15 ночь=7, получено %+v", l)
	}
	if l.Max() != 15 {
		t.Errorf("Ожидался максимум 15, получено %d", l.Max())
	}
}

func TestLightPairMasksTo4Bits(t *testing.T) {
	var l LightPair
	// значения шире нибла обрезаются, как в упакованном байте
	l.Set(BankDay, 0xF3)
	if l.Day != 3 {
		t.Errorf("Ожидалось маскирование до 3, получено %d", l.Day)
	}
}

func TestManipStartsUngenerated(t *testing.T) {
	m := NewManip(vec.Vec3{}, vec.Vec3{X: 2, Y: 2, Z: 2})

	for i, n := range m.Data {
		if n.Content != ContentIgnore {
			t.Fatalf("Нод %d должен быть ContentIgnore, получено %d", i, n.Content)
		}
	}
}

func TestManipSetAndGet(t *testing.T) {
	m := NewManip(vec.Vec3{X: -1, Y: -1, Z: -1}, vec.Vec3{X: 1, Y: 1, Z: 1})
	p := vec.Vec3{X: 1, Y: 0, Z: -1}

	m.SetNode(p, Node{Content: 5, Param2: 9})
	m.SetLight(m.Area.Index(p), BankNight, 12)

	n := m.NodeAt(p)
	if n.Content != 5 || n.Param2 != 9 {
		t.Errorf("Нод записан неверно: %+v", n)
	}
	if m.LightAt(p, BankNight) != 12 {
		t.Errorf("Ожидался свет 12, получено %d", m.LightAt(p, BankNight))
	}
}
