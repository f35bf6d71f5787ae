package voxel

import "github.com/annel0/mmo-mapgen/internal/vec"

// Manip — плоский буфер нодов над областью Area. Аналог рабочей копии
// участка мира: генератор заполняет его содержимым, проходы mapgen читают
// и правят свет на месте.
//
// Буфер не потокобезопасен: на время операции предполагается
// эксклюзивный доступ вызывающей стороны.
type Manip struct {
	Area Area
	Data []Node
}

// NewManip выделяет буфер под область и помечает все ноды как
// несгенерированные (ContentIgnore).
func NewManip(min, max vec.Vec3) *Manip {
	a := NewArea(min, max)
	data := make([]Node, a.Volume())
	for i := range data {
		data[i].Content = ContentIgnore
	}
	return &Manip{Area: a, Data: data}
}

// GetNode возвращает копию нода по курсору
func (m *Manip) GetNode(c Cursor) Node {
	return m.Data[c]
}

// NodeAt возвращает копию нода по координатам
func (m *Manip) NodeAt(p vec.Vec3) Node {
	return m.Data[m.Area.Index(p)]
}

// SetNode записывает нод по координатам
func (m *Manip) SetNode(p vec.Vec3, n Node) {
	m.Data[m.Area.Index(p)] = n
}

// SetContent меняет материал нода по курсору. Используется коллабораторами,
// заполняющими буфер; проходы mapgen материал не трогают.
func (m *Manip) SetContent(c Cursor, id ContentID) {
	m.Data[c].Content = id
}

// SetLight записывает уровень света в выбранный канал нода
func (m *Manip) SetLight(c Cursor, b Bank, v uint8) {
	m.Data[c].Light.Set(b, v)
}

// LightAt возвращает уровень света канала по координатам
func (m *Manip) LightAt(p vec.Vec3, b Bank) uint8 {
	return m.Data[m.Area.Index(p)].Light.Get(b)
}
