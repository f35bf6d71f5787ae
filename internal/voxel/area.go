package voxel

import (
	"fmt"

	"github.com/annel0/mmo-mapgen/internal/vec"
)

// Area представляет осевой параллелепипед вокселей с включающими границами.
// Значение копируется свободно — внутри только два вектора.
type Area struct {
	MinEdge vec.Vec3
	MaxEdge vec.Vec3
}

// Cursor — позиция внутри плоского буфера области.
// Шаг вдоль оси выполняется дешёвым сложением со страйдом, без повторного
// вычисления индекса по трём координатам.
type Cursor int

// NewArea создаёт область по двум углам. Паникует, если min > max по любой оси:
// такая область — ошибка программирования вызывающей стороны.
func NewArea(min, max vec.Vec3) Area {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		panic(fmt.Sprintf("voxel: некорректная область min=%v max=%v", min, max))
	}
	return Area{MinEdge: min, MaxEdge: max}
}

// Extent возвращает размеры области по осям (границы включающие)
func (a Area) Extent() vec.Vec3 {
	return vec.Vec3{
		X: a.MaxEdge.X - a.MinEdge.X + 1,
		Y: a.MaxEdge.Y - a.MinEdge.Y + 1,
		Z: a.MaxEdge.Z - a.MinEdge.Z + 1,
	}
}

// Volume возвращает количество вокселей в области
func (a Area) Volume() int {
	e := a.Extent()
	return e.X * e.Y * e.Z
}

// Contains проверяет, лежит ли точка внутри области
func (a Area) Contains(p vec.Vec3) bool {
	return p.X >= a.MinEdge.X && p.X <= a.MaxEdge.X &&
		p.Y >= a.MinEdge.Y && p.Y <= a.MaxEdge.Y &&
		p.Z >= a.MinEdge.Z && p.Z <= a.MaxEdge.Z
}

// Index возвращает курсор для точки. Выход за границы области — ошибка
// программирования: молчаливое заворачивание индекса портило бы соседние
// воксели, поэтому вместо этого паника.
func (a Area) Index(p vec.Vec3) Cursor {
	if !a.Contains(p) {
		panic(fmt.Sprintf("voxel: точка %v вне области [%v, %v]", p, a.MinEdge, a.MaxEdge))
	}
	e := a.Extent()
	return Cursor((p.Z-a.MinEdge.Z)*e.Y*e.X + (p.Y-a.MinEdge.Y)*e.X + (p.X - a.MinEdge.X))
}

// IndexXYZ — вариант Index без промежуточного вектора
func (a Area) IndexXYZ(x, y, z int) Cursor {
	return a.Index(vec.Vec3{X: x, Y: y, Z: z})
}

// Position восстанавливает координаты точки по курсору
func (a Area) Position(c Cursor) vec.Vec3 {
	e := a.Extent()
	i := int(c)
	return vec.Vec3{
		X: a.MinEdge.X + i%e.X,
		Y: a.MinEdge.Y + (i/e.X)%e.Y,
		Z: a.MinEdge.Z + i/(e.X*e.Y),
	}
}

// StepX смещает курсор вдоль оси X на delta вокселей
func (a Area) StepX(c Cursor, delta int) Cursor {
	return c + Cursor(delta)
}

// StepY смещает курсор вдоль оси Y на delta вокселей
func (a Area) StepY(c Cursor, delta int) Cursor {
	return c + Cursor(delta*a.Extent().X)
}

// StepZ смещает курсор вдоль оси Z на delta вокселей
func (a Area) StepZ(c Cursor, delta int) Cursor {
	e := a.Extent()
	return c + Cursor(delta*e.X*e.Y)
}
