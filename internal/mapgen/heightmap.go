package mapgen

import (
	"time"

	"github.com/annel0/mmo-mapgen/internal/vec"
)

// FindGroundLevelFull ищет верхний проходимый нод колонки по всей высоте
// буфера. Возвращает Y на единицу ниже минимума, если опора не найдена.
func (mg *Mapgen) FindGroundLevelFull(p2d vec.Vec2) int {
	a := mg.VM.Area
	return mg.FindGroundLevel(p2d, a.MinEdge.Y, a.MaxEdge.Y)
}

// FindGroundLevel ищет верхний проходимый нод колонки в диапазоне
// [ymin, ymax]. Обход сверху вниз одним линейным проходом: курсор шагает
// по оси Y без пересчёта индекса. Возвращает ymin-1, если опоры нет.
func (mg *Mapgen) FindGroundLevel(p2d vec.Vec2, ymin, ymax int) int {
	a := mg.VM.Area
	i := a.Index(vec.Vec3{X: p2d.X, Y: ymax, Z: p2d.Y})

	y := ymax
	for ; y >= ymin; y-- {
		n := mg.VM.Data[i]
		if mg.NodeDefs.Get(n.Content).Walkable {
			break
		}
		i = a.StepY(i, -1)
	}
	return y // после полного обхода y == ymin-1
}

// UpdateHeightmap пересчитывает карту высот для колонок области [nmin, nmax].
// Если ограниченный скан упёрся в границу диапазона, а старое значение уже
// лежит за этой границей, старая карта считается более достоверной и
// не перезаписывается.
func (mg *Mapgen) UpdateHeightmap(nmin, nmax vec.Vec3) {
	if mg.Heightmap == nil {
		return
	}
	start := time.Now()

	index := 0
	for z := nmin.Z; z <= nmax.Z; z++ {
		for x := nmin.X; x <= nmax.X; x, index = x+1, index+1 {
			y := mg.FindGroundLevel(vec.Vec2{X: x, Y: z}, nmin.Y, nmax.Y)

			// граничные результаты не должны затирать более точные старые
			if y == nmax.Y && mg.Heightmap[index] > nmax.Y {
				continue
			}
			if y == nmin.Y-1 && mg.Heightmap[index] < nmin.Y {
				continue
			}

			mg.Heightmap[index] = y
		}
	}

	heightmapDuration.Observe(time.Since(start).Seconds())
}
