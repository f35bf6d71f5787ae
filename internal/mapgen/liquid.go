package mapgen

import (
	"github.com/annel0/mmo-mapgen/internal/util"
	"github.com/annel0/mmo-mapgen/internal/vec"
)

// UpdateLiquid сканирует колонки области сверху вниз и добавляет в очередь
// trans координату каждого нода, на котором состояние «жидкость/не жидкость»
// меняется. Начальное состояние колонки — «жидкость»: самый верхний
// нежидкий нод тоже попадает в очередь как свободная поверхность.
//
// Очередь принадлежит вызывающей стороне и накапливает результаты
// нескольких областей; дубликаты координат подавляются самой очередью.
func (mg *Mapgen) UpdateLiquid(trans *util.UniqueQueue, nmin, nmax vec.Vec3) {
	a := mg.VM.Area

	for z := nmin.Z; z <= nmax.Z; z++ {
		for x := nmin.X; x <= nmax.X; x++ {
			wasLiquid := true

			i := a.Index(vec.Vec3{X: x, Y: nmax.Y, Z: z})
			for y := nmax.Y; y >= nmin.Y; y-- {
				isLiquid := mg.NodeDefs.Get(mg.VM.Data[i].Content).IsLiquid

				// переход между жидкостью и не-жидкостью — в очередь
				if isLiquid != wasLiquid {
					if trans.Push(vec.Vec3{X: x, Y: y, Z: z}) {
						liquidTransitions.Inc()
					}
				}

				wasLiquid = isLiquid
				i = a.StepY(i, -1)
			}
		}
	}
}
