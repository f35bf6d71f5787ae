package mapgen

import (
	"github.com/annel0/mmo-mapgen/internal/vec"
	"github.com/annel0/mmo-mapgen/internal/voxel"
)

// simplifiedEngine — однобанковая модель освещения: сначала вертикальные
// лучи солнечного света, затем затухающее распространение от источников.
// Работает только с дневным каналом.
type simplifiedEngine struct{}

func (simplifiedEngine) Name() string { return "simplified" }

func (simplifiedEngine) Calculate(mg *Mapgen, nmin, nmax vec.Vec3) {
	a := voxel.NewArea(nmin, nmax)
	va := mg.VM.Area

	// верх области на уровне воды или ниже — область считается подземной
	underground := mg.WaterLevel >= nmax.Y

	// Сначала — вертикальные лучи солнечного света вниз по колонкам.
	for z := a.MinEdge.Z; z <= a.MaxEdge.Z; z++ {
		for x := a.MinEdge.X; x <= a.MaxEdge.X; x++ {
			// пробуем взять свет над верхней границей области
			overtop := vec.Vec3{X: x, Y: a.MaxEdge.Y + 1, Z: z}
			if !va.Contains(overtop) {
				// буфер не хранит ряд над областью — считаем его несгенерированным
				if underground {
					continue
				}
			} else {
				n := mg.VM.Data[va.Index(overtop)]
				if n.Content == voxel.ContentIgnore {
					if underground {
						continue
					}
				} else if n.Light.Day != voxel.LightSun {
					continue
				}
			}

			i := va.Index(vec.Vec3{X: x, Y: a.MaxEdge.Y, Z: z})
			for y := a.MaxEdge.Y; y >= a.MinEdge.Y; y-- {
				n := &mg.VM.Data[i]
				if !mg.NodeDefs.Get(n.Content).SunlightPropagates {
					break
				}
				n.Light.Day = voxel.LightSun
				i = va.StepY(i, -1)
			}
		}
	}

	// Теперь распространяем солнечный свет и зажигаем источники.
	for z := a.MinEdge.Z; z <= a.MaxEdge.Z; z++ {
		for y := a.MinEdge.Y; y <= a.MaxEdge.Y; y++ {
			i := va.Index(vec.Vec3{X: a.MinEdge.X, Y: y, Z: z})
			for x := a.MinEdge.X; x <= a.MaxEdge.X; x, i = x+1, va.StepX(i, 1) {
				n := &mg.VM.Data[i]
				props := mg.NodeDefs.Get(n.Content)
				if n.Content == voxel.ContentIgnore || !props.LightPropagates {
					continue
				}

				if produced := props.LightSource & 0x0F; produced != 0 {
					n.Light.Day = produced
				}

				light := n.Light.Day
				if light == 0 {
					continue
				}

				p := vec.Vec3{X: x, Y: y, Z: z}
				seeds := make([]lightSeed, 0, len(vec.Neighbors6))
				for _, off := range vec.Neighbors6 {
					seeds = append(seeds, lightSeed{pos: p.Add(off), light: light - 1})
				}
				spreadLight(mg, a, voxel.BankDay, seeds)
			}
		}
	}
}
