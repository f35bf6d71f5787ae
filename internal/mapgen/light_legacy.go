package mapgen

import (
	"github.com/annel0/mmo-mapgen/internal/vec"
	"github.com/annel0/mmo-mapgen/internal/voxel"
)

// legacyEngine — двухбанковая модель освещения (день/ночь). Для каждого
// канала: стирание света со сбором источников, солнечное освещение,
// снятие устаревшего света наружу от границ области и повторное
// распространение от оставшихся источников. Оставлена для сверки с
// упрощённой моделью; правила затухания и порога общие.
type legacyEngine struct{}

func (legacyEngine) Name() string { return "legacy" }

func (legacyEngine) Calculate(mg *Mapgen, nmin, nmax vec.Vec3) {
	a := voxel.NewArea(nmin, nmax)

	// исторический нюанс: в этой модели область на самом уровне воды
	// подземной не считается (строгое сравнение, в отличие от упрощённой)
	underground := mg.WaterLevel > nmax.Y
	sunlight := !underground

	for _, bank := range [2]voxel.Bank{voxel.BankDay, voxel.BankNight} {
		sources := make(map[vec.Vec3]struct{})
		unlightFrom := make(map[vec.Vec3]uint8)

		clearLightAndCollectSources(mg, a, bank, sources, unlightFrom)
		if bank == voxel.BankDay {
			propagateSunlight(mg, a, sunlight, sources)
		}

		unspreadLight(mg, bank, unlightFrom, sources)
		spreadLightFromSources(mg, mg.VM.Area, bank, sources)
	}
}

// clearLightAndCollectSources стирает канал света во всей области, собирая
// попутно излучающие ноды и карту «откуда снимать свет»: граничные ноды,
// имевшие ненулевой свет, могли освещать соседей за пределами области.
func clearLightAndCollectSources(mg *Mapgen, a voxel.Area, bank voxel.Bank,
	sources map[vec.Vec3]struct{}, unlightFrom map[vec.Vec3]uint8) {

	va := mg.VM.Area

	for z := a.MinEdge.Z; z <= a.MaxEdge.Z; z++ {
		for x := a.MinEdge.X; x <= a.MaxEdge.X; x++ {
			i := va.Index(vec.Vec3{X: x, Y: a.MaxEdge.Y, Z: z})
			for y := a.MaxEdge.Y; y >= a.MinEdge.Y; y-- {
				n := &mg.VM.Data[i]
				p := vec.Vec3{X: x, Y: y, Z: z}

				oldLight := n.Light.Get(bank)
				n.Light.Set(bank, 0)

				if mg.NodeDefs.Get(n.Content).LightSource > 0 {
					sources[p] = struct{}{}
				}

				border := x == a.MinEdge.X || x == a.MaxEdge.X ||
					y == a.MinEdge.Y || y == a.MaxEdge.Y ||
					z == a.MinEdge.Z || z == a.MaxEdge.Z
				if border && oldLight != 0 {
					unlightFrom[p] = oldLight
				}

				i = va.StepY(i, -1)
			}
		}
	}
}

// propagateSunlight пускает солнечные лучи вниз по колонкам области и
// добавляет освещённые ноды в источники дневного канала
func propagateSunlight(mg *Mapgen, a voxel.Area, sunlight bool,
	sources map[vec.Vec3]struct{}) {

	va := mg.VM.Area

	for z := a.MinEdge.Z; z <= a.MaxEdge.Z; z++ {
		for x := a.MinEdge.X; x <= a.MaxEdge.X; x++ {
			overtop := vec.Vec3{X: x, Y: a.MaxEdge.Y + 1, Z: z}
			if !va.Contains(overtop) {
				if !sunlight {
					continue
				}
			} else {
				n := mg.VM.Data[va.Index(overtop)]
				if n.Content == voxel.ContentIgnore {
					if !sunlight {
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
				sources[vec.Vec3{X: x, Y: y, Z: z}] = struct{}{}
				i = va.StepY(i, -1)
			}
		}
	}
}

// unspreadLight каскадно снимает устаревший свет наружу от карты
// unlightFrom. Сосед тусклее снимаемого значения гасится и сам становится
// точкой снятия; сосед той же яркости или ярче — живой свет, он попадает
// в источники и при распространении вернёт освещение обратно.
// Работает в пределах всего буфера: устаревший свет мог уйти за область.
func unspreadLight(mg *Mapgen, bank voxel.Bank,
	unlightFrom map[vec.Vec3]uint8, sources map[vec.Vec3]struct{}) {

	va := mg.VM.Area

	for len(unlightFrom) > 0 {
		next := make(map[vec.Vec3]uint8)

		for p, oldLight := range unlightFrom {
			for _, off := range vec.Neighbors6 {
				n2pos := p.Add(off)
				if !va.Contains(n2pos) {
					continue
				}

				n2 := &mg.VM.Data[va.Index(n2pos)]
				l2 := n2.Light.Get(bank)

				switch {
				case l2 != 0 && l2 < oldLight:
					if mg.NodeDefs.Get(n2.Content).LightPropagates {
						n2.Light.Set(bank, 0)
						next[n2pos] = l2
					}
				case l2 >= oldLight:
					sources[n2pos] = struct{}{}
				}
			}
		}

		unlightFrom = next
	}
}

// spreadLightFromSources повторно распространяет свет от набора источников.
// Излучающие ноды сначала восстанавливают собственную яркость, затем
// заливание идёт по общим правилам затухания.
func spreadLightFromSources(mg *Mapgen, bounds voxel.Area, bank voxel.Bank,
	sources map[vec.Vec3]struct{}) {

	va := mg.VM.Area
	seeds := make([]lightSeed, 0, len(sources)*len(vec.Neighbors6))

	for p := range sources {
		if !va.Contains(p) {
			continue
		}
		n := &mg.VM.Data[va.Index(p)]

		if produced := mg.NodeDefs.Get(n.Content).LightSource & 0x0F; produced > n.Light.Get(bank) {
			n.Light.Set(bank, produced)
		}

		light := n.Light.Get(bank)
		if light == 0 {
			continue
		}
		for _, off := range vec.Neighbors6 {
			seeds = append(seeds, lightSeed{pos: p.Add(off), light: light - 1})
		}
	}

	spreadLight(mg, bounds, bank, seeds)
}
