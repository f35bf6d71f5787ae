// Package worldgen заполняет воксельный буфер ландшафтом. Это коллаборатор
// пакета mapgen: здесь решается, какие ноды существуют и из какого они
// материала; производные атрибуты (высоты, жидкости, свет) считает mapgen.
package worldgen

import (
	"github.com/annel0/mmo-mapgen/internal/nodedef"
	"github.com/annel0/mmo-mapgen/internal/util"
	"github.com/annel0/mmo-mapgen/internal/vec"
	"github.com/annel0/mmo-mapgen/internal/voxel"
)

// Generator генерирует ландшафт по шуму Перлина
type Generator struct {
	Seed       int64
	NoiseScale float64 // Масштаб основного шума (высота)
	WaterLevel int     // Уровень воды мира
	Amplitude  int     // Размах рельефа в нодах

	noise *util.Noise
}

// NewGenerator создаёт генератор ландшафта с указанным сидом
func NewGenerator(seed int64, waterLevel int) *Generator {
	return &Generator{
		Seed:       seed,
		NoiseScale: 0.05, // Настройка сглаженности ландшафта
		WaterLevel: waterLevel,
		Amplitude:  24,
		noise:      util.NewNoise(seed),
	}
}

// Fill заполняет колонки области [nmin, nmax]: камень до высоты рельефа,
// выше — вода до уровня воды, дальше воздух
func (g *Generator) Fill(vm *voxel.Manip, nmin, nmax vec.Vec3) {
	a := vm.Area

	for z := nmin.Z; z <= nmax.Z; z++ {
		for x := nmin.X; x <= nmax.X; x++ {
			ground := g.GroundLevel(x, z)

			i := a.Index(vec.Vec3{X: x, Y: nmax.Y, Z: z})
			for y := nmax.Y; y >= nmin.Y; y-- {
				switch {
				case y <= ground:
					vm.SetContent(i, nodedef.ContentStone)
				case y <= g.WaterLevel:
					vm.SetContent(i, nodedef.ContentWater)
				default:
					vm.SetContent(i, nodedef.ContentAir)
				}
				i = a.StepY(i, -1)
			}
		}
	}
}

// GroundLevel возвращает высоту рельефа колонки по шуму
func (g *Generator) GroundLevel(x, z int) int {
	noiseX := float64(x) * g.NoiseScale
	noiseZ := float64(z) * g.NoiseScale

	height := g.noise.Normalized2D(noiseX, noiseZ)
	return g.WaterLevel - g.Amplitude/2 + int(height*float64(g.Amplitude))
}
