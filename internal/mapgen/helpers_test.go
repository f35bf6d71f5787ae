package mapgen

import (
	"testing"

	"github.com/annel0/mmo-mapgen/internal/nodedef"
	"github.com/annel0/mmo-mapgen/internal/vec"
	"github.com/annel0/mmo-mapgen/internal/voxel"
)

// Материал-излучатель максимальной яркости для световых тестов
const contentBeacon voxel.ContentID = 42

func testRegistry() *nodedef.Registry {
	r := nodedef.NewRegistry()
	r.RegisterDefaults()
	r.Register(contentBeacon, nodedef.Properties{
		Name:            "beacon",
		Walkable:        true,
		LightPropagates: true,
		LightSource:     voxel.LightSun,
	})
	return r
}

// newTestMapgen собирает Mapgen над буфером [bmin, bmax] с тестовым реестром
func newTestMapgen(t *testing.T, bmin, bmax vec.Vec3, engine EngineKind, waterLevel int) *Mapgen {
	t.Helper()

	vm := voxel.NewManip(bmin, bmax)
	mg, err := New(vm, testRegistry(), Params{
		WaterLevel: waterLevel,
		Flags:      DefaultFlags,
		Engine:     engine,
	})
	if err != nil {
		t.Fatalf("Не удалось создать mapgen: %v", err)
	}
	return mg
}

// fillBox заливает параллелепипед буфера одним материалом
func fillBox(vm *voxel.Manip, min, max vec.Vec3, id voxel.ContentID) {
	for z := min.Z; z <= max.Z; z++ {
		for y := min.Y; y <= max.Y; y++ {
			for x := min.X; x <= max.X; x++ {
				vm.SetContent(vm.Area.Index(vec.Vec3{X: x, Y: y, Z: z}), id)
			}
		}
	}
}

// setColumn записывает материалы колонки сверху вниз, начиная с ytop
func setColumn(vm *voxel.Manip, x, z, ytop int, ids ...voxel.ContentID) {
	for k, id := range ids {
		vm.SetContent(vm.Area.Index(vec.Vec3{X: x, Y: ytop - k, Z: z}), id)
	}
}

// snapshotLight копирует канал света области в срез для сравнения
func snapshotLight(vm *voxel.Manip, bank voxel.Bank) []uint8 {
	out := make([]uint8, len(vm.Data))
	for i, n := range vm.Data {
		out[i] = n.Light.Get(bank)
	}
	return out
}
