// Package mapgen вычисляет производные атрибуты свежесгенерированной
// области воксельного мира: карту высот, границы жидкостей и освещение.
// Содержимое нодов пакет не решает — буфер заполняют коллабораторы
// (см. internal/worldgen), здесь он только читается, а правится лишь свет.
package mapgen

import (
	"fmt"

	"github.com/annel0/mmo-mapgen/internal/nodedef"
	"github.com/annel0/mmo-mapgen/internal/voxel"
)

// NodeDefManager — оракул свойств материалов. Должен быть чистой функцией
// идентификатора: результат для одного id не меняется между вызовами.
type NodeDefManager interface {
	Get(id voxel.ContentID) nodedef.Properties
}

// Params задаёт параметры генерации, общие для всех проходов
type Params struct {
	Seed       int64
	WaterLevel int        // уровень воды мира, влияет на признак «область под землёй»
	Flags      Flags      // набор включённых этапов генерации
	Engine     EngineKind // выбор модели освещения
}

// Mapgen держит состояние одного прохода генерации над буфером VM.
// Все операции синхронные и однопоточные; на время вызова предполагается
// эксклюзивный доступ к буферу, карте высот и накопителям.
type Mapgen struct {
	Seed       int64
	WaterLevel int
	Flags      Flags

	VM       *voxel.Manip
	NodeDefs NodeDefManager

	// Heightmap — внешняя карта высот. Колонки области обходятся в порядке
	// z, затем x, индекс растёт последовательно — смещение в большей карте
	// задаёт вызывающая сторона, передавая нужный подсрез.
	Heightmap []int

	// Notify накапливает координаты примечательных мест генерации
	// (подземелья, пещеры). Очищает его владелец, не проходы mapgen.
	Notify *GenNotify

	engine LightingEngine
}

// New создаёт Mapgen над буфером vm со справочником свойств ndef
func New(vm *voxel.Manip, ndef NodeDefManager, p Params) (*Mapgen, error) {
	if vm == nil {
		return nil, fmt.Errorf("mapgen: буфер вокселей не задан")
	}
	if ndef == nil {
		return nil, fmt.Errorf("mapgen: справочник нодов не задан")
	}

	engine, err := newEngine(p.Engine)
	if err != nil {
		return nil, err
	}

	return &Mapgen{
		Seed:       p.Seed,
		WaterLevel: p.WaterLevel,
		Flags:      p.Flags,
		VM:         vm,
		NodeDefs:   ndef,
		Notify:     NewGenNotify(p.Flags),
		engine:     engine,
	}, nil
}

// EngineName возвращает имя активной модели освещения
func (mg *Mapgen) EngineName() string {
	return mg.engine.Name()
}
