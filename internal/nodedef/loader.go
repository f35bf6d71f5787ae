package nodedef

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"

	"github.com/annel0/mmo-mapgen/internal/voxel"
)

// Формат YAML-каталога материалов:
//
//	nodes:
//	  - id: 1
//	    name: stone
//	    walkable: true
//	  - id: 3
//	    name: water
//	    liquid: true
//	    light_propagates: true
//	  - id: 10
//	    name: lamp
//	    walkable: true
//	    light_propagates: true
//	    light_source: 13
type nodeCatalog struct {
	Nodes []nodeEntry `yaml:"nodes"`
}

type nodeEntry struct {
	ID                 uint16 `yaml:"id"`
	Name               string `yaml:"name"`
	Walkable           bool   `yaml:"walkable"`
	Liquid             bool   `yaml:"liquid"`
	LightPropagates    bool   `yaml:"light_propagates"`
	SunlightPropagates bool   `yaml:"sunlight_propagates"`
	LightSource        uint8  `yaml:"light_source"`
}

// LoadYAML читает каталог материалов из YAML-файла и регистрирует записи
// в реестре. Уже зарегистрированные идентификаторы перезаписываются.
func (r *Registry) LoadYAML(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ошибка чтения каталога нодов: %w", err)
	}

	var catalog nodeCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("ошибка разбора каталога нодов: %w", err)
	}

	for _, e := range catalog.Nodes {
		id := voxel.ContentID(e.ID)
		if id == voxel.ContentIgnore {
			return fmt.Errorf("идентификатор %d зарезервирован под несгенерированные ноды", e.ID)
		}
		if e.LightSource > voxel.LightSun {
			return fmt.Errorf("нод %q: light_source %d вне диапазона 0..15", e.Name, e.LightSource)
		}
		r.Register(id, Properties{
			Name:               e.Name,
			Walkable:           e.Walkable,
			IsLiquid:           e.Liquid,
			LightPropagates:    e.LightPropagates,
			SunlightPropagates: e.SunlightPropagates,
			LightSource:        e.LightSource,
		})
	}

	return nil
}
