package nodedef

import "github.com/annel0/mmo-mapgen/internal/voxel"

// Properties описывает физические и световые свойства материала.
// Чистая справочная запись: проходы генерации её только читают.
type Properties struct {
	Name               string
	Walkable           bool  // можно ли стоять на ноде (опора для карты высот)
	IsLiquid           bool  // жидкость (участвует в поиске границ жидкостей)
	LightPropagates    bool  // пропускает ли нод обычный свет
	SunlightPropagates bool  // пропускает ли нод солнечный свет без затухания
	LightSource        uint8 // собственное излучение, 0..15
}

// Реестр по умолчанию содержит минимальный набор материалов для демо и тестов.
// Полный каталог игра загружает из YAML (см. LoadYAML).
const (
	ContentAir   voxel.ContentID = 0
	ContentStone voxel.ContentID = 1
	ContentWater voxel.ContentID = 3
	ContentGlass voxel.ContentID = 4
	ContentLamp  voxel.ContentID = 10
)

// Registry хранит свойства материалов по их идентификаторам.
// Неизвестный идентификатор трактуется как непрозрачный непроходимый
// монолит (нулевые Properties) — безопасный дефолт для барьеров генерации.
type Registry struct {
	defs map[voxel.ContentID]Properties
}

// NewRegistry создаёт пустой реестр
func NewRegistry() *Registry {
	return &Registry{defs: make(map[voxel.ContentID]Properties)}
}

// Register добавляет или заменяет описание материала
func (r *Registry) Register(id voxel.ContentID, props Properties) {
	r.defs[id] = props
}

// Get возвращает свойства материала. Чистая функция идентификатора.
func (r *Registry) Get(id voxel.ContentID) Properties {
	return r.defs[id]
}

// Has проверяет, описан ли материал в реестре
func (r *Registry) Has(id voxel.ContentID) bool {
	_, ok := r.defs[id]
	return ok
}

// Len возвращает количество описанных материалов
func (r *Registry) Len() int {
	return len(r.defs)
}

// RegisterDefaults заполняет реестр встроенным набором материалов
func (r *Registry) RegisterDefaults() {
	r.Register(ContentAir, Properties{
		Name:               "air",
		LightPropagates:    true,
		SunlightPropagates: true,
	})
	r.Register(ContentStone, Properties{
		Name:     "stone",
		Walkable: true,
	})
	r.Register(ContentWater, Properties{
		Name:            "water",
		IsLiquid:        true,
		LightPropagates: true,
	})
	r.Register(ContentGlass, Properties{
		Name:               "glass",
		Walkable:           true,
		LightPropagates:    true,
		SunlightPropagates: true,
	})
	r.Register(ContentLamp, Properties{
		Name:            "lamp",
		Walkable:        true,
		LightPropagates: true,
		LightSource:     13,
	})
}
