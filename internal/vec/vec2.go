package vec

// Vec2 представляет координаты колонки мира.
// Поле X хранит мировую координату X, поле Y — мировую координату Z
// (соглашение пришло из 2D-части движка и сохранено для совместимости).
type Vec2 struct {
	X, Y int
}

// ToChunkCoords преобразует глобальные координаты колонки в координаты чанка
func (v Vec2) ToChunkCoords() Vec2 {
	return Vec2{X: v.X >> 4, Y: v.Y >> 4} // Деление на 16
}

// LocalInChunk возвращает локальные координаты внутри чанка
func (v Vec2) LocalInChunk() Vec2 {
	return Vec2{X: v.X & 0xF, Y: v.Y & 0xF} // Модуль 16
}
