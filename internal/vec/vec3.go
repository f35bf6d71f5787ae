package vec

// Vec3 представляет трехмерный вектор с целочисленными координатами.
// Y — вертикальная ось мира.
type Vec3 struct {
	X int
	Y int
	Z int
}

// Neighbors6 содержит смещения к шести соседям по граням.
// Порядок обхода: +Z, +Y, +X, -Z, -Y, -X.
var Neighbors6 = [6]Vec3{
	{X: 0, Y: 0, Z: 1},
	{X: 0, Y: 1, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: 0, Y: -1, Z: 0},
	{X: -1, Y: 0, Z: 0},
}

// Column возвращает координаты колонки (X, Z), игнорируя высоту
func (v Vec3) Column() Vec2 {
	return Vec2{
		X: v.X,
		Y: v.Z,
	}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// OffsetY возвращает вектор, смещённый по вертикали на dy
func (v Vec3) OffsetY(dy int) Vec3 {
	return Vec3{X: v.X, Y: v.Y + dy, Z: v.Z}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ManhattanDistanceTo возвращает манхэттенское расстояние до другого вектора
func (v Vec3) ManhattanDistanceTo(other Vec3) int {
	return abs(v.X-other.X) + abs(v.Y-other.Y) + abs(v.Z-other.Z)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
