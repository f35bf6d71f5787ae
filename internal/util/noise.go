package util

import (
	"github.com/aquilax/go-perlin"
)

// Noise оборачивает генератор шума Перлина с фиксированным сидом.
// В отличие от глобального генератора, несколько экземпляров с разными
// сидами могут жить одновременно (карта высот и биомы считаются раздельно).
type Noise struct {
	p    *perlin.Perlin
	seed int64
}

// NewNoise создаёт генератор шума Перлина с указанным сидом
func NewNoise(seed int64) *Noise {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &Noise{
		p:    perlin.NewPerlin(alpha, beta, n, seed),
		seed: seed,
	}
}

// Seed возвращает сид генератора
func (ns *Noise) Seed() int64 {
	return ns.seed
}

// Normalized2D возвращает значение шума для указанных координат,
// приведённое из диапазона [-1, 1] к диапазону [0, 1]
func (ns *Noise) Normalized2D(x, y float64) float64 {
	return (ns.p.Noise2D(x, y) + 1.0) / 2.0
}
