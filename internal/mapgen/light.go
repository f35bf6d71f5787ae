package mapgen

import (
	"fmt"
	"time"

	"github.com/annel0/mmo-mapgen/internal/vec"
	"github.com/annel0/mmo-mapgen/internal/voxel"
)

// EngineKind выбирает модель расчёта освещения
type EngineKind string

const (
	// EngineSimplified — однобанковая модель: солнечные лучи сверху вниз
	// плюс затухающее распространение от источников. Используется по умолчанию.
	EngineSimplified EngineKind = "simplified"
	// EngineLegacy — двухбанковая модель (день/ночь) со сбором источников,
	// снятием устаревшего света и повторным распространением. Оставлена для
	// сверки результатов с упрощённой моделью.
	EngineLegacy EngineKind = "legacy"
)

// LightingEngine — стратегия расчёта освещения над под-областью буфера.
// Обе реализации разделяют правила затухания: минус единица за шаг,
// остановка на единице, выход за границы области запрещён.
type LightingEngine interface {
	Name() string
	Calculate(mg *Mapgen, nmin, nmax vec.Vec3)
}

func newEngine(kind EngineKind) (LightingEngine, error) {
	switch kind {
	case EngineSimplified, "":
		return simplifiedEngine{}, nil
	case EngineLegacy:
		return legacyEngine{}, nil
	default:
		return nil, fmt.Errorf("mapgen: неизвестная модель освещения %q", kind)
	}
}

// SetLighting заливает оба канала света области постоянным значением.
// Применяется, когда расчёт освещения отключён флагом FlagLight.
func (mg *Mapgen) SetLighting(nmin, nmax vec.Vec3, light voxel.LightPair) {
	a := mg.VM.Area

	for z := nmin.Z; z <= nmax.Z; z++ {
		for y := nmin.Y; y <= nmax.Y; y++ {
			i := a.Index(vec.Vec3{X: nmin.X, Y: y, Z: z})
			for x := nmin.X; x <= nmax.X; x, i = x+1, a.StepX(i, 1) {
				mg.VM.Data[i].Light = light
			}
		}
	}
}

// CalcLighting рассчитывает освещение области активной моделью
func (mg *Mapgen) CalcLighting(nmin, nmax vec.Vec3) {
	start := time.Now()
	mg.engine.Calculate(mg, nmin, nmax)
	lightingDuration.WithLabelValues(mg.engine.Name()).Observe(time.Since(start).Seconds())
}

// lightSeed — кандидат на запись света: координата и предлагаемое значение
type lightSeed struct {
	pos   vec.Vec3
	light uint8
}

// spreadLight — итеративная замена рекурсивного затухающего заливания.
// Кандидат записывается, только если нод внутри границ, пропускает свет и
// предлагаемое значение строго превышает текущее. Значение убывает на
// единицу за шаг, поэтому рабочий стек заведомо конечен; свет уровня 1
// записывается, но дальше не распространяется.
func spreadLight(mg *Mapgen, bounds voxel.Area, bank voxel.Bank, stack []lightSeed) {
	va := mg.VM.Area

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.light < 1 || !bounds.Contains(s.pos) {
			continue
		}

		i := va.Index(s.pos)
		n := &mg.VM.Data[i]
		// сравниваем немаскированное значение: каналы и так хранят 0..15
		if s.light <= n.Light.Get(bank) || !mg.NodeDefs.Get(n.Content).LightPropagates {
			continue
		}

		n.Light.Set(bank, s.light)
		if s.light <= 1 {
			continue
		}
		for _, off := range vec.Neighbors6 {
			stack = append(stack, lightSeed{pos: s.pos.Add(off), light: s.light - 1})
		}
	}
}
