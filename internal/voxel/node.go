package voxel

// ContentID идентифицирует материал нода. Свойства материала хранятся
// отдельно (пакет nodedef), сам буфер знает только идентификатор.
type ContentID uint16

// ContentIgnore — зарезервированный идентификатор «нод ещё не сгенерирован».
// Такие ноды пропускаются всеми проходами освещения.
const ContentIgnore ContentID = 0xFFFF

// Уровни света. Значение убывает ровно на единицу за шаг распространения
// и никогда не опускается ниже нуля.
const (
	LightMin uint8 = 0
	LightSun uint8 = 15 // солнечный свет — выделенный максимум
)

// Bank выбирает канал освещения нода.
type Bank uint8

const (
	BankDay Bank = iota // дневной канал (единственный в упрощённой модели)
	BankNight
)

// LightPair хранит оба канала освещения как явные поля вместо упаковки
// двух ниблов в один байт. Диапазон значений прежний: 0..15.
type LightPair struct {
	Day   uint8
	Night uint8
}

// Get возвращает уровень света в выбранном канале
func (l LightPair) Get(b Bank) uint8 {
	if b == BankNight {
		return l.Night
	}
	return l.Day
}

// Set записывает уровень света в выбранный канал.
// Значение маскируется до 4 бит, как в упакованном представлении.
func (l *LightPair) Set(b Bank, v uint8) {
	v &= 0x0F
	if b == BankNight {
		l.Night = v
	} else {
		l.Day = v
	}
}

// Max возвращает больший из двух каналов
func (l LightPair) Max() uint8 {
	if l.Night > l.Day {
		return l.Night
	}
	return l.Day
}

// Node — один воксель: материал, свет и непрозрачный для этого пакета
// параметр Param2 (поворот, уровень жидкости и т.п.). Проходы освещения
// изменяют только поле Light.
type Node struct {
	Content ContentID
	Light   LightPair
	Param2  uint8
}
