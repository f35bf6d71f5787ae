package mapgen

import "github.com/annel0/mmo-mapgen/internal/vec"

// NotifyKind — вид примечательного места, отмеченного при генерации
type NotifyKind int

const (
	NotifyDungeon NotifyKind = iota
	NotifyTemple
	NotifyCaveBegin
	NotifyCaveEnd
	NotifyLargeCaveBegin
	NotifyLargeCaveEnd

	numNotifyKinds
)

// String возвращает имя вида отметки
func (k NotifyKind) String() string {
	switch k {
	case NotifyDungeon:
		return "dungeon"
	case NotifyTemple:
		return "temple"
	case NotifyCaveBegin:
		return "cave_begin"
	case NotifyCaveEnd:
		return "cave_end"
	case NotifyLargeCaveBegin:
		return "large_cave_begin"
	case NotifyLargeCaveEnd:
		return "large_cave_end"
	default:
		return "unknown"
	}
}

// notifyFlag возвращает флаг генерации, управляющий видом отметки
func notifyFlag(k NotifyKind) Flags {
	switch k {
	case NotifyDungeon, NotifyTemple:
		return FlagDungeons
	default:
		return FlagCaves
	}
}

// GenNotify накапливает координаты примечательных мест по видам: подземелья,
// храмы, начала и концы пещер. Журнал диагностический, живёт один проход
// генерации; очищает его владелец журнала.
type GenNotify struct {
	flags  Flags
	events [numNotifyKinds][]vec.Vec3
}

// NewGenNotify создаёт журнал, принимающий отметки только для видов,
// чей этап включён флагами
func NewGenNotify(flags Flags) *GenNotify {
	return &GenNotify{flags: flags}
}

// Add добавляет координату отметки. Отметки выключенных этапов игнорируются.
func (gn *GenNotify) Add(k NotifyKind, p vec.Vec3) {
	if k < 0 || k >= numNotifyKinds {
		return
	}
	if !gn.flags.Has(notifyFlag(k)) {
		return
	}
	gn.events[k] = append(gn.events[k], p)
}

// Get возвращает накопленные координаты вида в порядке добавления.
// Срез принадлежит журналу, изменять его нельзя.
func (gn *GenNotify) Get(k NotifyKind) []vec.Vec3 {
	if k < 0 || k >= numNotifyKinds {
		return nil
	}
	return gn.events[k]
}

// Clear очищает журнал целиком
func (gn *GenNotify) Clear() {
	for i := range gn.events {
		gn.events[i] = nil
	}
}
