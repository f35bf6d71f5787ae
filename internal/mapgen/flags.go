package mapgen

import (
	"fmt"
	"strings"
)

// Flags задаёт набор включённых этапов генерации
type Flags uint32

const (
	FlagTrees Flags = 1 << iota
	FlagCaves
	FlagDungeons
	FlagFlat
	FlagLight
)

// DefaultFlags — набор этапов по умолчанию
const DefaultFlags = FlagTrees | FlagCaves | FlagDungeons | FlagLight

var flagNames = []struct {
	name string
	flag Flags
}{
	{"trees", FlagTrees},
	{"caves", FlagCaves},
	{"dungeons", FlagDungeons},
	{"flat", FlagFlat},
	{"light", FlagLight},
}

// Has проверяет, что все флаги из f2 установлены
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// String возвращает строковое представление набора флагов
// в том же формате, что принимает ParseFlags
func (f Flags) String() string {
	parts := make([]string, 0, len(flagNames))
	for _, fd := range flagNames {
		if f.Has(fd.flag) {
			parts = append(parts, fd.name)
		} else {
			parts = append(parts, "no"+fd.name)
		}
	}
	return strings.Join(parts, ",")
}

// ParseFlags разбирает набор флагов из строки вида "trees,caves,nolight".
// Разбор начинается с DefaultFlags; приставка "no" сбрасывает флаг.
func ParseFlags(s string) (Flags, error) {
	flags := DefaultFlags

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}

		name, clear := part, false
		if strings.HasPrefix(part, "no") {
			name, clear = part[2:], true
		}

		found := false
		for _, fd := range flagNames {
			if fd.name == name {
				if clear {
					flags &^= fd.flag
				} else {
					flags |= fd.flag
				}
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("mapgen: неизвестный флаг генерации %q", part)
		}
	}

	return flags, nil
}
