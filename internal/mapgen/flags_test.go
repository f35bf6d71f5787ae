package mapgen

import "testing"

func TestParseFlagsDefaults(t *testing.T) {
	flags, err := ParseFlags("")
	if err != nil {
		t.Fatalf("Пустая строка флагов должна разбираться: %v", err)
	}
	if flags != DefaultFlags {
		t.Errorf("Ожидался набор по умолчанию %v, получено %v", DefaultFlags, flags)
	}
}

func TestParseFlagsNoPrefix(t *testing.T) {
	flags, err := ParseFlags("trees, nolight, flat")
	if err != nil {
		t.Fatalf("Ошибка разбора: %v", err)
	}

	if !flags.Has(FlagTrees) || !flags.Has(FlagFlat) {
		t.Error("Явно указанные флаги должны быть установлены")
	}
	if flags.Has(FlagLight) {
		t.Error("Приставка no должна сбрасывать флаг")
	}
	if !flags.Has(FlagCaves) {
		t.Error("Неупомянутые флаги сохраняют значение по умолчанию")
	}
}

func TestParseFlagsUnknown(t *testing.T) {
	if _, err := ParseFlags("trees,volcanoes"); err == nil {
		t.Error("Неизвестный флаг должен давать ошибку")
	}
}

func TestFlagsStringRoundTrip(t *testing.T) {
	flags, err := ParseFlags("nodungeons,flat")
	if err != nil {
		t.Fatalf("Ошибка разбора: %v", err)
	}

	back, err := ParseFlags(flags.String())
	if err != nil {
		t.Fatalf("Ошибка повторного разбора %q: %v", flags.String(), err)
	}
	if back != flags {
		t.Errorf("Строковое представление теряет информацию: %v -> %q -> %v", flags, flags.String(), back)
	}
}
