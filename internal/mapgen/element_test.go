package mapgen

import "testing"

type testBiome struct {
	GenElementBase
}

func newTestBiome(name string) *testBiome {
	return &testBiome{GenElementBase{Name: name}}
}

func TestElementManagerAddAndGet(t *testing.T) {
	em := NewElementManager("биом", 8)

	plains := newTestBiome("plains")
	desert := newTestBiome("desert")

	id1, err := em.Add(plains)
	if err != nil {
		t.Fatalf("Ошибка регистрации: %v", err)
	}
	id2, err := em.Add(desert)
	if err != nil {
		t.Fatalf("Ошибка регистрации: %v", err)
	}

	if id1 == id2 {
		t.Error("Идентификаторы элементов должны различаться")
	}
	if plains.GenID() != id1 {
		t.Errorf("Элементу должен присваиваться id %d, получено %d", id1, plains.GenID())
	}
	if em.Get(id2) != desert {
		t.Error("Get должен возвращать зарегистрированный элемент")
	}
	if em.Get(99) != nil {
		t.Error("Get по несуществующему id должен возвращать nil")
	}
}

func TestElementManagerGetByName(t *testing.T) {
	em := NewElementManager("биом", 8)
	em.Add(newTestBiome("plains"))
	em.Add(newTestBiome("desert"))

	if e := em.GetByName("desert"); e == nil || e.GenName() != "desert" {
		t.Error("Поиск по имени должен находить элемент")
	}
	if em.GetByName("tundra") != nil {
		t.Error("Поиск несуществующего имени должен возвращать nil")
	}
}

func TestElementManagerReusesSlots(t *testing.T) {
	em := NewElementManager("биом", 8)

	em.Add(newTestBiome("plains"))
	id, _ := em.Add(newTestBiome("desert"))
	em.Add(newTestBiome("forest"))

	removed := em.Remove(id)
	if removed == nil || removed.GenName() != "desert" {
		t.Fatal("Remove должен возвращать удалённый элемент")
	}
	if em.Get(id) != nil {
		t.Error("Слот после удаления должен быть пуст")
	}

	// следующий добавленный занимает освободившийся слот
	tundra := newTestBiome("tundra")
	newID, err := em.Add(tundra)
	if err != nil {
		t.Fatalf("Ошибка регистрации: %v", err)
	}
	if newID != id {
		t.Errorf("Ожидалось переиспользование слота %d, получено %d", id, newID)
	}
}

func TestElementManagerLimit(t *testing.T) {
	em := NewElementManager("биом", 2)

	if _, err := em.Add(newTestBiome("a")); err != nil {
		t.Fatalf("Ошибка регистрации: %v", err)
	}
	if _, err := em.Add(newTestBiome("b")); err != nil {
		t.Fatalf("Ошибка регистрации: %v", err)
	}
	if _, err := em.Add(newTestBiome("c")); err == nil {
		t.Error("Переполнение менеджера должно давать ошибку")
	}
}
