package mapgen

import (
	"fmt"

	"github.com/annel0/mmo-mapgen/internal/logging"
)

// GenElement — именованный элемент генерации (биом, руда, декорация).
// Конкретные элементы встраивают GenElementBase и получают id при
// регистрации в менеджере.
type GenElement interface {
	GenName() string
	GenID() int
	setGenID(id int)
}

// GenElementBase — встраиваемая база для элементов генерации
type GenElementBase struct {
	Name string
	id   int
}

func (e *GenElementBase) GenName() string { return e.Name }
func (e *GenElementBase) GenID() int      { return e.id }
func (e *GenElementBase) setGenID(id int) { e.id = id }

// ElementManager хранит элементы генерации по числовым идентификаторам.
// Слоты удалённых элементов переиспользуются при следующей регистрации.
type ElementManager struct {
	title    string
	limit    int
	elements []GenElement
}

// NewElementManager создаёт менеджер с заголовком для логов и пределом
// количества элементов
func NewElementManager(title string, limit int) *ElementManager {
	return &ElementManager{title: title, limit: limit}
}

// Add регистрирует элемент и возвращает его id.
// Ошибка возвращается при переполнении менеджера.
func (em *ElementManager) Add(elem GenElement) (int, error) {
	for i, slot := range em.elements {
		if slot == nil {
			elem.setGenID(i)
			em.elements[i] = elem
			return i, nil
		}
	}

	if len(em.elements) >= em.limit {
		return -1, fmt.Errorf("менеджер %s переполнен (предел %d)", em.title, em.limit)
	}

	id := len(em.elements)
	elem.setGenID(id)
	em.elements = append(em.elements, elem)

	logging.Debug("ElementManager: добавлен %s %q (id=%d)", em.title, elem.GenName(), id)
	return id, nil
}

// Get возвращает элемент по id или nil
func (em *ElementManager) Get(id int) GenElement {
	if id < 0 || id >= len(em.elements) {
		return nil
	}
	return em.elements[id]
}

// GetByName ищет элемент по имени
func (em *ElementManager) GetByName(name string) GenElement {
	for _, elem := range em.elements {
		if elem != nil && elem.GenName() == name {
			return elem
		}
	}
	return nil
}

// Update заменяет элемент в слоте id и возвращает прежний
func (em *ElementManager) Update(id int, elem GenElement) GenElement {
	if id < 0 || id >= len(em.elements) {
		return nil
	}
	old := em.elements[id]
	em.elements[id] = elem
	if elem != nil {
		elem.setGenID(id)
	}
	return old
}

// Remove освобождает слот id и возвращает удалённый элемент
func (em *ElementManager) Remove(id int) GenElement {
	return em.Update(id, nil)
}
