package util

import "github.com/annel0/mmo-mapgen/internal/vec"

// UniqueQueue — очередь координат с подавлением дубликатов.
// Порядок первой вставки сохраняется; повторная вставка той же координаты
// игнорируется. Накопитель живёт дольше одного прохода: вызывающая сторона
// добавляет в него результаты сканирования нескольких областей подряд.
type UniqueQueue struct {
	seen  map[vec.Vec3]struct{}
	items []vec.Vec3
}

// NewUniqueQueue создаёт пустую очередь
func NewUniqueQueue() *UniqueQueue {
	return &UniqueQueue{seen: make(map[vec.Vec3]struct{})}
}

// Push добавляет координату в конец очереди.
// Возвращает false, если координата уже присутствует.
func (q *UniqueQueue) Push(p vec.Vec3) bool {
	if _, ok := q.seen[p]; ok {
		return false
	}
	q.seen[p] = struct{}{}
	q.items = append(q.items, p)
	return true
}

// Pop снимает координату с начала очереди
func (q *UniqueQueue) Pop() (vec.Vec3, bool) {
	if len(q.items) == 0 {
		return vec.Vec3{}, false
	}
	p := q.items[0]
	q.items = q.items[1:]
	delete(q.seen, p)
	return p, true
}

// Len возвращает количество координат в очереди
func (q *UniqueQueue) Len() int {
	return len(q.items)
}

// Items возвращает срез накопленных координат в порядке вставки.
// Срез принадлежит очереди, изменять его нельзя.
func (q *UniqueQueue) Items() []vec.Vec3 {
	return q.items
}
