package algorithms

import (
	"container/heap"

	"gridsearch-backend/models"
)

// Frontier - 알고리즘별 프런티어 자료구조의 공통 계약
//
// 장애물 정리 루틴이 프런티어의 내부 형태(큐/스택/우선순위 큐/깊이 스택)를
// 몰라도 동작하도록, 각 형태가 스스로 위치 추출과 정리를 구현한다.
type Frontier interface {
	Len() int
	// Positions - 스텝 기록용 스냅샷 (프런티어 순서 유지 사본)
	Positions() []models.Position
	// Prune - 차단된 항목 제거. 순서 기반 구조는 상대 순서를 유지한다.
	Prune(blocked func(models.Position) bool)
}

// ========================================
// FIFO 큐 (BFS, 양방향 탐색)
// ========================================

type positionQueue struct {
	items []models.Position
}

func (q *positionQueue) Len() int { return len(q.items) }

func (q *positionQueue) PushBack(pos models.Position) {
	q.items = append(q.items, pos)
}

func (q *positionQueue) PopFront() (models.Position, bool) {
	if len(q.items) == 0 {
		return models.Position{}, false
	}
	pos := q.items[0]
	q.items = q.items[1:]
	return pos, true
}

func (q *positionQueue) Positions() []models.Position {
	out := make([]models.Position, len(q.items))
	copy(out, q.items)
	return out
}

func (q *positionQueue) Prune(blocked func(models.Position) bool) {
	kept := q.items[:0]
	for _, pos := range q.items {
		if !blocked(pos) {
			kept = append(kept, pos)
		}
	}
	q.items = kept
}

// ========================================
// LIFO 스택 (DFS)
// ========================================

type positionStack struct {
	items []models.Position
}

func (s *positionStack) Len() int { return len(s.items) }

func (s *positionStack) Push(pos models.Position) {
	s.items = append(s.items, pos)
}

func (s *positionStack) Pop() (models.Position, bool) {
	if len(s.items) == 0 {
		return models.Position{}, false
	}
	pos := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return pos, true
}

func (s *positionStack) Positions() []models.Position {
	out := make([]models.Position, len(s.items))
	copy(out, s.items)
	return out
}

func (s *positionStack) Prune(blocked func(models.Position) bool) {
	kept := s.items[:0]
	for _, pos := range s.items {
		if !blocked(pos) {
			kept = append(kept, pos)
		}
	}
	s.items = kept
}

// ========================================
// 깊이 태그 스택 (DLS)
// ========================================

type depthEntry struct {
	pos   models.Position
	depth int
}

type depthStack struct {
	items []depthEntry
}

func (s *depthStack) Len() int { return len(s.items) }

func (s *depthStack) Push(pos models.Position, depth int) {
	s.items = append(s.items, depthEntry{pos: pos, depth: depth})
}

func (s *depthStack) Pop() (depthEntry, bool) {
	if len(s.items) == 0 {
		return depthEntry{}, false
	}
	entry := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return entry, true
}

func (s *depthStack) Positions() []models.Position {
	out := make([]models.Position, len(s.items))
	for i, entry := range s.items {
		out[i] = entry.pos
	}
	return out
}

func (s *depthStack) Prune(blocked func(models.Position) bool) {
	kept := s.items[:0]
	for _, entry := range s.items {
		if !blocked(entry.pos) {
			kept = append(kept, entry)
		}
	}
	s.items = kept
}

// ========================================
// 비용 우선순위 큐 (UCS)
// ========================================

// costEntry - (누적 비용, 발견 순번, 위치)
//
// 동일 비용은 발견 순번(FIFO)으로 타이브레이킹한다.
type costEntry struct {
	cost  float64
	seq   int
	pos   models.Position
	index int // for heap
}

type costHeap []*costEntry

func (h costHeap) Len() int { return len(h) }

func (h costHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}

func (h costHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *costHeap) Push(x interface{}) {
	n := len(*h)
	entry := x.(*costEntry)
	entry.index = n
	*h = append(*h, entry)
}

func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*h = old[0 : n-1]
	return entry
}

type costQueue struct {
	entries costHeap
	nextSeq int
}

func newCostQueue() *costQueue {
	q := &costQueue{entries: make(costHeap, 0)}
	heap.Init(&q.entries)
	return q
}

func (q *costQueue) Len() int { return len(q.entries) }

func (q *costQueue) Push(pos models.Position, cost float64) {
	heap.Push(&q.entries, &costEntry{cost: cost, seq: q.nextSeq, pos: pos})
	q.nextSeq++
}

func (q *costQueue) Pop() (costEntry, bool) {
	if len(q.entries) == 0 {
		return costEntry{}, false
	}
	entry := heap.Pop(&q.entries).(*costEntry)
	return *entry, true
}

func (q *costQueue) Positions() []models.Position {
	out := make([]models.Position, len(q.entries))
	for i, entry := range q.entries {
		out[i] = entry.pos
	}
	return out
}

func (q *costQueue) Prune(blocked func(models.Position) bool) {
	kept := q.entries[:0]
	for _, entry := range q.entries {
		if !blocked(entry.pos) {
			entry.index = len(kept)
			kept = append(kept, entry)
		}
	}
	q.entries = kept
	heap.Init(&q.entries)
}

// ========================================
// 장애물 정리 루틴
// ========================================

// reconcileObstacles - 동적 장애물 발생 검사 및 프런티어 정리
//
// 새 장애물이 생기면 실행 로그에 기록하고, 이제 차단된 항목을 프런티어에서
// 제거한다. 이미 탐색 완료된 노드는 건드리지 않는다 (완료된 탐색은 장애물이
// 되돌릴 수 없다는 모델). frontier가 nil이면 정리 없이 발생 검사만 한다.
func reconcileObstacles(g *Grid, frontier Frontier, encountered *[]models.Position) (models.Position, bool) {
	obstacle, ok := g.SpawnDynamicObstacle()
	if !ok {
		return models.Position{}, false
	}

	*encountered = append(*encountered, obstacle)
	if frontier != nil && frontier.Len() > 0 {
		frontier.Prune(g.IsBlocked)
	}
	return obstacle, true
}
