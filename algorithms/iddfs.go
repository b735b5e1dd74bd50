package algorithms

import "gridsearch-backend/models"

// IterativeDeepening - 반복 심화 깊이 우선 탐색 (IDDFS)
//
// 깊이 제한 1부터 2×max(width, height)까지 재귀 DLS를 다시 실행한다.
// 반복마다 탐색 집합과 부모 맵은 처음부터 다시 만들고, 결과에는 전체
// 반복의 합집합을 보고한다. 재귀 형태라 정리할 프런티어 컨테이너가
// 없으므로 장애물 검사는 노드 10개 탐색마다 주기적으로만 수행한다.
type IterativeDeepening struct{}

func (IterativeDeepening) Name() string { return NameIterativeDeepening }

func (IterativeDeepening) Search(g *Grid) *Result {
	result := &Result{
		Path:                        []models.Position{},
		DynamicObstaclesEncountered: []models.Position{},
	}

	maxDepth := g.Width
	if g.Height > maxDepth {
		maxDepth = g.Height
	}
	maxDepth *= 2

	allExplored := make(map[models.Position]bool)
	var exploredOrder []models.Position

	for limit := 1; limit <= maxDepth; limit++ {
		iter := &deepeningIteration{
			grid:     g,
			explored: make(map[models.Position]bool),
			parents:  make(map[models.Position]models.Position),
			result:   result,
		}

		found := iter.descend(g.Start, limit)

		// 반복 간 합집합 (처음 등장한 순서 유지)
		for _, pos := range iter.order {
			if !allExplored[pos] {
				allExplored[pos] = true
				exploredOrder = append(exploredOrder, pos)
			}
		}

		if found {
			result.Path = reconstructPath(iter.parents, g.Target)
			result.Found = true
			break
		}
	}

	result.Explored = exploredOrder
	result.NodesExplored = len(exploredOrder)
	return result
}

// deepeningIteration - 깊이 제한 하나에 대한 재귀 탐색 상태
type deepeningIteration struct {
	grid     *Grid
	explored map[models.Position]bool
	order    []models.Position
	parents  map[models.Position]models.Position
	result   *Result
}

func (it *deepeningIteration) descend(current models.Position, limit int) bool {
	// 주기적 장애물 검사 (10노드마다, 프런티어 정리는 없음)
	if len(it.explored)%10 == 0 {
		reconcileObstacles(it.grid, nil, &it.result.DynamicObstaclesEncountered)
	}

	it.explored[current] = true
	it.order = append(it.order, current)

	// 리플레이용 스냅샷: 이 반복에서 지금까지 탐색한 노드들
	snapshot := make([]models.Position, len(it.order))
	copy(snapshot, it.order)
	it.result.FrontierHistory = append(it.result.FrontierHistory, snapshot)

	if current == it.grid.Target {
		return true
	}
	if limit == 0 {
		return false
	}

	for _, neighbor := range it.grid.Neighbors(current) {
		if it.explored[neighbor] {
			continue
		}
		it.parents[neighbor] = current
		if it.descend(neighbor, limit-1) {
			return true
		}
	}
	return false
}
