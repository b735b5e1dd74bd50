package algorithms

import "gridsearch-backend/models"

// BreadthFirst - 너비 우선 탐색 (BFS)
//
// FIFO 큐로 레벨 단위 확장. 비가중 그리드에서 처음 꺼낸 목표 노드가
// 간선 수 기준 최단 경로임을 보장한다.
type BreadthFirst struct{}

func (BreadthFirst) Name() string { return NameBreadthFirst }

func (BreadthFirst) Search(g *Grid) *Result {
	result := &Result{
		Path:                        []models.Position{},
		DynamicObstaclesEncountered: []models.Position{},
	}

	frontier := &positionQueue{}
	frontier.PushBack(g.Start)
	explored := make(map[models.Position]bool)
	inFrontier := map[models.Position]bool{g.Start: true}
	parents := make(map[models.Position]models.Position)

	for frontier.Len() > 0 {
		reconcileObstacles(g, frontier, &result.DynamicObstaclesEncountered)
		if frontier.Len() == 0 {
			break
		}

		result.FrontierHistory = append(result.FrontierHistory, frontier.Positions())

		current, _ := frontier.PopFront()
		delete(inFrontier, current)

		// 동적 장애물 때문에 생길 수 있는 중복 꺼내기 건너뛰기
		if explored[current] {
			continue
		}
		explored[current] = true
		result.Explored = append(result.Explored, current)

		if current == g.Target {
			result.Path = reconstructPath(parents, current)
			result.Found = true
			break
		}

		for _, neighbor := range g.Neighbors(current) {
			if explored[neighbor] || inFrontier[neighbor] {
				continue
			}
			parents[neighbor] = current
			frontier.PushBack(neighbor)
			inFrontier[neighbor] = true
		}
	}

	result.NodesExplored = len(result.Explored)
	return result
}
