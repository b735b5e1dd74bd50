package algorithms

import "gridsearch-backend/models"

// DepthLimited - 깊이 제한 탐색 (DLS)
//
// (위치, 깊이) 스택을 쓰는 DFS. 깊이가 Limit에 도달한 노드는 확장하지
// 않지만 목표 검사는 제한 깊이에서도 수행한다.
type DepthLimited struct {
	Limit int
}

// NewDepthLimited - 깊이 제한 탐색 생성 (limit < 0이면 기본값)
func NewDepthLimited(limit int) DepthLimited {
	if limit < 0 {
		limit = DefaultDepthLimit
	}
	return DepthLimited{Limit: limit}
}

func (DepthLimited) Name() string { return NameDepthLimited }

func (s DepthLimited) Search(g *Grid) *Result {
	result := &Result{
		Path:                        []models.Position{},
		DynamicObstaclesEncountered: []models.Position{},
	}

	frontier := &depthStack{}
	frontier.Push(g.Start, 0)
	explored := make(map[models.Position]bool)
	inFrontier := map[models.Position]bool{g.Start: true}
	parents := make(map[models.Position]models.Position)

	for frontier.Len() > 0 {
		reconcileObstacles(g, frontier, &result.DynamicObstaclesEncountered)
		if frontier.Len() == 0 {
			break
		}

		result.FrontierHistory = append(result.FrontierHistory, frontier.Positions())

		entry, _ := frontier.Pop()
		current := entry.pos
		delete(inFrontier, current)

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

		// 제한 깊이에서는 확장하지 않는다
		if entry.depth >= s.Limit {
			continue
		}

		neighbors := g.Neighbors(current)
		for i := len(neighbors) - 1; i >= 0; i-- {
			neighbor := neighbors[i]
			if explored[neighbor] || inFrontier[neighbor] {
				continue
			}
			parents[neighbor] = current
			frontier.Push(neighbor, entry.depth+1)
			inFrontier[neighbor] = true
		}
	}

	result.NodesExplored = len(result.Explored)
	return result
}
