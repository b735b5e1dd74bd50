package algorithms

import "gridsearch-backend/models"

// UniformCost - 균일 비용 탐색 (UCS)
//
// (누적 비용, 발견 순번) 키의 최소 힙으로 가장 싼 노드부터 확장한다.
// 모든 간선 비용은 1이다. 꺼내기 전에 더 싼 경로가 발견되면 부모를
// 갱신하며 재삽입하고, 기록된 최적 비용보다 비싼 항목은 꺼낼 때 버린다.
type UniformCost struct{}

func (UniformCost) Name() string { return NameUniformCost }

func (UniformCost) Search(g *Grid) *Result {
	result := &Result{
		Path:                        []models.Position{},
		DynamicObstaclesEncountered: []models.Position{},
	}

	frontier := newCostQueue()
	frontier.Push(g.Start, 0)
	costs := map[models.Position]float64{g.Start: 0}
	explored := make(map[models.Position]bool)
	parents := make(map[models.Position]models.Position)

	for frontier.Len() > 0 {
		reconcileObstacles(g, frontier, &result.DynamicObstaclesEncountered)
		if frontier.Len() == 0 {
			break
		}

		result.FrontierHistory = append(result.FrontierHistory, frontier.Positions())

		entry, _ := frontier.Pop()
		current := entry.pos

		if explored[current] {
			continue
		}
		// 더 싼 경로가 이미 기록된 낡은 항목 버리기
		if best, ok := costs[current]; ok && entry.cost > best {
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
			newCost := entry.cost + 1
			if best, ok := costs[neighbor]; !ok || newCost < best {
				costs[neighbor] = newCost
				parents[neighbor] = current
				frontier.Push(neighbor, newCost)
			}
		}
	}

	result.NodesExplored = len(result.Explored)
	return result
}
