package algorithms

import "gridsearch-backend/models"

// DepthFirst - 깊이 우선 탐색 (DFS)
//
// LIFO 스택으로 한 가지를 끝까지 파고든다. 스택이 순서를 뒤집으므로
// 이웃을 역순으로 넣어 꺼내는 순서가 이웃 우선순위와 일치하게 한다.
// 최단 경로 보장은 없다.
type DepthFirst struct{}

func (DepthFirst) Name() string { return NameDepthFirst }

func (DepthFirst) Search(g *Grid) *Result {
	result := &Result{
		Path:                        []models.Position{},
		DynamicObstaclesEncountered: []models.Position{},
	}

	frontier := &positionStack{}
	frontier.Push(g.Start)
	explored := make(map[models.Position]bool)
	inFrontier := map[models.Position]bool{g.Start: true}
	parents := make(map[models.Position]models.Position)

	for frontier.Len() > 0 {
		reconcileObstacles(g, frontier, &result.DynamicObstaclesEncountered)
		if frontier.Len() == 0 {
			break
		}

		result.FrontierHistory = append(result.FrontierHistory, frontier.Positions())

		current, _ := frontier.Pop()
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

		neighbors := g.Neighbors(current)
		for i := len(neighbors) - 1; i >= 0; i-- {
			neighbor := neighbors[i]
			if explored[neighbor] || inFrontier[neighbor] {
				continue
			}
			parents[neighbor] = current
			frontier.Push(neighbor)
			inFrontier[neighbor] = true
		}
	}

	result.NodesExplored = len(result.Explored)
	return result
}
