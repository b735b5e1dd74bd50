package algorithms

import "gridsearch-backend/models"

// Bidirectional - 양방향 탐색
//
// start에서 앞으로, target에서 뒤로 독립된 FIFO 큐 두 개를 번갈아 한
// 스텝씩 확장한다 (둘 다 비어있지 않으면 앞쪽 먼저). 확장에서 나온
// 이웃이 반대쪽 탐색 집합에 이미 있으면 그 노드가 만남점이고, 최종
// 경로는 start→만남점 경로와 만남점의 뒤쪽 부모 사슬→target을 이어
// 만든다. 두 방향은 같은 스레드에서 결정적으로 인터리빙된다.
type Bidirectional struct{}

func (Bidirectional) Name() string { return NameBidirectional }

func (Bidirectional) Search(g *Grid) *Result {
	result := &Result{
		Path:                        []models.Position{},
		DynamicObstaclesEncountered: []models.Position{},
	}

	// start == target이면 확장 없이 즉시 성공
	if g.Start == g.Target {
		result.Path = []models.Position{g.Start}
		result.Explored = []models.Position{g.Start}
		result.NodesExplored = 1
		result.Found = true
		return result
	}

	forward := &positionQueue{}
	forward.PushBack(g.Start)
	backward := &positionQueue{}
	backward.PushBack(g.Target)

	forwardExplored := make(map[models.Position]bool)
	backwardExplored := make(map[models.Position]bool)
	forwardIn := map[models.Position]bool{g.Start: true}
	backwardIn := map[models.Position]bool{g.Target: true}
	forwardParents := make(map[models.Position]models.Position)
	backwardParents := make(map[models.Position]models.Position)

	exploredSet := make(map[models.Position]bool)
	markExplored := func(pos models.Position) {
		if !exploredSet[pos] {
			exploredSet[pos] = true
			result.Explored = append(result.Explored, pos)
		}
	}

	var meeting models.Position
	met := false

	for forward.Len() > 0 || backward.Len() > 0 {
		// 양쪽 프런티어 각각 장애물 정리
		reconcileObstacles(g, forward, &result.DynamicObstaclesEncountered)
		reconcileObstacles(g, backward, &result.DynamicObstaclesEncountered)

		// === 앞쪽(정방향) 스텝 ===
		if forward.Len() > 0 {
			current, _ := forward.PopFront()
			delete(forwardIn, current)

			if !forwardExplored[current] {
				forwardExplored[current] = true
				markExplored(current)

				for _, neighbor := range g.Neighbors(current) {
					if backwardExplored[neighbor] {
						meeting = neighbor
						met = true
						forwardParents[neighbor] = current
						break
					}
					if !forwardExplored[neighbor] && !forwardIn[neighbor] {
						forwardParents[neighbor] = current
						forward.PushBack(neighbor)
						forwardIn[neighbor] = true
					}
				}
				if met {
					break
				}
			}
		}

		// === 뒤쪽(역방향) 스텝 ===
		if backward.Len() > 0 && !met {
			current, _ := backward.PopFront()
			delete(backwardIn, current)

			if !backwardExplored[current] {
				backwardExplored[current] = true
				markExplored(current)

				for _, neighbor := range g.Neighbors(current) {
					if forwardExplored[neighbor] {
						meeting = neighbor
						met = true
						backwardParents[neighbor] = current
						break
					}
					if !backwardExplored[neighbor] && !backwardIn[neighbor] {
						backwardParents[neighbor] = current
						backward.PushBack(neighbor)
						backwardIn[neighbor] = true
					}
				}
				if met {
					break
				}
			}
		}

		// 합쳐진 프런티어 스냅샷
		combined := forward.Positions()
		combined = append(combined, backward.Positions()...)
		result.FrontierHistory = append(result.FrontierHistory, combined)
	}

	if met {
		// start → 만남점
		path := reconstructPath(forwardParents, meeting)
		// 만남점의 뒤쪽 부모 사슬 → target (만남점 자신은 이미 포함됨)
		if next, ok := backwardParents[meeting]; ok {
			for {
				path = append(path, next)
				parent, ok := backwardParents[next]
				if !ok {
					break
				}
				next = parent
			}
		}
		result.Path = path
		result.Found = true
	}

	result.NodesExplored = len(result.Explored)
	return result
}
