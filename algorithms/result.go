package algorithms

import "gridsearch-backend/models"

// Result - 탐색 실행 결과
//
// 하나의 탐색이 끝나면 불변 레코드로 반환되며, 시각화/리포팅 쪽에서는
// 읽기 전용으로 소비한다. 목표에 도달하지 못한 것은 에러가 아니라
// Found=false인 정상 결과다.
type Result struct {
	// Path - start에서 target까지의 경로 (못 찾으면 빈 슬라이스)
	Path []models.Position `json:"path"`
	// Explored - 탐색 완료된 노드 (탐색 순서, 중복 없음)
	Explored []models.Position `json:"explored"`
	// FrontierHistory - 스텝별 프런티어 스냅샷 (리플레이용)
	FrontierHistory [][]models.Position `json:"frontier_history"`
	// DynamicObstaclesEncountered - 탐색 중 발생한 동적 장애물 (발생 순서)
	DynamicObstaclesEncountered []models.Position `json:"dynamic_obstacles_encountered"`
	// NodesExplored - 탐색 완료 노드 수
	NodesExplored int `json:"nodes_explored"`
	// Found - 목표 도달 여부
	Found bool `json:"found"`
}

// reconstructPath - 부모 맵을 따라 경로 재구성
//
// terminal에서 루트(부모 없음)까지 역방향으로 따라간 뒤 뒤집는다.
func reconstructPath(parents map[models.Position]models.Position, terminal models.Position) []models.Position {
	path := []models.Position{terminal}
	current := terminal
	for {
		parent, ok := parents[current]
		if !ok {
			break
		}
		path = append(path, parent)
		current = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
