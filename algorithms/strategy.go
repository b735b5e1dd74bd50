package algorithms

import "fmt"

// 알고리즘 이름 상수
const (
	NameBreadthFirst       = "bfs"
	NameDepthFirst         = "dfs"
	NameUniformCost        = "ucs"
	NameDepthLimited       = "dls"
	NameIterativeDeepening = "iddfs"
	NameBidirectional      = "bidirectional"
)

// DefaultDepthLimit - 깊이 제한 탐색 기본 제한값
const DefaultDepthLimit = 10

// Strategy - 탐색 전략 공통 계약
//
// 여섯 전략은 프런티어 규율과 종료 규칙만 다르고 같은 프로토콜을 공유한다:
// 스텝마다 장애물 정리 → 프런티어 스냅샷 → 노드 하나 꺼내기 → 탐색 완료
// 중복 건너뛰기 → 목표 검사 → 고정 순서로 이웃 확장.
type Strategy interface {
	Name() string
	Search(g *Grid) *Result
}

// Names - 지원 알고리즘 이름 목록 (고정 순서)
func Names() []string {
	return []string{
		NameBreadthFirst,
		NameDepthFirst,
		NameUniformCost,
		NameDepthLimited,
		NameIterativeDeepening,
		NameBidirectional,
	}
}

// ByName - 이름으로 전략 생성
//
// depthLimit은 깊이 제한 탐색에만 적용되며 0 이하이면 기본값을 쓴다.
func ByName(name string, depthLimit int) (Strategy, error) {
	switch name {
	case NameBreadthFirst:
		return BreadthFirst{}, nil
	case NameDepthFirst:
		return DepthFirst{}, nil
	case NameUniformCost:
		return UniformCost{}, nil
	case NameDepthLimited:
		if depthLimit <= 0 {
			depthLimit = DefaultDepthLimit
		}
		return DepthLimited{Limit: depthLimit}, nil
	case NameIterativeDeepening:
		return IterativeDeepening{}, nil
	case NameBidirectional:
		return Bidirectional{}, nil
	default:
		return nil, fmt.Errorf("지원하지 않는 알고리즘: %s", name)
	}
}
