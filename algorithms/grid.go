package algorithms

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"gridsearch-backend/models"
)

// DefaultSpawnProbability - 스텝당 동적 장애물 발생 확률 기본값
const DefaultSpawnProbability = 0.02

// Grid - 탐색 대상 그리드 환경
//
// 정적 벽(walls)과 탐색 중 생겨나는 동적 장애물(dynamicObstacles)을 관리하고,
// 모든 탐색 알고리즘이 사용하는 점유/이웃 질의를 제공한다.
// 동적 장애물은 한 번의 탐색 동안 단조 증가하며, ClearDynamicObstacles로
// 다음 탐색 전에 초기화할 수 있다.
type Grid struct {
	Width  int
	Height int
	Start  models.Position
	Target models.Position

	walls            map[models.Position]bool
	dynamicObstacles map[models.Position]bool
	spawnProbability float64
	rng              *rand.Rand
}

// GridOption - Grid 생성 옵션
type GridOption func(*Grid)

// WithSpawnProbability - 동적 장애물 발생 확률 설정 [0.0 ~ 1.0]
func WithSpawnProbability(p float64) GridOption {
	return func(g *Grid) { g.spawnProbability = p }
}

// WithSeed - 난수 시드 설정 (재현 가능한 탐색용)
func WithSeed(seed int64) GridOption {
	return func(g *Grid) { g.rng = rand.New(rand.NewSource(seed)) }
}

// NewGrid - Grid 생성
//
// start/target이 그리드 범위를 벗어나면 에러를 반환한다.
func NewGrid(width, height int, start, target models.Position, opts ...GridOption) (*Grid, error) {
	g := &Grid{
		Width:            width,
		Height:           height,
		Start:            start,
		Target:           target,
		walls:            make(map[models.Position]bool),
		dynamicObstacles: make(map[models.Position]bool),
		spawnProbability: DefaultSpawnProbability,
	}

	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if !g.InBounds(start) {
		return nil, fmt.Errorf("시작 위치 (%d, %d)가 그리드 범위 %d×%d를 벗어났습니다", start.X, start.Y, width, height)
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("목표 위치 (%d, %d)가 그리드 범위 %d×%d를 벗어났습니다", target.X, target.Y, width, height)
	}

	return g, nil
}

// InBounds - 그리드 범위 내 검사
func (g *Grid) InBounds(pos models.Position) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// AddWall - 정적 벽 추가
//
// 범위 밖이거나 start/target 위치면 조용히 무시한다.
func (g *Grid) AddWall(pos models.Position) {
	if !g.InBounds(pos) || pos == g.Start || pos == g.Target {
		return
	}
	g.walls[pos] = true
}

// AddRandomWalls - 랜덤 벽 일괄 추가
//
// 최대 count×10회 시도하고 실제로 추가된 벽 수를 반환한다.
// 그리드가 포화되면 요청보다 적게 추가될 수 있다 (에러 아님).
func (g *Grid) AddRandomWalls(count int) int {
	maxAttempts := count * 10
	added := 0
	for attempts := 0; added < count && attempts < maxAttempts; attempts++ {
		pos := models.Position{X: g.rng.Intn(g.Width), Y: g.rng.Intn(g.Height)}
		if g.walls[pos] || pos == g.Start || pos == g.Target {
			continue
		}
		g.AddWall(pos)
		added++
	}
	return added
}

// IsBlocked - 위치 차단 여부
//
// 범위 밖, 정적 벽, 동적 장애물은 모두 차단으로 취급한다.
func (g *Grid) IsBlocked(pos models.Position) bool {
	if !g.InBounds(pos) {
		return true
	}
	return g.walls[pos] || g.dynamicObstacles[pos]
}

// Neighbors - 이동 가능한 이웃 반환 (고정 우선순위)
//
// 확장 순서는 계약이다: Up, Right, Down, BottomRight, Left, TopLeft,
// TopRight, BottomLeft. 비가중 탐색의 타이브레이킹과 스텝 추적 결과가
// 이 순서에 의존하므로 바꾸면 안 된다.
func (g *Grid) Neighbors(pos models.Position) []models.Position {
	moves := [8]models.Position{
		{X: pos.X, Y: pos.Y - 1},     // Up
		{X: pos.X + 1, Y: pos.Y},     // Right
		{X: pos.X, Y: pos.Y + 1},     // Down
		{X: pos.X + 1, Y: pos.Y + 1}, // BottomRight (대각선)
		{X: pos.X - 1, Y: pos.Y},     // Left
		{X: pos.X - 1, Y: pos.Y - 1}, // TopLeft (대각선)
		{X: pos.X + 1, Y: pos.Y - 1}, // TopRight (대각선)
		{X: pos.X - 1, Y: pos.Y + 1}, // BottomLeft (대각선)
	}

	neighbors := make([]models.Position, 0, 8)
	for _, next := range moves {
		if g.InBounds(next) && !g.IsBlocked(next) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// SpawnDynamicObstacle - 동적 장애물 발생 시도
//
// spawnProbability 확률로 빈 칸(벽/장애물/start/target 제외) 중 하나를
// 균등하게 골라 장애물로 만든다. 탐색 스텝당 최대 한 번만 호출해야
// 장애물 밀도가 유지되고 시드 기반 재현이 가능하다.
func (g *Grid) SpawnDynamicObstacle() (models.Position, bool) {
	if g.spawnProbability <= 0 {
		return models.Position{}, false
	}
	if g.rng.Float64() > g.spawnProbability {
		return models.Position{}, false
	}

	// 빈 칸 수집 (x, y 순회 순서 고정 - 시드 재현성)
	free := make([]models.Position, 0, g.Width*g.Height)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			pos := models.Position{X: x, Y: y}
			if g.walls[pos] || g.dynamicObstacles[pos] || pos == g.Start || pos == g.Target {
				continue
			}
			free = append(free, pos)
		}
	}
	if len(free) == 0 {
		return models.Position{}, false
	}

	obstacle := free[g.rng.Intn(len(free))]
	g.dynamicObstacles[obstacle] = true
	return obstacle, true
}

// ClearDynamicObstacles - 동적 장애물 전체 제거 (정적 벽은 유지)
func (g *Grid) ClearDynamicObstacles() {
	g.dynamicObstacles = make(map[models.Position]bool)
}

// HeuristicDistance - 목표까지의 맨해튼 거리
//
// 현재 알고리즘들은 사용하지 않지만 향후 정보 기반 탐색 확장을 위해 노출한다.
func (g *Grid) HeuristicDistance(pos models.Position) float64 {
	dx := pos.X - g.Target.X
	dy := pos.Y - g.Target.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// WallCount - 정적 벽 수
func (g *Grid) WallCount() int {
	return len(g.walls)
}

// Walls - 정적 벽 목록 (좌표순 정렬 사본)
func (g *Grid) Walls() []models.Position {
	return sortedPositions(g.walls)
}

// DynamicObstacles - 동적 장애물 목록 (좌표순 정렬 사본)
func (g *Grid) DynamicObstacles() []models.Position {
	return sortedPositions(g.dynamicObstacles)
}

func sortedPositions(set map[models.Position]bool) []models.Position {
	out := make([]models.Position, 0, len(set))
	for pos := range set {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
