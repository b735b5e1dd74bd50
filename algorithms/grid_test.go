package algorithms

import (
	"testing"

	"gridsearch-backend/models"
)

func pos(x, y int) models.Position {
	return models.Position{X: x, Y: y}
}

func TestNewGridRejectsOutOfBounds(t *testing.T) {
	cases := []struct {
		name          string
		start, target models.Position
	}{
		{"start x negative", pos(-1, 0), pos(4, 4)},
		{"start beyond width", pos(5, 0), pos(4, 4)},
		{"target y negative", pos(0, 0), pos(0, -1)},
		{"target beyond height", pos(0, 0), pos(0, 5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGrid(5, 5, tc.start, tc.target); err == nil {
				t.Fatalf("expected construction error for start=%v target=%v", tc.start, tc.target)
			}
		})
	}

	if _, err := NewGrid(5, 5, pos(0, 0), pos(4, 4)); err != nil {
		t.Fatalf("valid grid rejected: %v", err)
	}
}

func TestAddWallIgnoresInvalidPositions(t *testing.T) {
	g, err := NewGrid(5, 5, pos(0, 0), pos(4, 4), WithSeed(1))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	g.AddWall(pos(-1, 2)) // out of bounds
	g.AddWall(pos(0, 0))  // start
	g.AddWall(pos(4, 4))  // target
	if g.WallCount() != 0 {
		t.Fatalf("invalid wall positions were added: %v", g.Walls())
	}

	g.AddWall(pos(2, 2))
	g.AddWall(pos(2, 2)) // duplicate
	if g.WallCount() != 1 {
		t.Fatalf("expected 1 wall, got %d", g.WallCount())
	}
	if !g.IsBlocked(pos(2, 2)) {
		t.Fatalf("wall cell not blocked")
	}
}

func TestIsBlocked(t *testing.T) {
	g, _ := NewGrid(3, 3, pos(0, 0), pos(2, 2), WithSeed(1))
	g.AddWall(pos(1, 1))

	if !g.IsBlocked(pos(-1, 0)) || !g.IsBlocked(pos(3, 0)) {
		t.Fatalf("out-of-bounds cells must be blocked")
	}
	if !g.IsBlocked(pos(1, 1)) {
		t.Fatalf("wall cell must be blocked")
	}
	if g.IsBlocked(pos(1, 0)) {
		t.Fatalf("free cell reported blocked")
	}
}

func TestNeighborsOrderInterior(t *testing.T) {
	g, _ := NewGrid(5, 5, pos(0, 0), pos(4, 4), WithSeed(1))

	got := g.Neighbors(pos(2, 2))
	want := []models.Position{
		pos(2, 1), // Up
		pos(3, 2), // Right
		pos(2, 3), // Down
		pos(3, 3), // BottomRight
		pos(1, 2), // Left
		pos(1, 1), // TopLeft
		pos(3, 1), // TopRight
		pos(1, 3), // BottomLeft
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d neighbors, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("neighbor %d: expected %v, got %v (full: %v)", i, want[i], got[i], got)
		}
	}
}

func TestNeighborsOrderCorner(t *testing.T) {
	g, _ := NewGrid(5, 5, pos(0, 0), pos(4, 4), WithSeed(1))

	got := g.Neighbors(pos(0, 0))
	want := []models.Position{
		pos(1, 0), // Right
		pos(0, 1), // Down
		pos(1, 1), // BottomRight
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d neighbors at corner, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("neighbor %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestNeighborsFiltersBlockedCells(t *testing.T) {
	g, _ := NewGrid(5, 5, pos(0, 0), pos(4, 4), WithSeed(1))
	g.AddWall(pos(2, 1))
	g.AddWall(pos(3, 3))

	for _, neighbor := range g.Neighbors(pos(2, 2)) {
		if neighbor == pos(2, 1) || neighbor == pos(3, 3) {
			t.Fatalf("blocked cell %v returned as neighbor", neighbor)
		}
	}
}

func TestAddRandomWallsSaturation(t *testing.T) {
	// 2×2 grid with start/target: only two free cells exist.
	g, _ := NewGrid(2, 2, pos(0, 0), pos(1, 1), WithSeed(42))

	added := g.AddRandomWalls(10)
	if added > 2 {
		t.Fatalf("added %d walls on a grid with 2 free cells", added)
	}
	if g.WallCount() != added {
		t.Fatalf("wall count %d does not match reported added %d", g.WallCount(), added)
	}
	for _, wall := range g.Walls() {
		if wall == g.Start || wall == g.Target {
			t.Fatalf("random wall placed on start/target: %v", wall)
		}
	}
}

func TestAddRandomWallsDeterministicWithSeed(t *testing.T) {
	g1, _ := NewGrid(10, 10, pos(0, 0), pos(9, 9), WithSeed(7))
	g2, _ := NewGrid(10, 10, pos(0, 0), pos(9, 9), WithSeed(7))

	g1.AddRandomWalls(20)
	g2.AddRandomWalls(20)

	w1, w2 := g1.Walls(), g2.Walls()
	if len(w1) != len(w2) {
		t.Fatalf("wall counts differ: %d vs %d", len(w1), len(w2))
	}
	for i := range w1 {
		if w1[i] != w2[i] {
			t.Fatalf("wall %d differs: %v vs %v", i, w1[i], w2[i])
		}
	}
}

func TestSpawnDynamicObstacle(t *testing.T) {
	g, _ := NewGrid(4, 4, pos(0, 0), pos(3, 3), WithSeed(3), WithSpawnProbability(1.0))
	g.AddWall(pos(1, 1))

	obstacle, ok := g.SpawnDynamicObstacle()
	if !ok {
		t.Fatalf("spawn with probability 1 produced nothing")
	}
	if obstacle == g.Start || obstacle == g.Target || obstacle == pos(1, 1) {
		t.Fatalf("obstacle spawned on an occupied cell: %v", obstacle)
	}
	if !g.IsBlocked(obstacle) {
		t.Fatalf("spawned obstacle %v is not blocked", obstacle)
	}

	// 단조 증가: 이미 있는 장애물 위에는 다시 생기지 않는다
	seen := map[models.Position]bool{obstacle: true}
	for i := 0; i < 20; i++ {
		next, ok := g.SpawnDynamicObstacle()
		if !ok {
			continue
		}
		if seen[next] {
			t.Fatalf("obstacle spawned twice at %v", next)
		}
		seen[next] = true
	}
}

func TestSpawnProbabilityZeroNeverSpawns(t *testing.T) {
	g, _ := NewGrid(5, 5, pos(0, 0), pos(4, 4), WithSeed(5), WithSpawnProbability(0))

	for i := 0; i < 100; i++ {
		if _, ok := g.SpawnDynamicObstacle(); ok {
			t.Fatalf("obstacle spawned with probability 0")
		}
	}
	if len(g.DynamicObstacles()) != 0 {
		t.Fatalf("dynamic obstacle set not empty")
	}
}

func TestSpawnReturnsNothingWhenSaturated(t *testing.T) {
	// 1×2 grid: both cells are start/target, no free cell exists.
	g, _ := NewGrid(1, 2, pos(0, 0), pos(0, 1), WithSeed(1), WithSpawnProbability(1.0))

	if _, ok := g.SpawnDynamicObstacle(); ok {
		t.Fatalf("obstacle spawned on a saturated grid")
	}
}

func TestClearDynamicObstacles(t *testing.T) {
	g, _ := NewGrid(4, 4, pos(0, 0), pos(3, 3), WithSeed(3), WithSpawnProbability(1.0))
	g.AddWall(pos(2, 2))

	if _, ok := g.SpawnDynamicObstacle(); !ok {
		t.Fatalf("spawn failed")
	}

	g.ClearDynamicObstacles()
	if len(g.DynamicObstacles()) != 0 {
		t.Fatalf("dynamic obstacles not cleared")
	}
	if g.WallCount() != 1 {
		t.Fatalf("static walls must survive a clear, got %d walls", g.WallCount())
	}
}

func TestHeuristicDistance(t *testing.T) {
	g, _ := NewGrid(10, 10, pos(0, 0), pos(7, 4), WithSeed(1))

	cases := []struct {
		from models.Position
		want float64
	}{
		{pos(0, 0), 11},
		{pos(7, 4), 0},
		{pos(9, 9), 7},
	}
	for _, tc := range cases {
		if got := g.HeuristicDistance(tc.from); got != tc.want {
			t.Fatalf("heuristic from %v: expected %v, got %v", tc.from, tc.want, got)
		}
	}
}
