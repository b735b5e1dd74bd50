package models

import (
	"time"
)

// SearchRunLog - 탐색 실행 로그
type SearchRunLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RunID     string    `json:"run_id"`
	Algorithm string    `json:"algorithm"` // "bfs", "dfs", "ucs", "dls", "iddfs", "bidirectional"

	// 그리드 설정
	GridWidth        int     `json:"grid_width"`
	GridHeight       int     `json:"grid_height"`
	StartX           int     `json:"start_x"`
	StartY           int     `json:"start_y"`
	TargetX          int     `json:"target_x"`
	TargetY          int     `json:"target_y"`
	WallCount        int     `json:"wall_count"`
	SpawnProbability float64 `json:"spawn_probability"`
	DepthLimit       int     `json:"depth_limit"`
	Seed             int64   `json:"seed"`

	// 탐색 결과
	Found            bool    `json:"found"`
	PathLength       int     `json:"path_length"`
	NodesExplored    int     `json:"nodes_explored"`
	ObstaclesSpawned int     `json:"obstacles_spawned"`
	DurationMillis   float64 `json:"duration_ms"`

	// 메타데이터
	PathJSON string `json:"path_json"` // 최종 경로 JSON
}

// RunStatsSummary - 알고리즘별 통계 요약
type RunStatsSummary struct {
	Algorithm        string  `json:"algorithm"`
	TotalRuns        int64   `json:"total_runs"`
	FoundRuns        int64   `json:"found_runs"`
	AvgNodesExplored float64 `json:"avg_nodes_explored"`
	AvgPathLength    float64 `json:"avg_path_length"`
}
