package models

import "time"

// ========================================
// 메시지 타입 상수
// ========================================
const (
	// Server → Web (리플레이 중계)
	MessageTypeReplayStart = "replay_start" // 리플레이 시작
	MessageTypeReplayStep  = "replay_step"  // 프런티어 스냅샷 1프레임
	MessageTypeReplayDone  = "replay_done"  // 리플레이 종료 (최종 경로 포함)

	// Server → Web (실행 결과)
	MessageTypeRunSummary = "run_summary" // 탐색 실행 요약
	MessageTypeObstacle   = "obstacle"    // 동적 장애물 발생 알림

	// Server → All
	MessageTypeSystemInfo = "system_info" // 시스템 정보
)

// ========================================
// 공통 WebSocket 메시지 형식
// ========================================
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"` // Unix timestamp (ms)
}

// ========================================
// 리플레이 데이터
// ========================================

// ReplayStartData - 리플레이 시작 알림
type ReplayStartData struct {
	RunID      string   `json:"run_id"`
	Algorithm  string   `json:"algorithm"`
	GridWidth  int      `json:"grid_width"`
	GridHeight int      `json:"grid_height"`
	Start      Position `json:"start"`
	Target     Position `json:"target"`
	TotalSteps int      `json:"total_steps"`
}

// ReplayStepData - 탐색 1스텝의 프런티어 스냅샷
type ReplayStepData struct {
	RunID    string     `json:"run_id"`
	Step     int        `json:"step"`
	Frontier []Position `json:"frontier"`
}

// ReplayDoneData - 리플레이 종료 데이터
type ReplayDoneData struct {
	RunID         string     `json:"run_id"`
	Found         bool       `json:"found"`
	Path          []Position `json:"path"`
	NodesExplored int        `json:"nodes_explored"`
}

// ========================================
// 실행 요약 데이터
// ========================================

// RunSummaryData - 탐색 실행 요약
type RunSummaryData struct {
	RunID            string    `json:"run_id"`
	Algorithm        string    `json:"algorithm"`
	Found            bool      `json:"found"`
	PathLength       int       `json:"path_length"`
	NodesExplored    int       `json:"nodes_explored"`
	ObstaclesSpawned int       `json:"obstacles_spawned"`
	DurationMillis   float64   `json:"duration_ms"`
	CreatedAt        time.Time `json:"created_at"`
}

// ObstacleData - 탐색 중 발생한 동적 장애물
type ObstacleData struct {
	RunID    string   `json:"run_id"`
	Position Position `json:"position"`
}

// ========================================
// 시스템 정보
// ========================================
type SystemInfo struct {
	ConnectedClients int       `json:"connected_clients"`
	ServerTime       time.Time `json:"server_time"`
}
