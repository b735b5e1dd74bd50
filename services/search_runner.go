package services

import (
	"fmt"
	"log"
	"time"

	"gridsearch-backend/algorithms"
	"gridsearch-backend/models"

	"github.com/google/uuid"
)

// RunConfig - 탐색 실행 설정
type RunConfig struct {
	Width            int
	Height           int
	Start            models.Position
	Target           models.Position
	Walls            []models.Position
	RandomWalls      int
	SpawnProbability float64
	DepthLimit       int
	Seed             int64 // 0이면 시간 기반 시드
	Algorithm        string
}

// RunRecord - 한 번의 탐색 실행 기록
type RunRecord struct {
	RunID     string             `json:"run_id"`
	Algorithm string             `json:"algorithm"`
	Config    RunConfig          `json:"-"`
	Seed      int64              `json:"seed"`
	WallCount int                `json:"wall_count"`
	Walls     []models.Position  `json:"walls"`
	Result    *algorithms.Result `json:"result"`
	Duration  time.Duration      `json:"-"`
}

// SearchRunner - 탐색 실행 서비스
//
// 그리드 구성, 전략 실행, 실행 로그 적재, 결과 브로드캐스트를 담당한다.
type SearchRunner struct {
	broadcastFunc func(models.WebSocketMessage)
	replay        *ReplayService
}

// NewSearchRunner - SearchRunner 생성
func NewSearchRunner(broadcastFunc func(models.WebSocketMessage), replay *ReplayService) *SearchRunner {
	return &SearchRunner{
		broadcastFunc: broadcastFunc,
		replay:        replay,
	}
}

// Run - 전략 하나 실행
func (r *SearchRunner) Run(cfg RunConfig) (*RunRecord, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := r.buildGrid(cfg, seed)
	if err != nil {
		return nil, err
	}

	strategy, err := algorithms.ByName(cfg.Algorithm, cfg.DepthLimit)
	if err != nil {
		return nil, err
	}

	record := r.execute(grid, strategy, cfg, seed)

	// 로그 적재 + 요약 브로드캐스트
	LogSearchRun(record)
	r.broadcastSummary(record)

	// 프런티어 스냅샷 리플레이 스트리밍
	if r.replay != nil {
		r.replay.Stream(record)
	}

	return record, nil
}

// RunAll - 같은 그리드에서 여섯 전략 모두 실행 (비교 모드)
//
// 실행 사이마다 동적 장애물을 초기화해서 각 전략이 같은 정적 환경에서
// 출발하게 한다.
func (r *SearchRunner) RunAll(cfg RunConfig) ([]*RunRecord, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := r.buildGrid(cfg, seed)
	if err != nil {
		return nil, err
	}

	records := make([]*RunRecord, 0, len(algorithms.Names()))
	for _, name := range algorithms.Names() {
		strategy, err := algorithms.ByName(name, cfg.DepthLimit)
		if err != nil {
			return nil, err
		}

		grid.ClearDynamicObstacles()

		runCfg := cfg
		runCfg.Algorithm = name
		record := r.execute(grid, strategy, runCfg, seed)

		LogSearchRun(record)
		r.broadcastSummary(record)
		records = append(records, record)
	}

	return records, nil
}

// buildGrid - 설정으로 그리드 구성
func (r *SearchRunner) buildGrid(cfg RunConfig, seed int64) (*algorithms.Grid, error) {
	grid, err := algorithms.NewGrid(cfg.Width, cfg.Height, cfg.Start, cfg.Target,
		algorithms.WithSpawnProbability(cfg.SpawnProbability),
		algorithms.WithSeed(seed),
	)
	if err != nil {
		return nil, fmt.Errorf("그리드 생성 실패: %w", err)
	}

	for _, wall := range cfg.Walls {
		grid.AddWall(wall)
	}
	if cfg.RandomWalls > 0 {
		added := grid.AddRandomWalls(cfg.RandomWalls)
		if added < cfg.RandomWalls {
			// 포화된 그리드: 에러가 아니라 벽이 적게 깔린 채로 진행
			log.Printf("⚠️ 랜덤 벽 %d개 요청 중 %d개만 추가됨 (그리드 포화)", cfg.RandomWalls, added)
		}
	}

	return grid, nil
}

// execute - 전략 실행 및 기록 생성
func (r *SearchRunner) execute(grid *algorithms.Grid, strategy algorithms.Strategy, cfg RunConfig, seed int64) *RunRecord {
	started := time.Now()
	result := strategy.Search(grid)
	duration := time.Since(started)

	record := &RunRecord{
		RunID:     uuid.New().String(),
		Algorithm: strategy.Name(),
		Config:    cfg,
		Seed:      seed,
		WallCount: grid.WallCount(),
		Walls:     grid.Walls(),
		Result:    result,
		Duration:  duration,
	}

	log.Printf("🔍 탐색 완료: %s (run=%s, found=%v, explored=%d, path=%d, obstacles=%d, %.2fms)",
		record.Algorithm, record.RunID[:8], result.Found, result.NodesExplored,
		len(result.Path), len(result.DynamicObstaclesEncountered),
		float64(duration.Microseconds())/1000.0)

	return record
}

// broadcastSummary - 실행 요약 브로드캐스트
func (r *SearchRunner) broadcastSummary(record *RunRecord) {
	if r.broadcastFunc == nil {
		return
	}

	msg := models.WebSocketMessage{
		Type: models.MessageTypeRunSummary,
		Data: models.RunSummaryData{
			RunID:            record.RunID,
			Algorithm:        record.Algorithm,
			Found:            record.Result.Found,
			PathLength:       len(record.Result.Path),
			NodesExplored:    record.Result.NodesExplored,
			ObstaclesSpawned: len(record.Result.DynamicObstaclesEncountered),
			DurationMillis:   float64(record.Duration.Microseconds()) / 1000.0,
			CreatedAt:        time.Now(),
		},
		Timestamp: time.Now().UnixMilli(),
	}
	r.broadcastFunc(msg)
}
