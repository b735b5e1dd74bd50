package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"gridsearch-backend/models"
)

// 로깅 버퍼 (비동기 일괄 처리)
type LogBuffer struct {
	logs      []models.SearchRunLog
	mu        sync.Mutex
	flushSize int           // 일괄 저장 크기
	flushTime time.Duration // 자동 플러시 시간
	stopChan  chan bool
}

var logBuffer *LogBuffer

// InitLogging - 로깅 시스템 초기화
func InitLogging(flushSize int, flushInterval time.Duration) {
	logBuffer = &LogBuffer{
		logs:      make([]models.SearchRunLog, 0, flushSize*2),
		flushSize: flushSize,
		flushTime: flushInterval,
		stopChan:  make(chan bool),
	}

	// 자동 플러시 고루틴 시작
	go logBuffer.autoFlush()

	log.Printf("✅ 로깅 시스템 초기화 완료 (flushSize: %d, flushInterval: %v)", flushSize, flushInterval)
}

// autoFlush - 주기적 로그 저장
func (lb *LogBuffer) autoFlush() {
	ticker := time.NewTicker(lb.flushTime)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			lb.Flush()
		case <-lb.stopChan:
			lb.Flush() // 종료 시 남은 로그 저장
			return
		}
	}
}

// AddRunLog - 로그 버퍼에 추가 (비동기)
func AddRunLog(entry models.SearchRunLog) {
	if logBuffer == nil {
		log.Println("⚠️ 로깅 시스템이 초기화되지 않음")
		return
	}

	logBuffer.mu.Lock()
	logBuffer.logs = append(logBuffer.logs, entry)
	size := len(logBuffer.logs)
	logBuffer.mu.Unlock()

	// 버퍼 크기가 차면 즉시 플러시
	if size >= logBuffer.flushSize {
		go logBuffer.Flush()
	}
}

// Flush - 버퍼의 모든 로그를 DB에 저장
func (lb *LogBuffer) Flush() {
	lb.mu.Lock()
	if len(lb.logs) == 0 {
		lb.mu.Unlock()
		return
	}

	// 로그 복사 및 버퍼 초기화
	logsToSave := make([]models.SearchRunLog, len(lb.logs))
	copy(logsToSave, lb.logs)
	lb.logs = lb.logs[:0]
	lb.mu.Unlock()

	// DB 일괄 저장
	if db != nil {
		err := db.CreateInBatches(logsToSave, 100).Error
		if err != nil {
			log.Printf("❌ 로그 저장 실패: %v", err)
		} else {
			log.Printf("💾 탐색 로그 %d개 저장 완료", len(logsToSave))
		}
	}
}

// LogSearchRun - 탐색 실행 기록을 로그 버퍼에 추가
func LogSearchRun(record *RunRecord) {
	pathJSON, _ := json.Marshal(record.Result.Path)

	entry := models.SearchRunLog{
		CreatedAt:        time.Now(),
		RunID:            record.RunID,
		Algorithm:        record.Algorithm,
		GridWidth:        record.Config.Width,
		GridHeight:       record.Config.Height,
		StartX:           record.Config.Start.X,
		StartY:           record.Config.Start.Y,
		TargetX:          record.Config.Target.X,
		TargetY:          record.Config.Target.Y,
		WallCount:        record.WallCount,
		SpawnProbability: record.Config.SpawnProbability,
		DepthLimit:       record.Config.DepthLimit,
		Seed:             record.Seed,
		Found:            record.Result.Found,
		PathLength:       len(record.Result.Path),
		NodesExplored:    record.Result.NodesExplored,
		ObstaclesSpawned: len(record.Result.DynamicObstaclesEncountered),
		DurationMillis:   float64(record.Duration.Microseconds()) / 1000.0,
		PathJSON:         string(pathJSON),
	}
	AddRunLog(entry)
}

// GetRecentRuns - 최근 탐색 로그 조회
func GetRecentRuns(limit int) ([]models.SearchRunLog, error) {
	var logs []models.SearchRunLog
	err := db.Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// GetRunsByAlgorithm - 알고리즘별 탐색 로그 조회
func GetRunsByAlgorithm(algorithm string, limit int) ([]models.SearchRunLog, error) {
	var logs []models.SearchRunLog
	err := db.Where("algorithm = ?", algorithm).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// GetRunsByTimeRange - 시간 범위로 탐색 로그 조회
func GetRunsByTimeRange(start, end time.Time, limit int) ([]models.SearchRunLog, error) {
	var logs []models.SearchRunLog
	query := db.Where("created_at BETWEEN ? AND ?", start, end)

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Order("created_at DESC").Find(&logs).Error
	return logs, err
}

// GetRunStats - 알고리즘별 탐색 통계
func GetRunStats(hours int) (map[string]interface{}, error) {
	since := time.Now().Add(-time.Duration(hours) * time.Hour)

	var totalRuns int64
	db.Model(&models.SearchRunLog{}).
		Where("created_at >= ?", since).
		Count(&totalRuns)

	// 알고리즘별 집계
	var summaries []models.RunStatsSummary
	err := db.Model(&models.SearchRunLog{}).
		Select("algorithm, COUNT(*) as total_runs, SUM(CASE WHEN found THEN 1 ELSE 0 END) as found_runs, AVG(nodes_explored) as avg_nodes_explored, AVG(path_length) as avg_path_length").
		Where("created_at >= ?", since).
		Group("algorithm").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"total_runs": totalRuns,
		"algorithms": summaries,
		"time_range": map[string]interface{}{"hours": hours},
	}, nil
}

// StopLogging - 로깅 시스템 종료
func StopLogging() {
	if logBuffer != nil {
		logBuffer.stopChan <- true
		log.Println("🛑 로깅 시스템 종료")
	}
}
