package services

import (
	"log"
	"time"

	"gridsearch-backend/models"
)

// ReplayService - 탐색 리플레이 중계 서비스
//
// 탐색이 남긴 프런티어 스냅샷을 프레임 단위로 웹 클라이언트에 스트리밍한다.
// 탐색 자체는 이미 끝난 상태라 순수하게 읽기 전용 재생이다.
type ReplayService struct {
	broadcastFunc func(models.WebSocketMessage)
	frameInterval time.Duration
}

// NewReplayService - ReplayService 생성
func NewReplayService(broadcastFunc func(models.WebSocketMessage), frameInterval time.Duration) *ReplayService {
	if frameInterval <= 0 {
		frameInterval = 50 * time.Millisecond
	}
	return &ReplayService{
		broadcastFunc: broadcastFunc,
		frameInterval: frameInterval,
	}
}

// Stream - 실행 기록 리플레이 시작 (비동기)
func (rs *ReplayService) Stream(record *RunRecord) {
	if rs.broadcastFunc == nil || record == nil {
		return
	}
	go rs.stream(record)
}

// stream - 리플레이 메인 루프
func (rs *ReplayService) stream(record *RunRecord) {
	result := record.Result

	rs.send(models.MessageTypeReplayStart, models.ReplayStartData{
		RunID:      record.RunID,
		Algorithm:  record.Algorithm,
		GridWidth:  record.Config.Width,
		GridHeight: record.Config.Height,
		Start:      record.Config.Start,
		Target:     record.Config.Target,
		TotalSteps: len(result.FrontierHistory),
	})

	ticker := time.NewTicker(rs.frameInterval)
	defer ticker.Stop()

	for step, frontier := range result.FrontierHistory {
		<-ticker.C
		rs.send(models.MessageTypeReplayStep, models.ReplayStepData{
			RunID:    record.RunID,
			Step:     step,
			Frontier: frontier,
		})
	}

	// 탐색 중 발생했던 동적 장애물 알림
	for _, obstacle := range result.DynamicObstaclesEncountered {
		rs.send(models.MessageTypeObstacle, models.ObstacleData{
			RunID:    record.RunID,
			Position: obstacle,
		})
	}

	rs.send(models.MessageTypeReplayDone, models.ReplayDoneData{
		RunID:         record.RunID,
		Found:         result.Found,
		Path:          result.Path,
		NodesExplored: result.NodesExplored,
	})

	log.Printf("🎬 리플레이 완료: %s (%d 스텝)", record.RunID[:8], len(result.FrontierHistory))
}

// send - 메시지 브로드캐스트
func (rs *ReplayService) send(msgType string, data interface{}) {
	rs.broadcastFunc(models.WebSocketMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
}
