package services

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"gridsearch-backend/algorithms"
	"gridsearch-backend/models"
)

func testRecord(runID, algorithm string, found bool, path []models.Position) *RunRecord {
	return &RunRecord{
		RunID:     runID,
		Algorithm: algorithm,
		Config: RunConfig{
			Width:            5,
			Height:           5,
			Start:            models.Position{X: 0, Y: 0},
			Target:           models.Position{X: 4, Y: 4},
			SpawnProbability: 0.02,
		},
		Seed:      42,
		WallCount: 3,
		Result: &algorithms.Result{
			Path:          path,
			Found:         found,
			NodesExplored: len(path) + 2,
		},
		Duration: 3 * time.Millisecond,
	}
}

func TestLogSearchRunPersistsRecord(t *testing.T) {
	setupTestDB(t)
	InitLogging(100, time.Hour)
	defer StopLogging()

	path := []models.Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	LogSearchRun(testRecord("run-1", "bfs", true, path))
	logBuffer.Flush()

	logs, err := GetRecentRuns(10)
	if err != nil {
		t.Fatalf("GetRecentRuns failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}

	entry := logs[0]
	if entry.RunID != "run-1" || entry.Algorithm != "bfs" || !entry.Found {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.PathLength != 3 || entry.NodesExplored != 5 {
		t.Fatalf("counters wrong: path=%d, explored=%d", entry.PathLength, entry.NodesExplored)
	}
	if entry.Seed != 42 || entry.WallCount != 3 || entry.SpawnProbability != 0.02 {
		t.Fatalf("config snapshot wrong: %+v", entry)
	}

	var stored []models.Position
	if err := json.Unmarshal([]byte(entry.PathJSON), &stored); err != nil {
		t.Fatalf("path JSON broken: %v", err)
	}
	if !reflect.DeepEqual(stored, path) {
		t.Fatalf("stored path %v, want %v", stored, path)
	}
}

func TestAddRunLogWithoutInit(t *testing.T) {
	logBuffer = nil
	// 초기화 전 호출은 조용히 무시되어야 한다
	AddRunLog(models.SearchRunLog{RunID: "orphan"})
}

func TestGetRunsByAlgorithm(t *testing.T) {
	setupTestDB(t)
	InitLogging(100, time.Hour)
	defer StopLogging()

	LogSearchRun(testRecord("run-bfs", "bfs", true, []models.Position{{X: 0, Y: 0}}))
	LogSearchRun(testRecord("run-dfs-1", "dfs", true, []models.Position{{X: 0, Y: 0}}))
	LogSearchRun(testRecord("run-dfs-2", "dfs", false, nil))
	logBuffer.Flush()

	logs, err := GetRunsByAlgorithm("dfs", 10)
	if err != nil {
		t.Fatalf("GetRunsByAlgorithm failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 dfs logs, got %d", len(logs))
	}
	for _, entry := range logs {
		if entry.Algorithm != "dfs" {
			t.Fatalf("filter leaked algorithm %q", entry.Algorithm)
		}
	}
}

func TestGetRunsByTimeRange(t *testing.T) {
	setupTestDB(t)
	InitLogging(100, time.Hour)
	defer StopLogging()

	LogSearchRun(testRecord("run-now", "ucs", true, []models.Position{{X: 0, Y: 0}}))
	logBuffer.Flush()

	now := time.Now()
	logs, err := GetRunsByTimeRange(now.Add(-time.Minute), now.Add(time.Minute), 10)
	if err != nil {
		t.Fatalf("GetRunsByTimeRange failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log in range, got %d", len(logs))
	}

	logs, err = GetRunsByTimeRange(now.Add(-2*time.Hour), now.Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("GetRunsByTimeRange failed: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected no logs in past range, got %d", len(logs))
	}
}

func TestGetRunStats(t *testing.T) {
	setupTestDB(t)
	InitLogging(100, time.Hour)
	defer StopLogging()

	LogSearchRun(testRecord("s1", "bfs", true, []models.Position{{X: 0, Y: 0}, {X: 1, Y: 1}}))
	LogSearchRun(testRecord("s2", "bfs", false, nil))
	LogSearchRun(testRecord("s3", "dfs", true, []models.Position{{X: 0, Y: 0}}))
	logBuffer.Flush()

	stats, err := GetRunStats(24)
	if err != nil {
		t.Fatalf("GetRunStats failed: %v", err)
	}
	if stats["total_runs"].(int64) != 3 {
		t.Fatalf("expected 3 total runs, got %v", stats["total_runs"])
	}

	summaries := stats["algorithms"].([]models.RunStatsSummary)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 algorithm groups, got %d", len(summaries))
	}
	for _, s := range summaries {
		if s.Algorithm == "bfs" {
			if s.TotalRuns != 2 || s.FoundRuns != 1 {
				t.Fatalf("bfs summary wrong: %+v", s)
			}
		}
	}
}
