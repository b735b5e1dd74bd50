package handlers

import (
	"log"

	"gridsearch-backend/algorithms"
	"gridsearch-backend/models"
	"gridsearch-backend/services"

	"github.com/gofiber/fiber/v2"
)

// 전역 탐색 실행 서비스
var searchRunner *services.SearchRunner

// InitSearchRunner - 탐색 실행 서비스 초기화
func InitSearchRunner(runner *services.SearchRunner) {
	searchRunner = runner
}

// SearchRequest - 탐색 실행 요청
type SearchRequest struct {
	Width            int               `json:"width"`
	Height           int               `json:"height"`
	Start            models.Position   `json:"start"`
	Target           models.Position   `json:"target"`
	Walls            []models.Position `json:"walls"`
	RandomWalls      int               `json:"random_walls"`
	SpawnProbability *float64          `json:"spawn_probability"` // 생략 시 기본값
	DepthLimit       int               `json:"depth_limit"`
	Seed             int64             `json:"seed"` // 0이면 시간 기반
	Algorithm        string            `json:"algorithm"`
}

// toRunConfig - 요청을 실행 설정으로 변환
func (req *SearchRequest) toRunConfig() services.RunConfig {
	spawnProbability := algorithms.DefaultSpawnProbability
	if req.SpawnProbability != nil {
		spawnProbability = *req.SpawnProbability
	}

	return services.RunConfig{
		Width:            req.Width,
		Height:           req.Height,
		Start:            req.Start,
		Target:           req.Target,
		Walls:            req.Walls,
		RandomWalls:      req.RandomWalls,
		SpawnProbability: spawnProbability,
		DepthLimit:       req.DepthLimit,
		Seed:             req.Seed,
		Algorithm:        req.Algorithm,
	}
}

// HandleSearch - 탐색 실행 (POST /api/search)
func HandleSearch(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "잘못된 요청 형식입니다",
		})
	}

	log.Printf("📍 탐색 요청: %s, %d×%d, (%d,%d)→(%d,%d), 벽 %d개+랜덤 %d개",
		req.Algorithm, req.Width, req.Height,
		req.Start.X, req.Start.Y, req.Target.X, req.Target.Y,
		len(req.Walls), req.RandomWalls)

	record, err := searchRunner.Run(req.toRunConfig())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"run":     record,
	})
}

// HandleCompare - 여섯 알고리즘 비교 실행 (POST /api/search/compare)
func HandleCompare(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "잘못된 요청 형식입니다",
		})
	}

	records, err := searchRunner.RunAll(req.toRunConfig())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	// 비교 요약 테이블
	summary := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		summary = append(summary, fiber.Map{
			"run_id":            record.RunID,
			"algorithm":         record.Algorithm,
			"found":             record.Result.Found,
			"path_length":       len(record.Result.Path),
			"nodes_explored":    record.Result.NodesExplored,
			"obstacles_spawned": len(record.Result.DynamicObstaclesEncountered),
			"duration_ms":       float64(record.Duration.Microseconds()) / 1000.0,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
		"runs":    records,
	})
}

// HandleListAlgorithms - 지원 알고리즘 목록 (GET /api/algorithms)
func HandleListAlgorithms(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"algorithms": algorithms.Names(),
	})
}
