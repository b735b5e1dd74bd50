package handlers

import (
	"strconv"
	"time"

	"gridsearch-backend/services"

	"github.com/gofiber/fiber/v2"
)

// HandleGetRecentRuns - 최근 탐색 로그 조회
func HandleGetRecentRuns(c *fiber.Ctx) error {
	limitStr := c.Query("limit", "100")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 100
	}

	logs, err := services.GetRecentRuns(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch run logs",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(logs),
		"runs":    logs,
	})
}

// HandleGetRunsByAlgorithm - 알고리즘별 탐색 로그 조회
func HandleGetRunsByAlgorithm(c *fiber.Ctx) error {
	algorithm := c.Query("algorithm")
	limitStr := c.Query("limit", "100")

	if algorithm == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "algorithm parameter is required",
		})
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = 100
	}

	logs, err := services.GetRunsByAlgorithm(algorithm, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch run logs",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"count":     len(logs),
		"algorithm": algorithm,
		"runs":      logs,
	})
}

// HandleGetRunsByTimeRange - 시간 범위로 탐색 로그 조회
func HandleGetRunsByTimeRange(c *fiber.Ctx) error {
	startStr := c.Query("start") // RFC3339 format
	endStr := c.Query("end")     // RFC3339 format
	limitStr := c.Query("limit", "100")

	// 시작 시간 파싱
	var start time.Time
	if startStr != "" {
		parsed, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid start time format (use RFC3339)",
			})
		}
		start = parsed
	} else {
		// 기본: 24시간 전
		start = time.Now().Add(-24 * time.Hour)
	}

	// 종료 시간 파싱
	var end time.Time
	if endStr != "" {
		parsed, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid end time format (use RFC3339)",
			})
		}
		end = parsed
	} else {
		// 기본: 현재 시간
		end = time.Now()
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = 100
	}

	logs, err := services.GetRunsByTimeRange(start, end, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch run logs",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(logs),
		"time_range": fiber.Map{
			"start": start.Format(time.RFC3339),
			"end":   end.Format(time.RFC3339),
		},
		"runs": logs,
	})
}

// HandleGetRunStats - 탐색 통계 조회
func HandleGetRunStats(c *fiber.Ctx) error {
	hoursStr := c.Query("hours", "24")

	hours, err := strconv.Atoi(hoursStr)
	if err != nil || hours <= 0 {
		hours = 24
	}

	stats, err := services.GetRunStats(hours)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch stats",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}
