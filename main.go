package main

import (
	"log"
	"os"
	"time"

	"gridsearch-backend/handlers"
	"gridsearch-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
)

func main() {
	// .env 파일 로드
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env 파일을 찾을 수 없습니다.")
	}

	// MySQL 연결
	if err := services.InitDatabase(); err != nil {
		log.Fatalf("❌ DB 초기화 실패: %v", err)
	}

	// 로깅 시스템 초기화
	// flushSize: 50 (로그 50개마다 일괄 저장)
	// flushInterval: 10초 (매 10초마다 자동 저장)
	services.InitLogging(50, 10*time.Second)
	defer services.StopLogging() // 종료 시 남은 로그 저장

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173, http://localhost:3000",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	go handlers.Manager.Start()

	// 탐색 실행 서비스 (리플레이 스트리밍 포함)
	replay := services.NewReplayService(handlers.Manager.BroadcastMessage, 50*time.Millisecond)
	runner := services.NewSearchRunner(handlers.Manager.BroadcastMessage, replay)
	handlers.InitSearchRunner(runner)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Grid Search 서버가 실행 중입니다.")
	})

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"clients": handlers.Manager.GetClientCount(),
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// 탐색 실행
	api.Get("/algorithms", handlers.HandleListAlgorithms)
	api.Post("/search", handlers.HandleSearch)
	api.Post("/search/compare", handlers.HandleCompare)

	// 탐색 로그 조회 API
	runsAPI := api.Group("/runs")
	runsAPI.Get("/recent", handlers.HandleGetRecentRuns)         // 최근 실행
	runsAPI.Get("/algorithm", handlers.HandleGetRunsByAlgorithm) // 알고리즘별
	runsAPI.Get("/range", handlers.HandleGetRunsByTimeRange)     // 시간 범위
	runsAPI.Get("/stats", handlers.HandleGetRunStats)            // 통계

	// WebSocket
	app.Use("/websocket", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/websocket/viewer", websocket.New(handlers.HandleViewerWebSocket))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 서버 시작: http://localhost:%s", port)
	log.Printf("📡 WebSocket: ws://localhost:%s/websocket/viewer", port)
	log.Printf("🔍 탐색 API: POST http://localhost:%s/api/search", port)
	log.Printf("💾 로그 API: GET http://localhost:%s/api/runs/*", port)
	log.Fatal(app.Listen(":" + port))
}
