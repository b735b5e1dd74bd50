package handlers

import (
	"log"
	"sync"
	"time"

	"gridsearch-backend/models"

	"github.com/gofiber/websocket/v2"
)

// Client - 접속한 웹 클라이언트 (리플레이 뷰어)
type Client struct {
	Conn *websocket.Conn
}

// ClientManager - 클라이언트 관리자
type ClientManager struct {
	clients    map[*websocket.Conn]*Client
	broadcast  chan models.WebSocketMessage
	register   chan *Client
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
}

// 전역 클라이언트 관리자
var Manager = &ClientManager{
	clients:    make(map[*websocket.Conn]*Client),
	broadcast:  make(chan models.WebSocketMessage, 256),
	register:   make(chan *Client),
	unregister: make(chan *websocket.Conn),
}

// Start - 클라이언트 관리 시작
func (manager *ClientManager) Start() {
	for {
		select {
		case client := <-manager.register:
			manager.mutex.Lock()
			manager.clients[client.Conn] = client
			manager.mutex.Unlock()
			log.Printf("클라이언트 등록: %s", client.Conn.RemoteAddr())

		case conn := <-manager.unregister:
			manager.mutex.Lock()
			if _, ok := manager.clients[conn]; ok {
				delete(manager.clients, conn)
				_ = conn.Close()
				log.Printf("클라이언트 해제: %s", conn.RemoteAddr())
			}
			manager.mutex.Unlock()

		case message := <-manager.broadcast:
			manager.handleBroadcast(message)
		}
	}
}

func (manager *ClientManager) handleBroadcast(message models.WebSocketMessage) {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	for conn := range manager.clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("전송 실패 (%s): %v", conn.RemoteAddr(), err)
			go func(c *websocket.Conn) { manager.unregister <- c }(conn)
		}
	}
}

// BroadcastMessage - 외부에서 호출할 수 있는 브로드캐스트 메서드
func (manager *ClientManager) BroadcastMessage(msg models.WebSocketMessage) {
	select {
	case manager.broadcast <- msg:
	default:
		log.Println("⚠️ broadcast 채널 가득 참")
	}
}

// GetClientCount - 연결된 클라이언트 수 반환
func (manager *ClientManager) GetClientCount() int {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()
	return len(manager.clients)
}

// HandleViewerWebSocket - 리플레이 뷰어 WebSocket Handler
func HandleViewerWebSocket(c *websocket.Conn) {
	client := &Client{Conn: c}

	Manager.register <- client

	defer func() {
		Manager.unregister <- c
	}()

	// 연결 확인 메시지 전송
	welcomeMsg := models.WebSocketMessage{
		Type: models.MessageTypeSystemInfo,
		Data: models.SystemInfo{
			ConnectedClients: Manager.GetClientCount(),
			ServerTime:       time.Now(),
		},
		Timestamp: time.Now().UnixMilli(),
	}
	_ = c.WriteJSON(welcomeMsg)

	// 뷰어는 수신 전용: 읽기 루프는 연결 유지/종료 감지용
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			log.Printf("웹 메시지 읽기 오류: %v", err)
			break
		}
	}
}
