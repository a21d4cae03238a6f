package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"go-odds/dto"
	"go-odds/entities"
	"go-odds/logger"
	"go-odds/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Session 一条实时计算会话：一个连接配一副会话牌堆
type Session struct {
	ID   string
	deck []entities.Card
}

// 所有活跃会话（按会话 ID 索引）
var (
	sessions    = make(map[string]*Session)
	sessionLock sync.Mutex
)

// SessionCount 当前活跃会话数
func SessionCount() int {
	sessionLock.Lock()
	defer sessionLock.Unlock()
	return len(sessions)
}

func registerSession(s *Session) {
	sessionLock.Lock()
	defer sessionLock.Unlock()
	sessions[s.ID] = s
}

func unregisterSession(id string) {
	sessionLock.Lock()
	defer sessionLock.Unlock()
	delete(sessions, id)
}

// 构建一条统一格式的消息（type + data）
func buildMessage(msgType string, data map[string]interface{}) []byte {
	if data == nil {
		data = make(map[string]interface{})
	}
	data["type"] = msgType // 加入消息类型字段
	msg, _ := json.Marshal(data)
	return msg
}

func errorMessage(message string) []byte {
	return buildMessage("error", map[string]interface{}{"message": message})
}

// HandleWebSocket 把 HTTP 请求升级成实时计算会话。
// 每个连接一个读循环，消息逐条处理、应答原路写回。
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L.Warn("WebSocket 升级失败", zap.Error(err))
		return
	}
	defer conn.Close()

	session := &Session{ID: uuid.New().String()}
	registerSession(session)
	defer unregisterSession(session.ID)

	// 向该客户端发送初始化消息（带上自己的 sessionId）
	init := buildMessage("init", map[string]interface{}{"sessionId": session.ID})
	if err := conn.WriteMessage(websocket.TextMessage, init); err != nil {
		return
	}
	logger.L.Info("✅ 会话建立", zap.String("sessionId", session.ID))

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			logger.L.Info("会话断开", zap.String("sessionId", session.ID))
			return
		}

		reply := session.handleMessage(raw)
		if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
			logger.L.Warn("❌ 应答发送失败", zap.String("sessionId", session.ID), zap.Error(err))
			return
		}
	}
}

// handleMessage 按消息类型分发，返回要写回的应答
func (s *Session) handleMessage(raw []byte) []byte {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return errorMessage("invalid message")
	}

	switch envelope.Type {
	case "deck":
		return s.handleDeck(raw)
	case "calculate":
		return s.handleCalculate(raw)
	case "draw":
		return s.handleDraw(raw)
	default:
		return errorMessage("unknown message type: " + envelope.Type)
	}
}

// 设置会话牌堆，之后的 calculate/draw 消息可以不再带 deck
func (s *Session) handleDeck(raw []byte) []byte {
	var msg dto.DeckMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return errorMessage("invalid message")
	}
	if len(msg.Deck) == 0 {
		return errorMessage("Missing required fields")
	}

	s.deck = msg.Deck
	return buildMessage("deck", map[string]interface{}{"deckSize": len(s.deck)})
}

func (s *Session) handleCalculate(raw []byte) []byte {
	var req dto.CalculateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorMessage("invalid message")
	}

	// 消息里没带牌堆就用会话牌堆
	if len(req.Deck) == 0 {
		req.Deck = s.deck
	}
	if len(req.Deck) == 0 || req.DrawCount == nil || req.MinMatches == nil {
		return errorMessage("Missing required fields")
	}

	resp, err := service.Calculate(req)
	if err != nil {
		return errorMessage(err.Error())
	}
	return buildMessage("result", map[string]interface{}{
		"probability": resp.Probability,
		"percentage":  resp.Percentage,
	})
}

func (s *Session) handleDraw(raw []byte) []byte {
	var req dto.DrawRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorMessage("invalid message")
	}

	if len(req.Deck) == 0 {
		req.Deck = s.deck
	}
	if len(req.Deck) == 0 || req.DrawCount == nil {
		return errorMessage("Missing required fields")
	}

	resp, err := service.ExampleDraw(req)
	if err != nil {
		return errorMessage(err.Error())
	}
	return buildMessage("drawResult", map[string]interface{}{
		"cards":   resp.Cards,
		"matches": resp.Matches,
	})
}
