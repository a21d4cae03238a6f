package dto

import "go-odds/entities"

// DeckMessage WebSocket 会话里设置牌堆的消息体
type DeckMessage struct {
	Deck []entities.Card `json:"deck"`
}
