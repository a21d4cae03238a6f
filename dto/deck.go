package dto

import "go-odds/entities"

// DeckResponse 标准牌堆
type DeckResponse struct {
	Deck     []entities.Card `json:"deck"`
	DeckSize int             `json:"deckSize"`
}

// HistoryItem 历史里的一次计算
type HistoryItem struct {
	DeckSize      int     `json:"deckSize"`
	MatchingCards int     `json:"matchingCards"`
	DrawCount     int     `json:"drawCount"`
	MinMatches    int     `json:"minMatches"`
	Probability   float64 `json:"probability"`
	Percentage    string  `json:"percentage"`
	CreatedAt     string  `json:"createdAt"`
}

// HistoryResponse 最近的计算历史，按时间倒序
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
