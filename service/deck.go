package service

import (
	"go-odds/dto"
	"go-odds/entities"
)

// GetStandardDeck 返回标准 52 张牌堆
func GetStandardDeck() dto.DeckResponse {
	deck := entities.StandardDeck()
	return dto.DeckResponse{Deck: deck, DeckSize: len(deck)}
}
