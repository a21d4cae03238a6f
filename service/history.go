package service

import (
	"fmt"
	"time"

	"go-odds/dto"
	"go-odds/repository"
	"go-odds/utils"
)

// RecentHistory 取最近 limit 条计算历史，新的在前
func RecentHistory(limit int) (dto.HistoryResponse, error) {
	records, err := repository.RecentCalculations(limit)
	if err != nil {
		return dto.HistoryResponse{}, fmt.Errorf("查询历史失败: %w", err)
	}

	items := make([]dto.HistoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.HistoryItem{
			DeckSize:      rec.DeckSize,
			MatchingCards: rec.MatchingCards,
			DrawCount:     rec.DrawCount,
			MinMatches:    rec.MinMatches,
			Probability:   rec.Probability,
			Percentage:    utils.FormatPercentage(rec.Probability),
			CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return dto.HistoryResponse{Items: items}, nil
}
