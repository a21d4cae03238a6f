package service

import (
	"errors"

	"go-odds/dto"
	"go-odds/engine"
	"go-odds/entities"
	"go-odds/repository"
	"go-odds/utils"
)

var (
	// ErrMissingCriterion 请求里既没有 searchType 条件也没有 rank/suit 条件
	ErrMissingCriterion = errors.New("Missing required fields")
	// ErrInvalidDrawCount 抽牌数不在 [0, 牌堆大小] 内
	ErrInvalidDrawCount = errors.New("Draw count must be between 0 and deck size")
)

// Calculate 编排一次完整的概率计算：
// 解析检索条件统计命中张数 → 查缓存 → 引擎计算 → 回写缓存和历史。
func Calculate(req dto.CalculateRequest) (dto.CalculateResponse, error) {
	matching, err := countCriterionMatches(req.Deck, req.SearchType, req.SearchValue, req.Rank, req.Suit)
	if err != nil {
		return dto.CalculateResponse{}, err
	}

	params := engine.Params{
		DeckSize:      len(req.Deck),
		MatchingCards: matching,
		DrawCount:     *req.DrawCount,
		MinMatches:    *req.MinMatches,
	}

	// 同样的参数结果不变，命中缓存直接返回
	if cached, ok := repository.GetCachedResult(params); ok {
		return dto.CalculateResponse{Probability: cached.Probability, Percentage: cached.Percentage}, nil
	}

	probability, err := engine.CalculateProbability(params)
	if err != nil {
		return dto.CalculateResponse{}, err
	}

	resp := dto.CalculateResponse{
		Probability: probability,
		Percentage:  utils.FormatPercentage(probability),
	}

	// 缓存和历史都是旁路，写失败不影响本次结果
	repository.SetCachedResult(params, repository.CachedResult{
		Probability: resp.Probability,
		Percentage:  resp.Percentage,
	})
	repository.InsertCalculation(params, probability)

	return resp, nil
}

// countCriterionMatches 按请求里的检索条件统计命中张数。
// searchType 条件优先；否则用 rank/suit 组合条件（AND 语义），
// 其中 "any" 或留空表示该维度不过滤。两种条件都没有时报 ErrMissingCriterion。
func countCriterionMatches(deck []entities.Card, searchType, searchValue, rank, suit string) (int, error) {
	if searchType != "" {
		if searchValue == "" {
			return 0, ErrMissingCriterion
		}
		return entities.CountMatches(deck, entities.SearchType(searchType), searchValue), nil
	}

	if rank == "" && suit == "" {
		return 0, ErrMissingCriterion
	}
	return countRankSuit(deck, rank, suit), nil
}

// rank 和 suit 独立过滤取交集
func countRankSuit(deck []entities.Card, rank, suit string) int {
	count := 0
	for _, card := range deck {
		if rank != "" && rank != dto.AnyValue && card.Rank != entities.Rank(rank) {
			continue
		}
		if suit != "" && suit != dto.AnyValue && card.Suit != entities.Suit(suit) {
			continue
		}
		count++
	}
	return count
}
