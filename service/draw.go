package service

import (
	"time"

	"golang.org/x/exp/rand"

	"go-odds/dto"
	"go-odds/entities"
)

// ExampleDraw 洗牌后抽出一手牌并统计其中的命中张数。
// 这是演示用的一次随机抽样，概率本身走 Calculate 精确计算。
func ExampleDraw(req dto.DrawRequest) (dto.DrawResponse, error) {
	drawCount := *req.DrawCount
	if drawCount < 0 || drawCount > len(req.Deck) {
		return dto.DrawResponse{}, ErrInvalidDrawCount
	}

	// 条件在洗牌前就校验掉
	if _, err := countCriterionMatches(nil, req.SearchType, req.SearchValue, req.Rank, req.Suit); err != nil {
		return dto.DrawResponse{}, err
	}

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = uint64(*req.Seed)
	}
	rng := rand.New(rand.NewSource(seed))

	// 复制一份再洗，不动调用方的牌堆
	shuffled := make([]entities.Card, len(req.Deck))
	copy(shuffled, req.Deck)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	hand := shuffled[:drawCount]
	matches, err := countCriterionMatches(hand, req.SearchType, req.SearchValue, req.Rank, req.Suit)
	if err != nil {
		return dto.DrawResponse{}, err
	}

	return dto.DrawResponse{Cards: hand, Matches: matches}, nil
}
