package dto

import "go-odds/entities"

// AnyValue 组合条件里的通配值，表示该维度不过滤
const AnyValue = "any"

// CalculateRequest 概率计算请求。
// 条件二选一：searchType + searchValue 指定单维度条件；
// 或 rank / suit 组合条件（AND 语义，"any" 或留空表示该维度不过滤）。
// 两种都带时以 searchType 为准。
type CalculateRequest struct {
	Deck        []entities.Card `json:"deck" binding:"required,min=1"`
	DrawCount   *int            `json:"drawCount" binding:"required"`
	MinMatches  *int            `json:"minMatches" binding:"required"`
	SearchType  string          `json:"searchType"`
	SearchValue string          `json:"searchValue"`
	Rank        string          `json:"rank"`
	Suit        string          `json:"suit"`
}

// CalculateResponse 概率计算结果：原始概率 + 格式化好的百分比
type CalculateResponse struct {
	Probability float64 `json:"probability"`
	Percentage  string  `json:"percentage"`
}

// DrawRequest 示例抽牌请求，Seed 可选，带上可以复现同一手牌
type DrawRequest struct {
	Deck        []entities.Card `json:"deck" binding:"required,min=1"`
	DrawCount   *int            `json:"drawCount" binding:"required"`
	SearchType  string          `json:"searchType"`
	SearchValue string          `json:"searchValue"`
	Rank        string          `json:"rank"`
	Suit        string          `json:"suit"`
	Seed        *int64          `json:"seed"`
}

// DrawResponse 示例抽牌结果：抽出的牌和其中命中条件的张数
type DrawResponse struct {
	Cards   []entities.Card `json:"cards"`
	Matches int             `json:"matches"`
}
