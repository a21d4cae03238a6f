// Package engine 计算抽牌命中概率：先校验入参，再走闭式短路，
// 其余情况交给超几何分布算 P(X >= MinMatches)。
package engine

import "go-odds/hypergeom"

// Params 一次概率计算的四个输入
type Params struct {
	DeckSize      int // 牌堆总张数
	MatchingCards int // 命中条件的张数
	DrawCount     int // 抽牌张数
	MinMatches    int // 至少要抽到的命中张数
}

// CalculateProbability 计算抽 DrawCount 张牌至少命中 MinMatches 张的概率。
// 校验失败返回 *InvalidInputError；计算本身是纯函数，结果落在 [0, 1]。
func CalculateProbability(p Params) (float64, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}

	// 命中牌总数都凑不够 MinMatches，必然失败
	if p.MatchingCards < p.MinMatches {
		return 0.0, nil
	}

	// 非命中牌不够把一手牌填满时必然成功。
	// 必须用非命中牌数量判断；拿 MatchingCards 和 DrawCount 比大小
	// 会把可能失败的组合误判成必然成功
	nonMatching := p.DeckSize - p.MatchingCards
	if nonMatching < p.DrawCount-p.MinMatches+1 {
		return 1.0, nil
	}

	// P(X >= m) = 1 - P(X <= m-1)
	if p.MinMatches == 1 {
		// 累积只有一项，直接用 PMF(0)
		return 1 - hypergeom.PMF(0, p.DeckSize, p.MatchingCards, p.DrawCount), nil
	}
	return 1 - hypergeom.CDF(p.MinMatches-1, p.DeckSize, p.MatchingCards, p.DrawCount), nil
}
