package entities

// SearchType 检索条件的维度：按点数、按花色、按颜色
type SearchType string

const (
	SearchByRank  SearchType = "rank"
	SearchBySuit  SearchType = "suit"
	SearchByColor SearchType = "color"
)

// CountMatches 统计牌堆里命中检索条件的张数。
// 这里只做单维度的精确匹配，未知的 searchType 不命中任何牌；
// 通配符之类的组合语义由调用方先行展开。
func CountMatches(deck []Card, searchType SearchType, value string) int {
	count := 0
	for _, card := range deck {
		switch searchType {
		case SearchByRank:
			if card.Rank == Rank(value) {
				count++
			}
		case SearchBySuit:
			if card.Suit == Suit(value) {
				count++
			}
		case SearchByColor:
			if card.Suit.Color() == Color(value) {
				count++
			}
		}
	}
	return count
}
