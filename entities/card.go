package entities

// Rank 扑克牌点数（A、2-10、J、Q、K）
type Rank string

// Suit 扑克牌花色
type Suit string

// Color 颜色由花色推导，只有红黑两种
type Color string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

const (
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

// Ranks 全部 13 个点数，按 A 到 K 排列
var Ranks = []Rank{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Suits 全部 4 种花色
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// Card 一张牌，由点数和花色唯一确定
type Card struct {
	Rank Rank `json:"rank"` // 点数
	Suit Suit `json:"suit"` // 花色
}

// Color 返回花色对应的颜色：红桃/方块为红，其余一律按黑处理
func (s Suit) Color() Color {
	if s == SuitHearts || s == SuitDiamonds {
		return ColorRed
	}
	return ColorBlack
}

// StandardDeck 生成标准 52 张牌堆（4 花色 × 13 点数）
func StandardDeck() []Card {
	deck := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}
