package engine

// InvalidInputError 表示入参违反结构约束，消息就是给调用方看的规则描述。
// 修正输入即可恢复，调用方据此返回 400 而不是 500。
type InvalidInputError struct {
	msg string
}

func (e *InvalidInputError) Error() string {
	return e.msg
}

// 五条校验规则对应的固定错误，声明顺序就是检查顺序
var (
	ErrDeckSizeTooSmall    = &InvalidInputError{msg: "Deck size must be at least 1"}
	ErrMatchingExceedsDeck = &InvalidInputError{msg: "Number of matching cards cannot exceed deck size"}
	ErrDrawExceedsDeck     = &InvalidInputError{msg: "Draw count cannot exceed deck size"}
	ErrMinExceedsDraw      = &InvalidInputError{msg: "Minimum matches cannot exceed draw count"}
	ErrMinTooSmall         = &InvalidInputError{msg: "Minimum matches must be at least 1"}
)

// Validate 依次检查结构约束，返回第一条被违反的规则；全部通过返回 nil。
// 检查顺序是约定的一部分，同时违反多条时以靠前的为准。
func Validate(p Params) error {
	if p.DeckSize < 1 {
		return ErrDeckSizeTooSmall
	}
	if p.MatchingCards > p.DeckSize {
		return ErrMatchingExceedsDeck
	}
	if p.DrawCount > p.DeckSize {
		return ErrDrawExceedsDeck
	}
	if p.MinMatches > p.DrawCount {
		return ErrMinExceedsDraw
	}
	if p.MinMatches < 1 {
		return ErrMinTooSmall
	}
	return nil
}
