package ember

import "fmt"

// Position 是源码中的一个闭区间 [Start, End], 单位为字符 (rune) 下标.
// 对每个 Position 都有 Start <= End.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func NewPosition(start, end int) Position {
	return Position{Start: start, End: end}
}

// Len returns the number of characters covered by the span.
func (p Position) Len() int {
	return p.End - p.Start + 1
}

// Text 截取 src 中被 p 覆盖的文本. 区间越界时返回 false.
func (p Position) Text(src []rune) (string, bool) {
	if p.Start < 0 || p.End < p.Start || p.End >= len(src) {
		return "", false
	}
	return string(src[p.Start : p.End+1]), true
}

// Contains reports whether offset falls inside the span.
func (p Position) Contains(offset int) bool {
	return offset >= p.Start && offset <= p.End
}

func (p Position) String() string {
	return fmt.Sprintf("%d..%d", p.Start, p.End)
}
