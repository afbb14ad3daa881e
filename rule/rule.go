package rule

import "github.com/ratel-online/rummy/consts"

// RummyRules 三张到六张同花连续数字为顺
var RummyRules = _rules{minRun: consts.MinRunLength, maxRun: consts.MaxRunLength}

type _rules struct {
	minRun int
	maxRun int
}

// IsRun reports whether a window of sorted, deduplicated values is gap free.
// The window is ascending, so last-first == len-1 leaves no room for holes.
func (r _rules) IsRun(first, last uint8, length int) bool {
	if length < r.minRun || length > r.maxRun {
		return false
	}
	if first == consts.JokerValue || last == consts.JokerValue {
		return false
	}
	return int(last)-int(first) == length-1
}

func (r _rules) RunBoundary() (int, int) {
	return r.minRun, r.maxRun
}
