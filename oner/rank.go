package oner

import "golang.org/x/exp/slices"

// RankAttributes sorts attribute errors from best to worst. Attributes with
// equal errors stay in declaration order, so the first result is always the
// attribute SelectRule picks.
func RankAttributes(errs []AttributeError) []AttributeError {
	res := slices.Clone(errs)
	slices.SortStableFunc(res, func(x, y AttributeError) bool {
		return x.TotalError < y.TotalError
	})
	return res
}
