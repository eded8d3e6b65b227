package menu

import "sort"

type ranked[A any] struct {
	tool Tool[A]
	rank int
}

// Select keeps the tools visible under active and orders them by their rank in
// that group. Tools with equal rank keep their declaration order. Tools that
// fail Validate never show; a Registry only ever holds valid ones.
func Select[A any](tools []Tool[A], active Key) []Tool[A] {
	visible := make([]ranked[A], 0, len(tools))
	for _, t := range tools {
		if t.Validate() != nil {
			continue
		}
		i, ok := t.Keys.Index(active)
		if !ok {
			continue
		}
		visible = append(visible, ranked[A]{tool: t, rank: t.Rank.at(i)})
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].rank < visible[j].rank
	})

	res := make([]Tool[A], len(visible))
	for i, v := range visible {
		res[i] = v.tool
	}
	return res
}
