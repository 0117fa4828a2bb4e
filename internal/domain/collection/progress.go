package collection

import (
	"sort"

	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
)

// ItemsCount - число предметов коллекции c среди items.
func ItemsCount(c Collection, items []item.Item) int {
	n := 0
	for _, it := range items {
		if it.CollectionID == c.ID {
			n++
		}
	}
	return n
}

// CollectedCount считает и collected, и will-not-collect.
func CollectedCount(c Collection, items []item.Item) int {
	n := 0
	for _, it := range items {
		if it.CollectionID == c.ID && it.CollectStatus.Resolved() {
			n++
		}
	}
	return n
}

// CompletionPercent - целый процент с округлением половины вверх, 0 для пустой коллекции.
func CompletionPercent(collected, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*collected + total) / (2 * total)
}

func ProgressOf(c Collection, items []item.Item) Progress {
	total := ItemsCount(c, items)
	collected := CollectedCount(c, items)
	return Progress{
		Collection:        c,
		ItemsCount:        total,
		CollectedCount:    collected,
		CompletionPercent: CompletionPercent(collected, total),
	}
}

// Summarize строит прогресс по каждой коллекции, сохраняя порядок cols.
func Summarize(cols []Collection, items []item.Item) []Progress {
	grouped := GroupByCollection(items)
	out := make([]Progress, 0, len(cols))
	for _, c := range cols {
		out = append(out, ProgressOf(c, grouped[c.ID]))
	}
	return out
}

// Totals - сводка по всем коллекциям для главной страницы.
func Totals(progress []Progress) (items, collected, percent int) {
	for _, p := range progress {
		items += p.ItemsCount
		collected += p.CollectedCount
	}
	return items, collected, CompletionPercent(collected, items)
}

// UniqueTypes - различные непустые типы, отсортированные.
func UniqueTypes(items []item.Item) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, it := range items {
		t := it.TypeName()
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// FilterByType: "all" и пустая строка пропускают все предметы.
func FilterByType(items []item.Item, typ string) []item.Item {
	typ = item.NormalizeTypeFilter(typ)
	if typ == "" {
		return items
	}
	out := make([]item.Item, 0, len(items))
	for _, it := range items {
		if it.TypeName() == typ {
			out = append(out, it)
		}
	}
	return out
}

func GroupByCollection(items []item.Item) map[uuid.UUID][]item.Item {
	out := make(map[uuid.UUID][]item.Item)
	for _, it := range items {
		out[it.CollectionID] = append(out[it.CollectionID], it)
	}
	return out
}
