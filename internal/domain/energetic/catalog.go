package energetic

import (
	"sort"

	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
)

// Merge накладывает локальные отметки на каталог, меняя только Collect.
func Merge(catalog []Energetic, marks map[uuid.UUID]item.CollectStatus) []Energetic {
	out := make([]Energetic, len(catalog))
	for i, e := range catalog {
		if st, ok := marks[e.ID]; ok {
			e.Collect = st
		}
		out[i] = e
	}
	return out
}

func FilterByType(list []Energetic, typ string) []Energetic {
	typ = item.NormalizeTypeFilter(typ)
	if typ == "" {
		return list
	}
	out := make([]Energetic, 0, len(list))
	for _, e := range list {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func UniqueTypes(list []Energetic) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range list {
		if e.Type == "" {
			continue
		}
		if _, ok := seen[e.Type]; !ok {
			seen[e.Type] = struct{}{}
			out = append(out, e.Type)
		}
	}
	sort.Strings(out)
	return out
}
