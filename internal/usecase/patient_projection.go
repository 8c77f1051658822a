package usecase

import (
	"sort"
	"strings"

	"ayurcare/internal/domain/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var nameCollator = collate.New(language.English)

// Project applies search, dosha filter and sort, in that order, over a
// patient collection. The input slice is never mutated; callers pass a
// snapshot and receive a fresh ordering.
//
// Search matches a lowercased substring of the name or a substring of the
// id; an empty term keeps everything. A dosha filter other than "all"
// keeps only records whose dominant dosha matches case-insensitively, and
// excludes records with no profile. Sorting by name is locale-aware
// ascending; the default date sort is newest first with ties left in
// their incoming relative order.
func Project(patients []entity.Patient, filter entity.PatientFilter) []entity.Patient {
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	doshaFilter := strings.ToLower(strings.TrimSpace(filter.Dosha))

	out := make([]entity.Patient, 0, len(patients))
	for _, p := range patients {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(p.ID, term) {
			continue
		}
		if doshaFilter != "" && doshaFilter != entity.DoshaFilterAll {
			dominant, ok := p.DominantDosha()
			if !ok || !strings.EqualFold(string(dominant), doshaFilter) {
				continue
			}
		}
		out = append(out, p)
	}

	switch filter.Sort {
	case entity.SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	default: // date, newest first
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}
