package entity

// Filter and sort options for patient list projections.
const (
	DoshaFilterAll = "all"

	SortByName = "name"
	SortByDate = "date"
)

// PatientFilter is a domain-level filter for projecting the patient list.
// Used by the query layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	Search string // case-insensitive substring against name or id
	Dosha  string // dominant dosha to keep, or "all"
	Sort   string // "name" (ascending) or "date" (newest first, default)
}
