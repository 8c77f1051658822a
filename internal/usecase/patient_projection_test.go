package usecase

import (
	"testing"
	"time"

	"ayurcare/internal/domain/entity"
)

func projectionFixture() []entity.Patient {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	return []entity.Patient{
		{
			ID:        "a1f0",
			Name:      "Ravi Sharma",
			CreatedAt: base,
			DoshaProfile: &entity.DoshaProfile{
				Dominant: entity.DoshaVata,
			},
		},
		{
			ID:        "b2e1",
			Name:      "anita desai",
			CreatedAt: base.Add(time.Hour),
			DoshaProfile: &entity.DoshaProfile{
				Dominant: entity.DoshaPitta,
			},
		},
		{
			ID:        "c3d2",
			Name:      "Mohan Rao",
			CreatedAt: base.Add(2 * time.Hour),
			// Imported record, no profile.
		},
	}
}

func TestProjectSearchByName(t *testing.T) {
	out := Project(projectionFixture(), entity.PatientFilter{Search: "RAVI"})
	if len(out) != 1 || out[0].ID != "a1f0" {
		t.Fatalf("search by name: got %d results", len(out))
	}
}

func TestProjectSearchByID(t *testing.T) {
	out := Project(projectionFixture(), entity.PatientFilter{Search: "b2e"})
	if len(out) != 1 || out[0].Name != "anita desai" {
		t.Fatalf("search by id: got %d results", len(out))
	}
}

func TestProjectSearchNoMatch(t *testing.T) {
	out := Project(projectionFixture(), entity.PatientFilter{Search: "nobody"})
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}

func TestProjectDoshaFilter(t *testing.T) {
	out := Project(projectionFixture(), entity.PatientFilter{Dosha: "pitta"})
	if len(out) != 1 || out[0].ID != "b2e1" {
		t.Fatalf("dosha filter: got %d results", len(out))
	}
}

func TestProjectDoshaFilterAllKeepsUnprofiled(t *testing.T) {
	out := Project(projectionFixture(), entity.PatientFilter{Dosha: entity.DoshaFilterAll})
	if len(out) != 3 {
		t.Fatalf("filter %q should keep everything, got %d", entity.DoshaFilterAll, len(out))
	}
}

func TestProjectDoshaFilterExcludesUnprofiled(t *testing.T) {
	out := Project(projectionFixture(), entity.PatientFilter{Dosha: "vata"})
	for _, p := range out {
		if p.DoshaProfile == nil {
			t.Errorf("record %s has no profile and should be excluded", p.ID)
		}
	}
	if len(out) != 1 {
		t.Fatalf("vata filter: got %d results", len(out))
	}
}

func TestProjectSortByName(t *testing.T) {
	out := Project(projectionFixture(), entity.PatientFilter{Sort: entity.SortByName})
	if len(out) != 3 {
		t.Fatalf("got %d results", len(out))
	}
	// Case-insensitive collation puts the lowercase entry first.
	want := []string{"anita desai", "Mohan Rao", "Ravi Sharma"}
	for i, name := range want {
		if out[i].Name != name {
			t.Errorf("out[%d].Name = %q, want %q", i, out[i].Name, name)
		}
	}
}

func TestProjectDefaultSortNewestFirst(t *testing.T) {
	out := Project(projectionFixture(), entity.PatientFilter{})
	if len(out) != 3 {
		t.Fatalf("got %d results", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].CreatedAt.After(out[i-1].CreatedAt) {
			t.Errorf("records out of order at %d: %v before %v", i, out[i-1].CreatedAt, out[i].CreatedAt)
		}
	}
	if out[0].ID != "c3d2" {
		t.Errorf("newest record should be first, got %s", out[0].ID)
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	patients := projectionFixture()
	Project(patients, entity.PatientFilter{Sort: entity.SortByName})

	if patients[0].ID != "a1f0" || patients[2].ID != "c3d2" {
		t.Error("input slice order changed")
	}
}

func TestProjectCombined(t *testing.T) {
	patients := projectionFixture()
	out := Project(patients, entity.PatientFilter{Search: "a", Dosha: "vata", Sort: entity.SortByName})
	// "a" matches every name but only Ravi is dominant vata.
	if len(out) != 1 || out[0].ID != "a1f0" {
		t.Fatalf("combined projection: got %d results", len(out))
	}
}
