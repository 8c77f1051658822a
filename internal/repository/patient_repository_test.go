package repository

import (
	"context"
	"io"
	"testing"
	"time"

	"ayurcare/internal/domain/entity"
	domainRepo "ayurcare/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPatientRepositoryLoadEmptyStore(t *testing.T) {
	repo := NewPatientRepository(NewMemoryStore(), testLogger())

	got := repo.Load(context.Background())
	if got == nil {
		t.Fatal("Load should return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("got %d records", len(got))
	}
}

func TestPatientRepositoryLoadMalformedPayload(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()

	if err := kv.Set(ctx, domainRepo.KeyPatients, []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	repo := NewPatientRepository(kv, testLogger())
	got := repo.Load(ctx)
	if len(got) != 0 {
		t.Errorf("malformed payload should yield empty collection, got %d", len(got))
	}
}

func TestPatientRepositoryLoadNullPayload(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()

	if err := kv.Set(ctx, domainRepo.KeyPatients, []byte("null")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	repo := NewPatientRepository(kv, testLogger())
	if got := repo.Load(ctx); got == nil {
		t.Error("null payload should yield empty slice, not nil")
	}
}

func TestPatientRepositoryRoundTripPreservesOrder(t *testing.T) {
	repo := NewPatientRepository(NewMemoryStore(), testLogger())
	ctx := context.Background()

	now := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)
	patients := []entity.Patient{
		{ID: "p1", Name: "Asha", CreatedAt: now},
		{ID: "p2", Name: "Ravi", CreatedAt: now.Add(time.Minute)},
		{ID: "p3", Name: "Mohan", CreatedAt: now.Add(2 * time.Minute)},
	}

	if err := repo.Save(ctx, patients); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := repo.Load(ctx)
	if len(got) != 3 {
		t.Fatalf("got %d records", len(got))
	}
	for i, id := range []string{"p1", "p2", "p3"} {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
	if !got[0].CreatedAt.Equal(now) {
		t.Errorf("createdAt = %v, want %v", got[0].CreatedAt, now)
	}
}

func TestSettingsRepositoryDefaults(t *testing.T) {
	repo := NewSettingsRepository(NewMemoryStore(), testLogger())

	got := repo.Load(context.Background())
	if got.Language != entity.LanguageEnglish {
		t.Errorf("language = %q, want %q", got.Language, entity.LanguageEnglish)
	}
}

func TestSettingsRepositoryBackfillsLanguage(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()

	if err := kv.Set(ctx, domainRepo.KeySettings, []byte(`{"darkMode":true}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	repo := NewSettingsRepository(kv, testLogger())
	got := repo.Load(ctx)
	if got.Language != entity.LanguageEnglish {
		t.Errorf("language = %q, want backfilled %q", got.Language, entity.LanguageEnglish)
	}
	if !got.DarkMode {
		t.Error("stored field lost")
	}
}

func TestAuditLogRepositoryAppend(t *testing.T) {
	repo := NewAuditLogRepository(NewMemoryStore(), testLogger())
	ctx := context.Background()

	entry := entity.AuditEntry{
		Action:    entity.AuditActionPatientCreate,
		EntityID:  "p1",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Append(ctx, entry); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got := repo.List(ctx)
	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	if got[0].Action != entity.AuditActionPatientCreate || got[0].EntityID != "p1" {
		t.Errorf("entry = %+v", got[0])
	}
}

func TestAuditLogRepositoryTrimsToLimit(t *testing.T) {
	repo := NewAuditLogRepository(NewMemoryStore(), testLogger())
	ctx := context.Background()

	for i := 0; i < entity.AuditTrailLimit+10; i++ {
		entry := entity.AuditEntry{Action: entity.AuditActionPatientUpdate, CreatedAt: time.Now().UTC()}
		if i == 0 {
			entry.Action = entity.AuditActionPatientCreate
		}
		if err := repo.Append(ctx, entry); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	got := repo.List(ctx)
	if len(got) != entity.AuditTrailLimit {
		t.Fatalf("got %d entries, want %d", len(got), entity.AuditTrailLimit)
	}
	// The oldest entries fall off the front.
	if got[0].Action == entity.AuditActionPatientCreate {
		t.Error("first entry should have been trimmed")
	}
}
