package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"ayurcare/internal/converter"
	"ayurcare/internal/delivery/dto"
	"ayurcare/internal/domain/entity"
	"ayurcare/internal/domain/repository"
	"ayurcare/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidBackup   = errors.New("invalid backup payload")
)

const exportVersion = "1.0"

// PatientUsecase is the patient store: an in-memory ordered collection
// mirrored into persistent storage after every mutation.
type PatientUsecase interface {
	Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, filter entity.PatientFilter) []*dto.PatientResponse
	Get(ctx context.Context, id string) (*dto.PatientResponse, error)
	Update(ctx context.Context, id string, req *dto.PatientUpdateRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id string) (bool, error)
	Import(ctx context.Context, req *dto.ImportRequest) (int, error)
	Export(ctx context.Context) *dto.ExportResponse
	Stats(ctx context.Context) *dto.StatsResponse
}

type patientUsecase struct {
	mu           sync.RWMutex
	patients     []entity.Patient
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	analysis     *service.AnalysisService
	auditService service.AuditService
}

// NewPatientUsecase loads the persisted collection once; every mutation
// afterwards flushes the full collection back.
func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	analysis *service.AnalysisService,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		patients:     patientRepo.Load(context.Background()),
		log:          log,
		patientRepo:  patientRepo,
		analysis:     analysis,
		auditService: auditService,
	}
}

// flush persists the in-memory collection. Callers hold the write lock.
func (u *patientUsecase) flush(ctx context.Context) error {
	if err := u.patientRepo.Save(ctx, u.patients); err != nil {
		u.log.Warnf("Failed to persist patient store: %+v", err)
		return err
	}
	return nil
}

func (u *patientUsecase) Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.PatientResponse, error) {
	form := entity.IntakeForm{
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Weight:    req.Weight,
		Height:    req.Height,
		History:   req.History,
		Lifestyle: req.Lifestyle,
	}
	if form.Lifestyle == nil {
		form.Lifestyle = []string{}
	}

	bmi := u.analysis.CalculateBMI(form.Weight, form.Height)
	profile := u.analysis.AnalyzeDosha(form)
	recommendations := u.analysis.Recommendations(profile.Dominant)

	patient := entity.Patient{
		ID:              uuid.NewString(),
		Name:            form.Name,
		Age:             form.Age,
		Gender:          form.Gender,
		Weight:          form.Weight,
		Height:          form.Height,
		History:         form.History,
		Lifestyle:       form.Lifestyle,
		BMI:             bmi,
		DoshaProfile:    &profile,
		Recommendations: recommendations,
		CreatedAt:       time.Now().UTC(),
		Consultations:   []entity.Consultation{},
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.patients = append(u.patients, patient)
	if err := u.flush(ctx); err != nil {
		u.patients = u.patients[:len(u.patients)-1]
		return nil, err
	}

	u.auditService.Record(ctx, entity.AuditActionPatientCreate, patient.ID, nil)

	return converter.PatientToResponse(&patient), nil
}

func (u *patientUsecase) List(ctx context.Context, filter entity.PatientFilter) []*dto.PatientResponse {
	projected := Project(u.snapshot(), filter)
	return converter.PatientsToResponses(projected)
}

func (u *patientUsecase) Get(ctx context.Context, id string) (*dto.PatientResponse, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	index := u.indexOf(id)
	if index == -1 {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(&u.patients[index]), nil
}

// Update shallow-merges the provided fields into an existing record. The
// store itself never fails on an unknown id; the error here is the
// existence check the delivery layer needs for its 404.
func (u *patientUsecase) Update(ctx context.Context, id string, req *dto.PatientUpdateRequest) (*dto.PatientResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	index := u.indexOf(id)
	if index == -1 {
		return nil, ErrPatientNotFound
	}

	patient := &u.patients[index]
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Weight != nil {
		patient.Weight = *req.Weight
	}
	if req.Height != nil {
		patient.Height = *req.Height
	}
	if req.History != nil {
		patient.History = *req.History
	}
	if req.Lifestyle != nil {
		patient.Lifestyle = *req.Lifestyle
	}

	if err := u.flush(ctx); err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, entity.AuditActionPatientUpdate, id, nil)

	return converter.PatientToResponse(patient), nil
}

// Delete removes the record with the given id. Deleting an unknown id
// leaves the collection unchanged and reports false; callers holding a
// selected-patient pointer must clear it when the deleted id matches.
func (u *patientUsecase) Delete(ctx context.Context, id string) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	index := u.indexOf(id)
	if index == -1 {
		return false, nil
	}

	u.patients = append(u.patients[:index], u.patients[index+1:]...)
	if err := u.flush(ctx); err != nil {
		return false, err
	}

	u.auditService.Record(ctx, entity.AuditActionPatientDelete, id, nil)

	return true, nil
}

// Import merges a backup into the store, skipping records whose id already
// exists. Only the top-level array shape is validated; entries are taken
// as-is and malformed ones surface at use-time.
func (u *patientUsecase) Import(ctx context.Context, req *dto.ImportRequest) (int, error) {
	if len(req.Patients) == 0 {
		return 0, ErrInvalidBackup
	}

	var incoming []entity.Patient
	if err := json.Unmarshal(req.Patients, &incoming); err != nil {
		return 0, ErrInvalidBackup
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	existing := make(map[string]struct{}, len(u.patients))
	for _, p := range u.patients {
		existing[p.ID] = struct{}{}
	}

	imported := 0
	merged := u.patients
	for _, p := range incoming {
		if _, ok := existing[p.ID]; ok {
			continue
		}
		existing[p.ID] = struct{}{}
		merged = append(merged, p)
		imported++
	}

	if imported == 0 {
		return 0, nil
	}

	previous := u.patients
	u.patients = merged
	if err := u.flush(ctx); err != nil {
		u.patients = previous
		return 0, err
	}

	u.auditService.Record(ctx, entity.AuditActionPatientImport, "", map[string]interface{}{
		"imported": imported,
	})

	return imported, nil
}

func (u *patientUsecase) Export(ctx context.Context) *dto.ExportResponse {
	return &dto.ExportResponse{
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Version:    exportVersion,
		Patients:   u.snapshot(),
	}
}

// Stats backs the dashboard: totals, dominant-dosha tallies and the five
// most recent records.
func (u *patientUsecase) Stats(ctx context.Context) *dto.StatsResponse {
	patients := u.snapshot()

	counts := dto.DoshaCounts{}
	for i := range patients {
		dominant, ok := patients[i].DominantDosha()
		if !ok {
			continue
		}
		switch dominant {
		case entity.DoshaVata:
			counts.Vata++
		case entity.DoshaPitta:
			counts.Pitta++
		case entity.DoshaKapha:
			counts.Kapha++
		}
	}

	recent := Project(patients, entity.PatientFilter{Sort: entity.SortByDate})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return &dto.StatsResponse{
		TotalPatients: len(patients),
		DoshaCounts:   counts,
		Recent:        converter.PatientsToResponses(recent),
	}
}

// snapshot copies the collection so projections can never mutate it.
func (u *patientUsecase) snapshot() []entity.Patient {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]entity.Patient, len(u.patients))
	copy(out, u.patients)
	return out
}

// indexOf requires the caller to hold at least the read lock.
func (u *patientUsecase) indexOf(id string) int {
	for i := range u.patients {
		if u.patients[i].ID == id {
			return i
		}
	}
	return -1
}
