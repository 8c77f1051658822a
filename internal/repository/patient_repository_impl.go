package repository

import (
	"context"
	"encoding/json"
	"errors"

	"ayurcare/internal/domain/entity"
	domainRepo "ayurcare/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type patientRepository struct {
	kv  domainRepo.KeyValueStore
	log *logrus.Logger
}

func NewPatientRepository(kv domainRepo.KeyValueStore, log *logrus.Logger) domainRepo.PatientRepository {
	return &patientRepository{kv: kv, log: log}
}

// Load reads the persisted patient array. A missing key or malformed
// payload yields an empty collection; the failure is logged and absorbed.
func (r *patientRepository) Load(ctx context.Context) []entity.Patient {
	raw, err := r.kv.Get(ctx, domainRepo.KeyPatients)
	if err != nil {
		if !errors.Is(err, domainRepo.ErrKeyNotFound) {
			r.log.Warnf("Failed to read patient store: %+v", err)
		}
		return []entity.Patient{}
	}

	var patients []entity.Patient
	if err := json.Unmarshal(raw, &patients); err != nil {
		r.log.Warnf("Malformed patient store payload, starting empty: %+v", err)
		return []entity.Patient{}
	}
	if patients == nil {
		return []entity.Patient{}
	}
	return patients
}

func (r *patientRepository) Save(ctx context.Context, patients []entity.Patient) error {
	raw, err := json.Marshal(patients)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, domainRepo.KeyPatients, raw)
}
