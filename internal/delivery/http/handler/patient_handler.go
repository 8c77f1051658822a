package handler

import (
	"encoding/json"
	"net/http"

	"ayurcare/internal/delivery/dto"
	"ayurcare/internal/domain/entity"
	"ayurcare/internal/usecase"
	"ayurcare/pkg/response"
	"ayurcare/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Analyze runs the analysis engine over a new intake form and commits the
// resulting record to the store.
func (h *PatientHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Analyze(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save analysis")
		return
	}

	response.Success(w, http.StatusCreated, "Analysis completed successfully", patient)
}

func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := entity.PatientFilter{
		Search: query.Get("search"),
		Dosha:  query.Get("dosha"),
		Sort:   query.Get("sort"),
	}
	if filter.Dosha == "" {
		filter.Dosha = entity.DoshaFilterAll
	}
	if filter.Sort == "" {
		filter.Sort = entity.SortByDate
	}

	patients := h.patientUsecase.List(r.Context(), filter)
	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	patient, err := h.patientUsecase.Get(r.Context(), id)
	if err != nil {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.PatientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

// Delete removes a patient. Clients holding a selected-patient reference
// must clear it when this succeeds.
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.patientUsecase.Delete(r.Context(), id)
	if err != nil {
		response.InternalServerError(w, "Failed to delete patient")
		return
	}
	if !deleted {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

func (h *PatientHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.patientUsecase.Stats(r.Context())
	response.Success(w, http.StatusOK, "Stats retrieved successfully", stats)
}
