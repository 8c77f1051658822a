package handler

import (
	"encoding/json"
	"net/http"

	"ayurcare/internal/delivery/dto"
	"ayurcare/internal/usecase"
	"ayurcare/pkg/response"
)

// BackupHandler serves the JSON import/export contract used by external
// backup tooling.
type BackupHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewBackupHandler(patientUsecase usecase.PatientUsecase) *BackupHandler {
	return &BackupHandler{patientUsecase: patientUsecase}
}

func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	export := h.patientUsecase.Export(r.Context())
	response.Success(w, http.StatusOK, "Export generated successfully", export)
}

// Import accepts either the export wrapper or a bare patient array.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	req := dto.ImportRequest{}
	if err := json.Unmarshal(raw, &req); err != nil || len(req.Patients) == 0 {
		// Not the wrapper shape; treat the payload as a bare array.
		req = dto.ImportRequest{Patients: raw}
	}

	imported, err := h.patientUsecase.Import(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidBackup:
			response.Error(w, http.StatusBadRequest, "Invalid backup file format", nil)
		default:
			response.InternalServerError(w, "Failed to import data")
		}
		return
	}

	response.Success(w, http.StatusOK, "Import completed successfully", map[string]int{"imported": imported})
}
