package handler

import (
	"encoding/json"
	"net/http"

	"ayurcare/internal/delivery/dto"
	"ayurcare/internal/usecase"
	"ayurcare/pkg/response"
	"ayurcare/pkg/validator"
)

type SettingsHandler struct {
	settingsUsecase usecase.SettingsUsecase
	validator       *validator.CustomValidator
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase, validator *validator.CustomValidator) *SettingsHandler {
	return &SettingsHandler{
		settingsUsecase: settingsUsecase,
		validator:       validator,
	}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings := h.settingsUsecase.Get(r.Context())
	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.settingsUsecase.Update(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidAPIKey:
			response.Error(w, http.StatusBadRequest, "This doesn't look like a valid Gemini API key", nil)
		default:
			response.InternalServerError(w, "Failed to save settings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Settings saved successfully", settings)
}
