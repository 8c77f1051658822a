package handler

import (
	"encoding/json"
	"net/http"

	"ayurcare/internal/delivery/dto"
	"ayurcare/internal/domain/entity"
	"ayurcare/internal/service"
	"ayurcare/internal/usecase"
	"ayurcare/pkg/response"
	"ayurcare/pkg/validator"
)

type ChatHandler struct {
	ayurbot        *service.AyurBotService
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewChatHandler(ayurbot *service.AyurBotService, patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *ChatHandler {
	return &ChatHandler{
		ayurbot:        ayurbot,
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	// An unknown patient id degrades to a context-free reply.
	var patientName string
	var dosha entity.Dosha
	if req.PatientID != "" {
		if patient, err := h.patientUsecase.Get(r.Context(), req.PatientID); err == nil {
			patientName = patient.Name
			if patient.DoshaProfile != nil {
				dosha = patient.DoshaProfile.Dominant
			}
		}
	}

	reply := h.ayurbot.Reply(req.Message, patientName, dosha)

	response.Success(w, http.StatusOK, "Reply generated successfully", dto.ChatResponse{Reply: reply})
}
