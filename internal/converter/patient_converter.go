package converter

import (
	"ayurcare/internal/delivery/dto"
	"ayurcare/internal/domain/entity"
)

// PatientToResponse maps a stored record to its response shape.
func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	lifestyle := p.Lifestyle
	if lifestyle == nil {
		lifestyle = []string{}
	}
	consultations := p.Consultations
	if consultations == nil {
		consultations = []entity.Consultation{}
	}

	return &dto.PatientResponse{
		ID:              p.ID,
		Name:            p.Name,
		Age:             p.Age,
		Gender:          p.Gender,
		Weight:          p.Weight,
		Height:          p.Height,
		History:         p.History,
		Lifestyle:       lifestyle,
		BMI:             p.BMI,
		DoshaProfile:    p.DoshaProfile,
		Recommendations: p.Recommendations,
		CreatedAt:       p.CreatedAt,
		Consultations:   consultations,
	}
}

// PatientsToResponses maps an ordered collection, preserving order.
func PatientsToResponses(patients []entity.Patient) []*dto.PatientResponse {
	responses := make([]*dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, PatientToResponse(&patients[i]))
	}
	return responses
}
