package dto

import (
	"encoding/json"
	"time"

	"ayurcare/internal/domain/entity"
)

// AnalyzeRequest is the intake form submitted for a new analysis.
type AnalyzeRequest struct {
	Name      string   `json:"name" validate:"required"`
	Age       int      `json:"age" validate:"required,gte=1,lte=120"`
	Gender    string   `json:"gender" validate:"required,oneof=male female other"`
	Weight    float64  `json:"weight" validate:"required,gt=0"`
	Height    float64  `json:"height" validate:"required,gt=0"`
	History   string   `json:"history"`
	Lifestyle []string `json:"lifestyle" validate:"omitempty,dive,oneof=smoking alcohol sedentary vegetarian exercise"`
}

// PatientUpdateRequest carries a partial update; nil fields are left
// untouched. Derived fields (bmi, dosha profile, recommendations) are not
// recomputed on update.
type PatientUpdateRequest struct {
	Name      *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Age       *int      `json:"age,omitempty" validate:"omitempty,gte=1,lte=120"`
	Gender    *string   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Weight    *float64  `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Height    *float64  `json:"height,omitempty" validate:"omitempty,gt=0"`
	History   *string   `json:"history,omitempty"`
	Lifestyle *[]string `json:"lifestyle,omitempty" validate:"omitempty,dive,oneof=smoking alcohol sedentary vegetarian exercise"`
}

// PatientResponse mirrors the persisted record shape.
type PatientResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Age             int                    `json:"age"`
	Gender          string                 `json:"gender"`
	Weight          float64                `json:"weight"`
	Height          float64                `json:"height"`
	History         string                 `json:"history"`
	Lifestyle       []string               `json:"lifestyle"`
	BMI             entity.BMI             `json:"bmi"`
	DoshaProfile    *entity.DoshaProfile   `json:"doshaProfile,omitempty"`
	Recommendations entity.Recommendations `json:"recommendations"`
	CreatedAt       time.Time              `json:"createdAt"`
	Consultations   []entity.Consultation  `json:"consultations"`
}

// ImportRequest accepts a backup payload. Patients stays raw so the
// usecase can check only the top-level array shape; individual entries are
// merged as-is and surface problems at use-time.
type ImportRequest struct {
	ExportDate string          `json:"exportDate"`
	Version    string          `json:"version"`
	Patients   json.RawMessage `json:"patients"`
}

// ExportResponse wraps the full patient array for backup.
type ExportResponse struct {
	ExportDate string           `json:"exportDate"`
	Version    string           `json:"version"`
	Patients   []entity.Patient `json:"patients"`
}

// DoshaCounts tallies dominant doshas across the practice.
type DoshaCounts struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

// StatsResponse backs the dashboard view.
type StatsResponse struct {
	TotalPatients int                `json:"totalPatients"`
	DoshaCounts   DoshaCounts        `json:"doshaCounts"`
	Recent        []*PatientResponse `json:"recent"`
}
