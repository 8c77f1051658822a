package entity

import "time"

// AuditEntry records one mutating action against the store.
type AuditEntry struct {
	Action    string                 `json:"action"`
	EntityID  string                 `json:"entityId,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// Common audit actions
const (
	AuditActionPatientCreate  = "patient.create"
	AuditActionPatientUpdate  = "patient.update"
	AuditActionPatientDelete  = "patient.delete"
	AuditActionPatientImport  = "patient.import"
	AuditActionSettingsUpdate = "settings.update"
	AuditActionLogin          = "auth.login"
	AuditActionLogout         = "auth.logout"
)

// AuditTrailLimit caps the persisted trail to the most recent entries.
const AuditTrailLimit = 500
