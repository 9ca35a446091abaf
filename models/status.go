package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CanonicalStatus is the four-state service vocabulary exposed at the API
// boundary (the `paymentStatus` field).
type CanonicalStatus string

const (
	CanonicalStatusPending    CanonicalStatus = "pending"
	CanonicalStatusInProgress CanonicalStatus = "in_progress"
	CanonicalStatusCompleted  CanonicalStatus = "completed"
	CanonicalStatusCancelled  CanonicalStatus = "cancelled"
)

// stripMarks removes Unicode combining marks after NFD decomposition, so
// "Concluído" folds to "Concluido" before lowercase matching.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldStatus(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		return folded
	}
	return s
}

// NormalizeServiceStatus maps any raw status spelling onto the canonical
// four-state vocabulary. Total over all inputs: unknown spellings (legacy
// rows such as "Orçamento Solicitado") classify as pending, meaning the
// work is still open. That fallback is a deliberate permissive default,
// not an error path.
func NormalizeServiceStatus(raw string) CanonicalStatus {
	switch foldStatus(raw) {
	case "concluido", "completed", "processado", "faturado", "pago", "paid":
		return CanonicalStatusCompleted
	case "em andamento", "in_progress":
		return CanonicalStatusInProgress
	case "pendente", "pending":
		return CanonicalStatusPending
	case "cancelado", "cancelled":
		return CanonicalStatusCancelled
	default:
		return CanonicalStatusPending
	}
}

// CanonicalStatusOf resolves the canonical status of a service write.
// An explicit override (a non-empty paymentStatus on the request) wins over
// the persisted status.
func CanonicalStatusOf(persisted string, override string) CanonicalStatus {
	if strings.TrimSpace(override) != "" {
		return NormalizeServiceStatus(override)
	}
	return NormalizeServiceStatus(persisted)
}

// Persisted maps a canonical status forward onto the four stored labels.
// This direction is intentionally NOT the inverse of NormalizeServiceStatus:
// reads accept many synonyms, writes only ever emit the four canonical
// labels, so legacy spellings funnel out of the data over time.
func (c CanonicalStatus) Persisted() ServiceStatus {
	switch c {
	case CanonicalStatusCompleted:
		return ServiceStatusConcluido
	case CanonicalStatusInProgress:
		return ServiceStatusEmAndamento
	case CanonicalStatusCancelled:
		return ServiceStatusCancelado
	default:
		return ServiceStatusPendente
	}
}

// ReconcileVehicleStatus derives a vehicle's status from the full set of its
// services' raw status strings: active only when every service is completed,
// maintenance otherwise. Callers must not invoke this with an empty set; a
// vehicle with no services keeps whatever status it has.
func ReconcileVehicleStatus(statuses []string) VehicleStatus {
	for _, s := range statuses {
		if NormalizeServiceStatus(s) != CanonicalStatusCompleted {
			return VehicleStatusMaintenance
		}
	}
	return VehicleStatusActive
}

// vehicleStatusAfterServiceWrite is the reconciliation decision used by the
// service write paths. ok=false means no vehicle write must happen (the
// service set is empty).
func vehicleStatusAfterServiceWrite(statuses []string) (VehicleStatus, bool) {
	if len(statuses) == 0 {
		return "", false
	}
	return ReconcileVehicleStatus(statuses), true
}
