package models

// ClientStatus is the stored client state.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive:
		return true
	}
	return false
}

// VehicleStatus is the stored vehicle state. "maintenance" and "active" are
// derived from the vehicle's services; "inactive" is set only by explicit
// user action and never produced by reconciliation.
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusInactive    VehicleStatus = "inactive"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusActive, VehicleStatusInactive, VehicleStatusMaintenance:
		return true
	}
	return false
}

// ServiceStatus is the status vocabulary written at rest. Historically
// Portuguese-language; rows written by other processes carry synonyms
// ("Processado", "Faturado", "Pago", English spellings) that are normalized
// on read but never written back by this backend.
type ServiceStatus string

const (
	ServiceStatusPendente    ServiceStatus = "Pendente"
	ServiceStatusEmAndamento ServiceStatus = "Em Andamento"
	ServiceStatusConcluido   ServiceStatus = "Concluído"
	ServiceStatusCancelado   ServiceStatus = "Cancelado"
)

// ActivityAction is the recorded audit action.
type ActivityAction string

const (
	ActivityActionCreate ActivityAction = "create"
	ActivityActionUpdate ActivityAction = "update"
	ActivityActionDelete ActivityAction = "delete"
)

// ActivityEntityType names the entity an activity entry refers to.
type ActivityEntityType string

const (
	ActivityEntityClient  ActivityEntityType = "client"
	ActivityEntityService ActivityEntityType = "service"
)
