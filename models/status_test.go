package models

import "testing"

func TestNormalizeServiceStatus_SynonymTable(t *testing.T) {
	cases := []struct {
		raw  string
		want CanonicalStatus
	}{
		{"Concluído", CanonicalStatusCompleted},
		{"concluido", CanonicalStatusCompleted},
		{"CONCLUÍDO", CanonicalStatusCompleted},
		{"completed", CanonicalStatusCompleted},
		{"Processado", CanonicalStatusCompleted},
		{"Faturado", CanonicalStatusCompleted},
		{"Pago", CanonicalStatusCompleted},
		{"PAID", CanonicalStatusCompleted},
		{"  Concluído  ", CanonicalStatusCompleted},
		{"Em Andamento", CanonicalStatusInProgress},
		{"em andamento", CanonicalStatusInProgress},
		{"in_progress", CanonicalStatusInProgress},
		{"Pendente", CanonicalStatusPending},
		{"pending", CanonicalStatusPending},
		{"Cancelado", CanonicalStatusCancelled},
		{"cancelled", CanonicalStatusCancelled},
	}
	for _, c := range cases {
		if got := NormalizeServiceStatus(c.raw); got != c.want {
			t.Fatalf("NormalizeServiceStatus(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizeServiceStatus_UnknownFallsThroughToPending(t *testing.T) {
	// Unknown spellings are open work, not errors.
	for _, raw := range []string{"", "   ", "Orçamento Solicitado", "garbage", "conclu"} {
		if got := NormalizeServiceStatus(raw); got != CanonicalStatusPending {
			t.Fatalf("NormalizeServiceStatus(%q) = %q, want pending", raw, got)
		}
	}
}

func TestCanonicalStatusOf_OverrideWins(t *testing.T) {
	if got := CanonicalStatusOf("Pendente", "completed"); got != CanonicalStatusCompleted {
		t.Fatalf("override should win, got %q", got)
	}
	if got := CanonicalStatusOf("Processado", ""); got != CanonicalStatusCompleted {
		t.Fatalf("empty override should derive from persisted, got %q", got)
	}
	if got := CanonicalStatusOf("Processado", "   "); got != CanonicalStatusCompleted {
		t.Fatalf("blank override should derive from persisted, got %q", got)
	}
}

func TestPersisted_FunnelIsIdempotent(t *testing.T) {
	for _, c := range []CanonicalStatus{
		CanonicalStatusPending,
		CanonicalStatusInProgress,
		CanonicalStatusCompleted,
		CanonicalStatusCancelled,
	} {
		first := c.Persisted()
		second := CanonicalStatusOf(string(first), "").Persisted()
		if first != second {
			t.Fatalf("funnel not idempotent for %q: %q -> %q", c, first, second)
		}
	}
}

func TestPersisted_UnknownCanonicalMapsToPendente(t *testing.T) {
	if got := CanonicalStatus("bogus").Persisted(); got != ServiceStatusPendente {
		t.Fatalf("unknown canonical should persist as Pendente, got %q", got)
	}
}

func TestReconcileVehicleStatus(t *testing.T) {
	cases := []struct {
		name     string
		statuses []string
		want     VehicleStatus
	}{
		{"all completed synonyms", []string{"Concluído", "Processado", "Pago"}, VehicleStatusActive},
		{"mixed set", []string{"Concluído", "Pendente"}, VehicleStatusMaintenance},
		{"single pending", []string{"Pendente"}, VehicleStatusMaintenance},
		{"in progress", []string{"Concluído", "Em Andamento"}, VehicleStatusMaintenance},
		{"cancelled counts as open", []string{"Cancelado"}, VehicleStatusMaintenance},
		{"unknown spelling counts as open", []string{"Concluído", "Orçamento Solicitado"}, VehicleStatusMaintenance},
	}
	for _, c := range cases {
		if got := ReconcileVehicleStatus(c.statuses); got != c.want {
			t.Fatalf("%s: ReconcileVehicleStatus(%v) = %q, want %q", c.name, c.statuses, got, c.want)
		}
	}
}

func TestVehicleStatusAfterServiceWrite_EmptySetSkipsWrite(t *testing.T) {
	// A vehicle with no services keeps its status: the write path must not run.
	if _, ok := vehicleStatusAfterServiceWrite(nil); ok {
		t.Fatal("empty service set must not produce a vehicle write")
	}
	if _, ok := vehicleStatusAfterServiceWrite([]string{}); ok {
		t.Fatal("empty service set must not produce a vehicle write")
	}
	if got, ok := vehicleStatusAfterServiceWrite([]string{"Concluído"}); !ok || got != VehicleStatusActive {
		t.Fatalf("single completed service should yield active, got %q ok=%v", got, ok)
	}
}

func TestReconcile_PatchSequenceScenario(t *testing.T) {
	// Two services start Pendente. Patch A to completed: mixed -> maintenance.
	// Patch B to completed: all done -> active.
	a := string(NormalizeServiceStatus("completed").Persisted())
	if a != string(ServiceStatusConcluido) {
		t.Fatalf("patch should persist Concluído, got %q", a)
	}
	if got := ReconcileVehicleStatus([]string{a, "Pendente"}); got != VehicleStatusMaintenance {
		t.Fatalf("after first patch want maintenance, got %q", got)
	}
	b := string(NormalizeServiceStatus("completed").Persisted())
	if got := ReconcileVehicleStatus([]string{a, b}); got != VehicleStatusActive {
		t.Fatalf("after second patch want active, got %q", got)
	}
}
