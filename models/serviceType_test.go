package models

import (
	"reflect"
	"testing"
)

func TestParseServiceTypes(t *testing.T) {
	cases := []struct {
		stored string
		want   ServiceTypeList
	}{
		{"Troca de Óleo, Revisão", ServiceTypeList{"Troca de Óleo", "Revisão"}},
		{"Troca de Óleo,Revisão", ServiceTypeList{"Troca de Óleo", "Revisão"}},
		{"Alinhamento", ServiceTypeList{"Alinhamento"}},
		{"  Alinhamento  ", ServiceTypeList{"Alinhamento"}},
		{"A, , B", ServiceTypeList{"A", "B"}},
		{"", ServiceTypeList{}},
		{"   ", ServiceTypeList{}},
	}
	for _, c := range cases {
		if got := ParseServiceTypes(c.stored); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("ParseServiceTypes(%q) = %v, want %v", c.stored, got, c.want)
		}
	}
}

func TestServiceTypeList_Format(t *testing.T) {
	if got := (ServiceTypeList{"Troca de Óleo", "Revisão"}).Format(); got != "Troca de Óleo, Revisão" {
		t.Fatalf("Format = %q", got)
	}
	if got := (ServiceTypeList{"X"}).Format(); got != "X" {
		t.Fatalf("Format single = %q", got)
	}
	if got := (ServiceTypeList(nil)).Format(); got != "" {
		t.Fatalf("Format nil = %q", got)
	}
}

func TestServiceTypeList_RoundTrip(t *testing.T) {
	// parse(format(labels)) == labels for trimmed, non-empty, comma-free labels
	lists := []ServiceTypeList{
		{"Troca de Óleo", "Revisão"},
		{"Alinhamento"},
		{"A", "B", "C"},
	}
	for _, labels := range lists {
		if got := ParseServiceTypes(labels.Format()); !reflect.DeepEqual(got, labels) {
			t.Fatalf("round trip failed: %v -> %q -> %v", labels, labels.Format(), got)
		}
	}
}

func TestServiceTypeList_ScanValue(t *testing.T) {
	var l ServiceTypeList
	if err := l.Scan("Troca de Óleo, Revisão"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(l, ServiceTypeList{"Troca de Óleo", "Revisão"}) {
		t.Fatalf("Scan string = %v", l)
	}

	if err := l.Scan([]byte("Funilaria")); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(l, ServiceTypeList{"Funilaria"}) {
		t.Fatalf("Scan bytes = %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if len(l) != 0 {
		t.Fatalf("Scan nil should give empty list, got %v", l)
	}

	if err := l.Scan(42); err == nil {
		t.Fatal("Scan of unsupported type should error")
	}

	v, err := ServiceTypeList{"A", "B"}.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "A, B" {
		t.Fatalf("Value = %v", v)
	}
}

func TestServiceTypeList_Validate(t *testing.T) {
	if err := (ServiceTypeList{"Troca de Óleo", "Revisão"}).Validate(); err != nil {
		t.Fatalf("valid labels rejected: %v", err)
	}
	if err := (ServiceTypeList{"A,B"}).Validate(); err == nil {
		t.Fatal("label containing the delimiter must be rejected")
	}
	if err := (ServiceTypeList{"  "}).Validate(); err == nil {
		t.Fatal("blank label must be rejected")
	}
}
