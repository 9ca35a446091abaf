package utils

import (
	"reflect"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "joao.pereira@example.com.br"}
	invalid := []string{"", "a@b", "not-an-email", "@example.com"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Fatalf("expected %q to be valid", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Fatalf("expected %q to be invalid", e)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	if got := SplitAndTrim(" a , b ,, c "); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("SplitAndTrim = %v", got)
	}
	if got := SplitAndTrim("   "); got != nil {
		t.Fatalf("blank input should give nil, got %v", got)
	}
}

func TestUniqueSlice(t *testing.T) {
	if got := UniqueSlice([]int{1, 2, 2, 3, 1}); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("UniqueSlice = %v", got)
	}
}

func TestDereferencePtr(t *testing.T) {
	s := "x"
	if got := DereferencePtr(&s, "def"); got != "x" {
		t.Fatalf("DereferencePtr = %q", got)
	}
	if got := DereferencePtr[string](nil, "def"); got != "def" {
		t.Fatalf("DereferencePtr nil = %q", got)
	}
	if got := DereferencePtr[int](nil); got != 0 {
		t.Fatalf("DereferencePtr nil no default = %d", got)
	}
}
