package calendar

import (
	"reflect"
	"testing"
)

func TestDatesInRange(t *testing.T) {
	got := DatesInRange("2025-02-27", "2025-03-01")
	want := []string{"2025-02-27", "2025-02-28", "2025-03-01"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDatesInRangeLeapYear(t *testing.T) {
	got := DatesInRange("2024-02-28", "2024-03-01")
	want := []string{"2024-02-28", "2024-02-29", "2024-03-01"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDatesInRangeSingleDay(t *testing.T) {
	got := DatesInRange("2025-06-03", "2025-06-03")
	if len(got) != 1 || got[0] != "2025-06-03" {
		t.Fatalf("got %v, want single 2025-06-03", got)
	}
}

func TestDatesInRangeEndBeforeStart(t *testing.T) {
	if got := DatesInRange("2025-06-03", "2025-06-01"); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestDatesInRangeBadInput(t *testing.T) {
	if got := DatesInRange("TBD", "2025-06-03"); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
	if got := DatesInRange("2025-06-03", "whenever"); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}
