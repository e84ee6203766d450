package asana

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampRoundTrip(t *testing.T) {
	in := `"2023-06-05T14:30:00.000Z"`
	var ts Timestamp
	if err := json.Unmarshal([]byte(in), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ts.Year() != 2023 || ts.Month() != time.June || ts.Hour() != 14 {
		t.Errorf("parsed = %v", ts.Time)
	}

	out, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != in {
		t.Errorf("marshal = %s, want %s", out, in)
	}
}

func TestDateNullHandling(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Error("null should decode to zero date")
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("zero date marshal = %s, want null", out)
	}
}

func TestDateParseAndFormat(t *testing.T) {
	d, err := ParseDate("2023-06-05")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2023-06-05" {
		t.Errorf("String() = %q", d.String())
	}
	if got := d.AddDays(6).String(); got != "2023-06-11" {
		t.Errorf("AddDays(6) = %q", got)
	}

	if _, err := ParseDate("06/05/2023"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestTaskWithDueDateDecodes(t *testing.T) {
	raw := `{"gid":"1","name":"pay rent","created_at":"2023-06-01T08:00:00.000Z","due_on":"2023-06-05"}`
	var task UserTask
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if task.DueOn.String() != "2023-06-05" {
		t.Errorf("DueOn = %q", task.DueOn)
	}

	raw = `{"gid":"2","name":"someday","created_at":"2023-06-01T08:00:00.000Z","due_on":null}`
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !task.DueOn.IsZero() {
		t.Error("null due_on should be zero")
	}
}
