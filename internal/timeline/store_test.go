package timeline

import (
	"errors"
	"testing"
)

func task(id, name string, start, end float64, status Status) Task {
	return Task{ID: id, Name: name, Start: start, End: end, Color: ColorBlue, Status: status}
}

func TestStoreAddStandup(t *testing.T) {
	d := Draft{Name: "Standup", Start: "09:00", End: "09:15", Color: ColorBlue, Status: StatusNotDone}
	built, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	s := NewStore().Add(built)

	if s.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", s.Len())
	}
	got, _ := s.At(0)
	if got.Start != 9.0 || got.End != 9.25 {
		t.Errorf("expected 9.0-9.25, got %v-%v", got.Start, got.End)
	}
	if got.ID == "" {
		t.Error("expected Add to assign an ID")
	}
	if got.Color != ColorBlue || got.Status != StatusNotDone {
		t.Errorf("unexpected color/status: %s/%s", got.Color, got.Status)
	}
}

func TestStoreDeleteShiftsIndices(t *testing.T) {
	s := NewStore(task("a", "first", 9, 10, StatusNotDone), task("b", "second", 11, 12, StatusNotDone))

	next, err := s.Delete(0)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if next.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", next.Len())
	}
	got, _ := next.At(0)
	if got.ID != "b" {
		t.Errorf("expected task b at index 0, got %s", got.ID)
	}
	if s.Len() != 2 {
		t.Error("Delete must not modify the receiver")
	}
}

func TestStoreSetStatus(t *testing.T) {
	s := NewStore(
		task("a", "one", 9, 10, StatusNotDone),
		task("b", "two", 10, 11, StatusNotDone),
		task("c", "three", 11, 12, StatusDone),
	)

	next, err := s.SetStatus(1, StatusDone)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	want := []Status{StatusNotDone, StatusDone, StatusDone}
	for i, st := range want {
		got, _ := next.At(i)
		if got.Status != st {
			t.Errorf("task %d: expected %s, got %s", i, st, got.Status)
		}
	}

	// The receiver is untouched.
	orig, _ := s.At(1)
	if orig.Status != StatusNotDone {
		t.Error("SetStatus mutated the receiver")
	}

	if _, err := s.SetStatus(0, Status("Maybe")); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestStoreReplaceKeepsID(t *testing.T) {
	s := NewStore(task("a", "old", 9, 10, StatusNotDone))

	next, err := s.Replace(0, Task{Name: "new", Start: 13, End: 14, Color: ColorRed, Status: StatusDone})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	got, _ := next.At(0)
	if got.ID != "a" || got.Name != "new" || got.Start != 13 {
		t.Errorf("unexpected replaced task: %+v", got)
	}
}

func TestStoreIndexOutOfRange(t *testing.T) {
	s := NewStore(task("a", "only", 9, 10, StatusNotDone))

	ops := map[string]func() error{
		"delete":  func() error { _, err := s.Delete(1); return err },
		"replace": func() error { _, err := s.Replace(-1, Task{}); return err },
		"status":  func() error { _, err := s.SetStatus(5, StatusDone); return err },
		"at":      func() error { _, err := s.At(1); return err },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("%s: expected ErrIndexOutOfRange, got %v", name, err)
		}
	}
}

func TestStoreTasksIsCopy(t *testing.T) {
	s := NewStore(task("a", "only", 9, 10, StatusNotDone))
	tasks := s.Tasks()
	tasks[0].Name = "changed"

	got, _ := s.At(0)
	if got.Name != "only" {
		t.Error("Tasks() must return a copy")
	}
}
