package timeline

// Store is the ordered list of tasks. It is a value: every mutation returns a
// new Store backed by a new slice, and the receiver is left untouched.
type Store struct {
	tasks []Task
}

// NewStore returns a store holding a copy of tasks.
func NewStore(tasks ...Task) Store {
	return Store{tasks: append([]Task(nil), tasks...)}
}

// Len returns the number of tasks.
func (s Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the tasks in store order.
func (s Store) Tasks() []Task {
	return append([]Task(nil), s.tasks...)
}

// At returns the task at index.
func (s Store) At(index int) (Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return Task{}, indexError("read", index, len(s.tasks))
	}
	return s.tasks[index], nil
}

// Add appends t, assigning an ID if it has none.
func (s Store) Add(t Task) Store {
	if t.ID == "" {
		t.ID = NewTaskID()
	}
	next := make([]Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	return Store{tasks: append(next, t)}
}

// Replace swaps the task at index for t. The existing ID is kept when t has
// none.
func (s Store) Replace(index int, t Task) (Store, error) {
	if index < 0 || index >= len(s.tasks) {
		return s, indexError("replace", index, len(s.tasks))
	}
	if t.ID == "" {
		t.ID = s.tasks[index].ID
	}
	next := s.Tasks()
	next[index] = t
	return Store{tasks: next}, nil
}

// Delete removes the task at index; later tasks shift down by one.
func (s Store) Delete(index int) (Store, error) {
	if index < 0 || index >= len(s.tasks) {
		return s, indexError("delete", index, len(s.tasks))
	}
	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:index]...)
	next = append(next, s.tasks[index+1:]...)
	return Store{tasks: next}, nil
}

// SetStatus sets the status of the task at index.
func (s Store) SetStatus(index int, status Status) (Store, error) {
	if index < 0 || index >= len(s.tasks) {
		return s, indexError("set status", index, len(s.tasks))
	}
	if status != StatusDone && status != StatusNotDone {
		return s, &ValidationError{Field: "status", Value: string(status), Reason: `must be "Done" or "Not Done"`}
	}
	next := s.Tasks()
	next[index].Status = status
	return Store{tasks: next}, nil
}
