package logic

// selectTask moves the cursor onto the task with the given ID, if it is in
// the current view.
func (h *Handler) selectTask(id string) {
	for i, e := range h.Entries() {
		if e.Task.ID == id {
			h.Cursor = i
			return
		}
	}
	h.ClampCursor()
}

// moveCursor moves the cursor by delta entries, clamped to the view.
func (h *Handler) moveCursor(delta int) {
	h.Cursor += delta
	h.ClampCursor()
}
