package progress

// DefaultDailySize is the number of tasks on the daily board.
const DefaultDailySize = 3

// DailySlot is one position on the daily board.
type DailySlot struct {
	TaskID    string `json:"task_id"`
	Completed bool   `json:"completed"`
}

// Daily is the session's ordered selection of distinct tasks.
type Daily struct {
	Slots []DailySlot `json:"slots"`
}

// NewDailyFromIDs builds a pending board from task identifiers.
func NewDailyFromIDs(ids []string) Daily {
	slots := make([]DailySlot, 0, len(ids))
	for _, id := range ids {
		slots = append(slots, DailySlot{TaskID: id})
	}
	return Daily{Slots: slots}
}

// TaskIDs returns the selected identifiers in slot order.
func (d Daily) TaskIDs() []string {
	ids := make([]string, 0, len(d.Slots))
	for _, slot := range d.Slots {
		ids = append(ids, slot.TaskID)
	}
	return ids
}

// Slot returns the slot at index, reporting whether it exists.
func (d Daily) Slot(index int) (DailySlot, bool) {
	if index < 0 || index >= len(d.Slots) {
		return DailySlot{}, false
	}
	return d.Slots[index], true
}

// CompletedCount returns how many slots are done.
func (d Daily) CompletedCount() int {
	count := 0
	for _, slot := range d.Slots {
		if slot.Completed {
			count++
		}
	}
	return count
}

// Clone returns a deep copy safe to mutate.
func (d Daily) Clone() Daily {
	slots := make([]DailySlot, len(d.Slots))
	copy(slots, d.Slots)
	return Daily{Slots: slots}
}
