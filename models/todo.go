package models

// Conventional values for Priority and Status. Neither field is restricted to them.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"

	StatusToDo       = "TO DO"
	StatusInProgress = "IN PROGRESS"
	StatusDone       = "DONE"
)

// Todo is a single row of the todo table.
type Todo struct {
	ID       int64  `json:"id"`
	Todo     string `json:"todo"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// TodoPatch is a partial update. A nil field was omitted by the caller.
type TodoPatch struct {
	Todo     *string `json:"todo,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type columnRule struct {
	label   string
	present func(TodoPatch) bool
}

// Checked in order; the first present field names the update.
var updateLabelRules = []columnRule{
	{label: "Status", present: func(p TodoPatch) bool { return p.Status != nil }},
	{label: "Priority", present: func(p TodoPatch) bool { return p.Priority != nil }},
	{label: "Todo", present: func(p TodoPatch) bool { return p.Todo != nil }},
}

// UpdatedColumn returns the label of the column reported as updated:
// Status, then Priority, then Todo. Only the first match is reported even
// when several fields are set. ok is false for an empty patch.
func (p TodoPatch) UpdatedColumn() (label string, ok bool) {
	for _, rule := range updateLabelRules {
		if rule.present(p) {
			return rule.label, true
		}
	}
	return "", false
}

// ApplyTo returns current with every field set in p overwritten.
// The ID never changes.
func (p TodoPatch) ApplyTo(current Todo) Todo {
	merged := current
	if p.Todo != nil {
		merged.Todo = *p.Todo
	}
	if p.Priority != nil {
		merged.Priority = *p.Priority
	}
	if p.Status != nil {
		merged.Status = *p.Status
	}
	return merged
}
