package database

import "strings"

// FilterKind names which priority/status combination a list query applies.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterPriorityAndStatus
	FilterPriority
	FilterStatus
)

func (k FilterKind) String() string {
	switch k {
	case FilterPriorityAndStatus:
		return "priority_and_status"
	case FilterPriority:
		return "priority"
	case FilterStatus:
		return "status"
	default:
		return "none"
	}
}

// TodoFilter holds the list query parameters. A nil Priority or Status was
// absent from the request; a pointer to "" was present and empty.
type TodoFilter struct {
	SearchQ  string
	Priority *string
	Status   *string
}

type filterRule struct {
	kind    FilterKind
	matches func(TodoFilter) bool
}

var filterRules = []filterRule{
	{FilterPriorityAndStatus, func(f TodoFilter) bool { return f.Priority != nil && f.Status != nil }},
	{FilterPriority, func(f TodoFilter) bool { return f.Priority != nil }},
	{FilterStatus, func(f TodoFilter) bool { return f.Status != nil }},
}

// Kind resolves the filter combination. Rules are evaluated in a fixed
// order (both, priority only, status only) and fall back to FilterNone.
func (f TodoFilter) Kind() FilterKind {
	for _, rule := range filterRules {
		if rule.matches(f) {
			return rule.kind
		}
	}
	return FilterNone
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Where returns the WHERE clause body and its bound arguments. The search
// text is always matched as a literal substring of the todo column.
func (f TodoFilter) Where() (string, []any) {
	clauses := []string{`todo LIKE ? ESCAPE '\'`}
	args := []any{"%" + likeEscaper.Replace(f.SearchQ) + "%"}

	switch f.Kind() {
	case FilterPriorityAndStatus:
		clauses = append(clauses, "status = ?", "priority = ?")
		args = append(args, *f.Status, *f.Priority)
	case FilterPriority:
		clauses = append(clauses, "priority = ?")
		args = append(args, *f.Priority)
	case FilterStatus:
		clauses = append(clauses, "status = ?")
		args = append(args, *f.Status)
	}

	return strings.Join(clauses, " AND "), args
}
