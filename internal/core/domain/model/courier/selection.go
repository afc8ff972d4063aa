package courier

// Selection is the courier currently chosen by the operator, or none.
// New package records copy the selected name at creation time; changing the
// selection later never rewrites existing records.
type Selection struct {
	name     string
	selected bool
}

// NoSelection is the empty selection.
func NoSelection() Selection {
	return Selection{}
}

// Selected returns a selection of name. Callers resolve name through
// Roster.Lookup first.
func Selected(name string) Selection {
	return Selection{name: name, selected: true}
}

// DefaultSelection selects the first roster entry, or nothing for an empty roster.
func DefaultSelection(r Roster) Selection {
	if name, ok := r.First(); ok {
		return Selected(name)
	}
	return NoSelection()
}

// Name returns the selected courier and whether one is selected.
func (s Selection) Name() (string, bool) {
	return s.name, s.selected
}
