package manifest

// Meta is the free-form header the operator attaches to a printed or exported
// manifest. It is not stored per row.
type Meta struct {
	date string
	note string
}

// NewMeta creates manifest meta.
func NewMeta(date, note string) Meta {
	return Meta{date: date, note: note}
}

// Date returns the manifest date as typed by the operator.
func (m Meta) Date() string { return m.date }

// Note returns the optional note; empty means no note line is printed.
func (m Meta) Note() string { return m.note }

// HasNote reports whether a note was entered.
func (m Meta) HasNote() bool { return m.note != "" }
