package courier

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"dispatchdesk/internal/pkg/errs"
	"dispatchdesk/internal/pkg/guard"

	"github.com/agnivade/levenshtein"
)

// DefaultNames is the roster used when the desk configures none.
var DefaultNames = []string{
	"Ulug'bek Nuriyev",
	"Ulug'bek Jurabayev",
	"Otabek Saydullayev",
	"Dilshod Tadjibayev",
	"Muzaffar Aliyev",
	"Nomonjon",
}

var (
	// ErrNameIsRequired is returned for a blank roster entry.
	ErrNameIsRequired = errs.NewValueIsRequiredError("courier name")
	// ErrDuplicateName is returned when a roster lists the same courier twice.
	ErrDuplicateName = errors.New("courier is listed twice")
	// ErrUnknownCourier is the sentinel behind UnknownCourierError.
	ErrUnknownCourier = errors.New("courier is not on the roster")
	// ErrRosterIsNotConstructed is returned when a zero Roster is used.
	ErrRosterIsNotConstructed = errors.New("Roster must be created via NewRoster constructor")
)

// UnknownCourierError reports a selection of a name that is not on the roster,
// together with the closest roster name when one is near enough to be a typo.
type UnknownCourierError struct {
	Name       string
	Suggestion string
}

func (e *UnknownCourierError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %q, did you mean %q?", ErrUnknownCourier, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%s: %q", ErrUnknownCourier, e.Name)
}

func (e *UnknownCourierError) Unwrap() error {
	return ErrUnknownCourier
}

// Roster is the fixed, ordered list of couriers the desk dispatches to.
// Names are trimmed, non-empty and unique. The order is the display order and
// the first entry is the default selection of a new session.
type Roster struct {
	names []string
	guard guard.ConstructorGuard
}

// NewRoster validates names and builds a Roster. An empty roster is valid: the
// desk then starts every session with no courier selected.
func NewRoster(names ...string) (Roster, error) {
	roster := Roster{
		names: make([]string, 0, len(names)),
		guard: guard.NewConstructorGuard(),
	}

	seen := make(map[string]struct{}, len(names))
	var problems []error
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			problems = append(problems, fmt.Errorf("roster entry %d: %w", i+1, ErrNameIsRequired))
			continue
		}
		if _, dup := seen[name]; dup {
			problems = append(problems, fmt.Errorf("%w: %q", ErrDuplicateName, name))
			continue
		}
		seen[name] = struct{}{}
		roster.names = append(roster.names, name)
	}

	if err := errors.Join(problems...); err != nil {
		return Roster{}, err
	}
	return roster, nil
}

// DefaultRoster returns the roster built from DefaultNames.
func DefaultRoster() Roster {
	roster, err := NewRoster(DefaultNames...)
	if err != nil {
		panic(err)
	}
	return roster
}

// Validate ensures the roster was created through NewRoster.
func (r Roster) Validate() error {
	return r.guard.Validate(ErrRosterIsNotConstructed)
}

// Names returns a copy of the roster in display order.
func (r Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of couriers on the roster.
func (r Roster) Len() int {
	return len(r.names)
}

// First returns the default courier, if the roster has any.
func (r Roster) First() (string, bool) {
	if len(r.names) == 0 {
		return "", false
	}
	return r.names[0], true
}

// Lookup returns the roster entry equal to name (exact, case-sensitive match,
// surrounding whitespace ignored). Unknown names yield an *UnknownCourierError.
func (r Roster) Lookup(name string) (string, error) {
	name = strings.TrimSpace(name)
	for _, n := range r.names {
		if n == name {
			return n, nil
		}
	}

	suggestion, _ := r.Suggest(name)
	return "", &UnknownCourierError{Name: name, Suggestion: suggestion}
}

// Suggest returns the roster name closest to name by case-insensitive edit
// distance, provided the distance is small relative to the name's length.
func (r Roster) Suggest(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}

	limit := max(2, utf8.RuneCountInString(needle)/3)
	best, bestDistance := "", limit+1
	for _, candidate := range r.names {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(candidate))
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}

	return best, best != ""
}
