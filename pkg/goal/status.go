package goal

import "strings"

// Acceptance is the acceptance tier of a goal.
type Acceptance int

const (
	Proposed Acceptance = iota
	Accepted
	NotAccepted
)

func (a Acceptance) String() string {
	switch a {
	case Proposed:
		return "Proposed"
	case Accepted:
		return "Accepted"
	case NotAccepted:
		return "Not accepted"
	default:
		return "unknown"
	}
}

// Status is the parsed value of a metadata Status row.
type Status struct {
	Acceptance Acceptance

	// IsFlagship marks a flagship goal (or flagship candidate).
	IsFlagship bool

	// IsInvited marks an invited goal, one that still lacks a primary owner.
	IsInvited bool
}

// IsNotNotAccepted reports whether the goal has not been rejected, i.e. its
// acceptance is Proposed or Accepted.
func (s Status) IsNotNotAccepted() bool {
	return s.Acceptance != NotAccepted
}

// statusLabels is the closed vocabulary of status labels, in the order they
// are listed in error messages.
var statusLabels = []struct {
	label  string
	status Status
}{
	{"Flagship", Status{Acceptance: Accepted, IsFlagship: true}},
	{"Accepted", Status{Acceptance: Accepted}},
	{"Invited", Status{Acceptance: Accepted, IsInvited: true}},
	{"Proposed", Status{Acceptance: Proposed}},
	{"Proposed for flagship", Status{Acceptance: Proposed, IsFlagship: true}},
	{"Proposed for mentorship", Status{Acceptance: Proposed, IsInvited: true}},
	{"Not accepted", Status{Acceptance: NotAccepted}},
}

// ParseStatus maps a status label to its Status value. The label is trimmed
// and then matched exactly against the seven-entry vocabulary.
func ParseStatus(value string) (Status, error) {
	value = strings.TrimSpace(value)
	for _, entry := range statusLabels {
		if value == entry.label {
			return entry.status, nil
		}
	}

	valid := make([]string, len(statusLabels))
	for i, entry := range statusLabels {
		valid[i] = entry.label
	}
	return Status{}, valueErrorf("unrecognized status `%s`, expected one of: %s",
		value, strings.Join(valid, ", "))
}
