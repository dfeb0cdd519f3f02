package markdown

import (
	"errors"
	"fmt"
)

// Warning describes a non-critical problem found in the input.
type Warning struct {
	// Issue defines the type of the problem.
	Issue Issue `json:"issue"`

	// Pos is the byte position in the input at which the problem occured.
	//
	// IMPORTANT: Pos is a byte offset, not a rune index. UI code that works with runes must
	// convert it, e.g. with utf8.RuneCountInString(input[:pos]).
	Pos int `json:"pos"`

	// Description is a human-readable story of what went wrong.
	Description string `json:"description"`
}

// WarningOverflowPolicy determines what happens when the maximum Warning capacity is reached.
type WarningOverflowPolicy int

const (
	// WarnOverflowNoCap means no limit for Warning recording.
	WarnOverflowNoCap WarningOverflowPolicy = iota

	// WarnOverflowNoRec means adding new Warning is a no-op.
	WarnOverflowNoRec

	// WarnOverflowDrop means all Warnings after the overflow will be simply discarded.
	WarnOverflowDrop

	// WarnOverflowTrunc means all Warnings after the overflow will be discarded, but
	// the number of dropped ones is recorded and an additional Warning, signalling the
	// overflow, is added.
	WarnOverflowTrunc
)

// ErrNegativeWarningsCap is returned by NewWarnings for a negative capacity.
var ErrNegativeWarningsCap = errors.New("warnings cap must be non-negative")

// Warnings maintains the list of issues found during tokenizing and rendering.
//
// A nil *Warnings is valid and records nothing, so the core can always call Add.
type Warnings struct {
	policy WarningOverflowPolicy

	list []Warning

	// maxWarnings caps the list so a hostile input can't blow up the diagnostics.
	maxWarnings int

	overflowed   bool
	droppedCount int
	firstDropPos int
}

// NewWarnings creates a Warnings collector with the given overflow policy and capacity.
func NewWarnings(policy WarningOverflowPolicy, cap int) (*Warnings, error) {
	if cap < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNegativeWarningsCap, cap)
	}

	return &Warnings{
		policy:      policy,
		list:        make([]Warning, 0, cap),
		maxWarnings: cap,
	}, nil
}

// IsOverflow reports whether the capacity was reached.
func (w *Warnings) IsOverflow() bool {
	return w != nil && w.overflowed
}

// DroppedCount is the number of Warnings discarded after the overflow.
func (w *Warnings) DroppedCount() int {
	if w == nil {
		return 0
	}
	return w.droppedCount
}

// FirstDropPos is the input position of the first discarded Warning.
func (w *Warnings) FirstDropPos() int {
	if w == nil {
		return 0
	}
	return w.firstDropPos
}

// List returns the recorded Warnings.
func (w *Warnings) List() []Warning {
	if w == nil {
		return nil
	}
	return w.list
}

// Add appends new Warning to the list according to the overflow policy.
func (w *Warnings) Add(item Warning) {
	if w == nil {
		return
	}

	switch w.policy {
	case WarnOverflowNoRec:
		return
	case WarnOverflowNoCap:
		w.list = append(w.list, item)
		return
	}

	// after overflow: Drop = ignore, Trunc = count + ignore
	if w.overflowed {
		if w.policy == WarnOverflowTrunc {
			w.droppedCount++
		}
		return
	}

	limit := w.maxWarnings
	if w.policy == WarnOverflowTrunc {
		// reserve slot for the truncation marker
		limit = max(w.maxWarnings-1, 0)
	}

	if len(w.list) < limit {
		w.list = append(w.list, item)
		return
	}

	w.overflowed = true
	w.firstDropPos = item.Pos

	if w.policy == WarnOverflowTrunc {
		w.droppedCount = 1
		if w.maxWarnings > 0 {
			w.list = append(w.list, Warning{
				Issue:       IssueWarningsTruncated,
				Pos:         w.firstDropPos,
				Description: "too many warnings; further warnings suppressed",
			})
		}
	}
}

func (w *Warnings) addf(issue Issue, pos int, format string, args ...any) {
	if w == nil {
		return
	}

	w.Add(Warning{
		Issue:       issue,
		Pos:         pos,
		Description: fmt.Sprintf(format, args...),
	})
}
