package services

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

type FlowState int

const (
	StateIdle FlowState = iota
	StateVersionChosen
	StateModloaderChosen
	StateConfirmed
	StateCancelled
)

func (s FlowState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateVersionChosen:
		return "version chosen"
	case StateModloaderChosen:
		return "modloader chosen"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s FlowState) Terminal() bool {
	return s == StateConfirmed || s == StateCancelled
}

// Selection is the confirmed result of a flow.
type Selection struct {
	Version   string
	Modloader LoaderID
}

// Snapshot is a copy of the flow for rendering.
type Snapshot struct {
	State     FlowState
	Version   string
	Modloader LoaderID
	Available []LoaderID
	Options   []LoaderOption
}

// Selector is what a picker surface drives.
type Selector interface {
	SelectVersion(version string) error
	SelectModloader(id string) error
	Confirm() (Selection, error)
	Cancel()
	Snapshot() Snapshot
}

// Flow is the two step version then modloader selection. One Flow belongs
// to one open picker and is not safe for concurrent use.
type Flow struct {
	state     FlowState
	version   string
	available []LoaderID
	modloader LoaderID
}

var _ Selector = (*Flow)(nil)

func NewFlow() *Flow {
	return &Flow{state: StateIdle}
}

func (f *Flow) State() FlowState { return f.state }

// SelectVersion records version and recomputes the usable loaders. Any
// earlier modloader choice is dropped, even if it would still be valid.
func (f *Flow) SelectVersion(version string) error {
	if f.state.Terminal() {
		return ErrSessionClosed
	}
	f.version = version
	f.available = AvailableLoaders(version)
	f.modloader = ""
	f.state = StateVersionChosen
	log.Debug().Str("version", version).Interface("available", f.available).Msg("version selected")
	return nil
}

// SelectModloader accepts only members of the current available set.
func (f *Flow) SelectModloader(id string) error {
	if f.state.Terminal() {
		return ErrSessionClosed
	}
	if f.state == StateIdle {
		return fmt.Errorf("%w: choose a version first", ErrInvalidSelection)
	}
	d, err := LookupLoader(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	if !slices.Contains(f.available, d.ID) {
		return fmt.Errorf("%w: %s is not available for %q", ErrInvalidSelection, d.Name, f.version)
	}
	f.modloader = d.ID
	f.state = StateModloaderChosen
	return nil
}

// Confirm returns the chosen pair and closes the flow.
func (f *Flow) Confirm() (Selection, error) {
	if f.state.Terminal() {
		return Selection{}, ErrSessionClosed
	}
	switch f.state {
	case StateIdle:
		return Selection{}, fmt.Errorf("%w: no version chosen", ErrIncompleteSelection)
	case StateVersionChosen:
		return Selection{}, fmt.Errorf("%w: no modloader chosen", ErrIncompleteSelection)
	}
	sel := Selection{Version: f.version, Modloader: f.modloader}
	f.reset(StateConfirmed)
	log.Info().Str("version", sel.Version).Str("modloader", string(sel.Modloader)).Msg("selection confirmed")
	return sel, nil
}

// Cancel discards the flow. Cancelling twice is harmless.
func (f *Flow) Cancel() {
	if f.state.Terminal() {
		return
	}
	f.reset(StateCancelled)
}

func (f *Flow) reset(state FlowState) {
	f.version = ""
	f.available = nil
	f.modloader = ""
	f.state = state
}

func (f *Flow) Snapshot() Snapshot {
	snap := Snapshot{
		State:     f.state,
		Version:   f.version,
		Modloader: f.modloader,
		Available: slices.Clone(f.available),
	}
	if f.state == StateVersionChosen || f.state == StateModloaderChosen {
		snap.Options = LoaderOptions(f.version)
	}
	return snap
}
