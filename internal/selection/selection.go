// Package selection holds the user's current filter combination.
//
// State is a value: every operation returns the next state and leaves the
// receiver untouched. SelectCategory, SelectTags and SetQuery are the only
// mutations and each replaces exactly one field.
package selection

import "sharapu/internal/model"

type State struct {
	Category model.Category
	Tags     model.TagSet
	Query    string
}

// Empty is the state on shell start: no category, no tags, no query.
func Empty() State { return State{} }

// SelectCategory toggles: selecting the active category clears it.
func (s State) SelectCategory(label string) State {
	if s.Category.Is(label) {
		s.Category = model.NoCategory()
		return s
	}
	s.Category = model.Named(label)
	return s
}

// SelectTags replaces the whole tag set. The caller's set is copied.
func (s State) SelectTags(tags model.TagSet) State {
	s.Tags = tags.Clone()
	return s
}

// SetQuery replaces the query verbatim.
func (s State) SetQuery(text string) State {
	s.Query = text
	return s
}

// IsEmpty reports whether no filter dimension is active.
func (s State) IsEmpty() bool {
	return !s.Category.IsSet() && s.Tags.Len() == 0 && s.Query == ""
}

func (s State) Equal(o State) bool {
	return s.Category == o.Category && s.Tags.Equal(o.Tags) && s.Query == o.Query
}

// Manager owns a State for the presentation shell.
//
// Version increases on every mutation that changes the state, so the shell can
// skip recomputing results when nothing moved.
type Manager struct {
	state   State
	version uint64
}

func NewManager() *Manager { return &Manager{state: Empty()} }

func (m *Manager) State() State { return m.state }

func (m *Manager) Version() uint64 { return m.version }

func (m *Manager) SelectCategory(label string) State {
	return m.apply(m.state.SelectCategory(label))
}

func (m *Manager) SelectTags(tags model.TagSet) State {
	return m.apply(m.state.SelectTags(tags))
}

func (m *Manager) SetQuery(text string) State {
	return m.apply(m.state.SetQuery(text))
}

// Reset clears every dimension ("show all"). It is built from the three
// mutations: re-selecting the active category toggles it off.
func (m *Manager) Reset() State {
	next := m.state
	if name, ok := next.Category.Name(); ok {
		next = next.SelectCategory(name)
	}
	next = next.SelectTags(nil).SetQuery("")
	return m.apply(next)
}

func (m *Manager) apply(next State) State {
	if !next.Equal(m.state) {
		m.version++
	}
	m.state = next
	return m.state
}
