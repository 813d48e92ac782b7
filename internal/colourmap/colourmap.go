// Package colourmap holds the tree of named colours that templates are
// rendered against. Nodes live in a single arena and are addressed by NodeID,
// so an alias is just a second key pointing at an existing node.
package colourmap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmylchreest/base9/internal/colour"
)

// NodeID addresses a node in a Map.
type NodeID int

// Root is the top-level group of every Map.
const Root NodeID = 0

var (
	// ErrNotFound is returned when a path does not name a node.
	ErrNotFound = errors.New("colour not found")
	// ErrNotGroup is returned when a key is looked up below a colour.
	ErrNotGroup = errors.New("not a group")
	// ErrDuplicateKey is returned when adding a key that already exists.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrCycle is returned when a link would make a group contain itself.
	ErrCycle = errors.New("link would create a cycle")
)

type node struct {
	group    bool
	colour   colour.Color
	children map[string]NodeID
}

// Map is an arena-backed tree of colours and groups. The zero value is not
// usable; create one with New.
type Map struct {
	nodes []node
}

// New returns a Map holding an empty root group.
func New() *Map {
	m := &Map{}
	m.newGroup()
	return m
}

// Len returns the number of nodes in the arena, including detached ones.
func (m *Map) Len() int { return len(m.nodes) }

func (m *Map) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(m.nodes)
}

func (m *Map) newGroup() NodeID {
	m.nodes = append(m.nodes, node{group: true, children: map[string]NodeID{}})
	return NodeID(len(m.nodes) - 1)
}

func (m *Map) newColour(c colour.Color) NodeID {
	m.nodes = append(m.nodes, node{colour: c})
	return NodeID(len(m.nodes) - 1)
}

func (m *Map) groupNode(id NodeID) (*node, error) {
	if !m.valid(id) {
		return nil, fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	n := &m.nodes[id]
	if !n.group {
		return nil, fmt.Errorf("node %d: %w", id, ErrNotGroup)
	}
	return n, nil
}

// set binds key in parent to id, replacing any existing binding.
func (m *Map) set(parent NodeID, key string, id NodeID) error {
	if key == "" || strings.Contains(key, ".") {
		return fmt.Errorf("invalid key %q", key)
	}
	n, err := m.groupNode(parent)
	if err != nil {
		return err
	}
	n.children[key] = id
	return nil
}

func (m *Map) add(parent NodeID, key string, id NodeID) error {
	if _, exists := m.Lookup(parent, key); exists {
		return fmt.Errorf("%s: %w", key, ErrDuplicateKey)
	}
	return m.set(parent, key, id)
}

// AddColour adds the colour c under key in the parent group.
func (m *Map) AddColour(parent NodeID, key string, c colour.Color) (NodeID, error) {
	if _, err := m.groupNode(parent); err != nil {
		return 0, err
	}
	id := m.newColour(c)
	if err := m.add(parent, key, id); err != nil {
		m.nodes = m.nodes[:id]
		return 0, err
	}
	return id, nil
}

// AddGroup adds an empty group under key in the parent group.
func (m *Map) AddGroup(parent NodeID, key string) (NodeID, error) {
	if _, err := m.groupNode(parent); err != nil {
		return 0, err
	}
	id := m.newGroup()
	if err := m.add(parent, key, id); err != nil {
		m.nodes = m.nodes[:id]
		return 0, err
	}
	return id, nil
}

// Link makes key in the parent group refer to the existing node target. An
// existing key is replaced.
func (m *Map) Link(parent NodeID, key string, target NodeID) error {
	if !m.valid(target) {
		return fmt.Errorf("node %d: %w", target, ErrNotFound)
	}
	if m.reaches(target, parent) {
		return fmt.Errorf("%s: %w", key, ErrCycle)
	}
	return m.set(parent, key, target)
}

// reaches reports whether to is from or one of its descendants.
func (m *Map) reaches(from, to NodeID) bool {
	if from == to {
		return true
	}
	n := m.nodes[from]
	for _, child := range n.children {
		if m.reaches(child, to) {
			return true
		}
	}
	return false
}

// Lookup returns the child of id bound to key.
func (m *Map) Lookup(id NodeID, key string) (NodeID, bool) {
	if !m.valid(id) || !m.nodes[id].group {
		return 0, false
	}
	child, ok := m.nodes[id].children[key]
	return child, ok
}

// Resolve follows a dotted path such as "red.p100" from the root.
func (m *Map) Resolve(path string) (NodeID, error) {
	if path == "" {
		return 0, fmt.Errorf("empty path: %w", ErrNotFound)
	}
	id := Root
	keys := strings.Split(path, ".")
	for i, key := range keys {
		if !m.nodes[id].group {
			return 0, fmt.Errorf("%s: %s: %w", path, strings.Join(keys[:i], "."), ErrNotGroup)
		}
		next, ok := m.Lookup(id, key)
		if !ok {
			return 0, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		id = next
	}
	return id, nil
}

// IsGroup reports whether id is a group.
func (m *Map) IsGroup(id NodeID) bool {
	return m.valid(id) && m.nodes[id].group
}

// Colour returns the colour stored at id. ok is false for groups.
func (m *Map) Colour(id NodeID) (c colour.Color, ok bool) {
	if !m.valid(id) || m.nodes[id].group {
		return colour.Color{}, false
	}
	return m.nodes[id].colour, true
}

// Keys returns the sorted keys of the group id.
func (m *Map) Keys(id NodeID) []string {
	if !m.IsGroup(id) {
		return nil
	}
	keys := make([]string, 0, len(m.nodes[id].children))
	for k := range m.nodes[id].children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EventKind identifies a Walk event.
type EventKind int

const (
	// EventColour is emitted for every colour.
	EventColour EventKind = iota
	// EventBegin is emitted before the children of a group.
	EventBegin
	// EventEnd is emitted after the children of a group.
	EventEnd
)

// Event is one step of a Walk.
type Event struct {
	Kind   EventKind
	Path   []string
	Colour colour.Color // set for EventColour
}

// Dotted returns the path joined with '.'.
func (e Event) Dotted() string { return strings.Join(e.Path, ".") }

// Last returns the final path element, or "" at the root.
func (e Event) Last() string {
	if len(e.Path) == 0 {
		return ""
	}
	return e.Path[len(e.Path)-1]
}

// Walk visits every node reachable from the root depth first with keys in
// sorted order. Linked nodes are visited once per path that reaches them.
// Walking stops at the first error returned by fn.
func (m *Map) Walk(fn func(Event) error) error {
	return m.walk(Root, nil, fn)
}

func (m *Map) walk(id NodeID, path []string, fn func(Event) error) error {
	n := m.nodes[id]
	// Events get their own copy of the path.
	own := append([]string(nil), path...)
	if !n.group {
		return fn(Event{Kind: EventColour, Path: own, Colour: n.colour})
	}

	if err := fn(Event{Kind: EventBegin, Path: own}); err != nil {
		return err
	}
	for _, key := range m.Keys(id) {
		if err := m.walk(n.children[key], append(own, key), fn); err != nil {
			return err
		}
	}
	return fn(Event{Kind: EventEnd, Path: own})
}
