package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// BuiltIn marks an alias entry that names a built-in colour. It adds nothing
// to the colour tree.
const BuiltIn = "BUILT_IN"

// referencePattern matches a dotted path such as "red.p100".
var referencePattern = regexp.MustCompile(`^[a-z][0-9a-z_]*(\.[a-z][0-9a-z_]*)*$`)

// AliasKind identifies what an alias entry holds.
type AliasKind int

const (
	// AliasBuiltIn is a BUILT_IN placeholder.
	AliasBuiltIn AliasKind = iota
	// AliasReference points at another node by dotted path.
	AliasReference
	// AliasGroup is a nested group of aliases.
	AliasGroup
)

// String returns the kind name.
func (k AliasKind) String() string {
	switch k {
	case AliasBuiltIn:
		return "built-in"
	case AliasReference:
		return "reference"
	case AliasGroup:
		return "group"
	default:
		return fmt.Sprintf("AliasKind(%d)", int(k))
	}
}

// Alias is one value of the colors tree.
type Alias struct {
	Kind      AliasKind
	Reference string  // set for AliasReference
	Group     Aliases // set for AliasGroup
}

// Aliases maps names to alias entries.
type Aliases map[string]Alias

// Ref returns a reference alias.
func Ref(path string) Alias {
	return Alias{Kind: AliasReference, Reference: path}
}

// Group returns a group alias.
func Group(entries Aliases) Alias {
	return Alias{Kind: AliasGroup, Group: entries}
}

// Path splits a reference into its keys.
func (a Alias) Path() []string {
	if a.Kind != AliasReference {
		return nil
	}
	return strings.Split(a.Reference, ".")
}

// UnmarshalYAML decodes a scalar as BUILT_IN or a reference and a mapping as
// a group.
func (a *Alias) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		s := strings.TrimSpace(value.Value)
		if s == BuiltIn {
			*a = Alias{Kind: AliasBuiltIn}
			return nil
		}
		if !referencePattern.MatchString(s) {
			return fmt.Errorf("line %d: invalid colour reference %q", value.Line, value.Value)
		}
		*a = Ref(s)
		return nil
	case yaml.MappingNode:
		var group Aliases
		if err := value.Decode(&group); err != nil {
			return err
		}
		if group == nil {
			group = Aliases{}
		}
		*a = Group(group)
		return nil
	default:
		return fmt.Errorf("line %d: colour alias must be BUILT_IN, a reference or a mapping", value.Line)
	}
}

// MarshalYAML encodes the alias the way UnmarshalYAML reads it.
func (a Alias) MarshalYAML() (interface{}, error) {
	switch a.Kind {
	case AliasBuiltIn:
		return BuiltIn, nil
	case AliasReference:
		return a.Reference, nil
	case AliasGroup:
		return a.Group, nil
	default:
		return nil, fmt.Errorf("unknown alias kind %v", a.Kind)
	}
}

// Names returns the alias names in sorted order.
func (as Aliases) Names() []string {
	names := make([]string, 0, len(as))
	for name := range as {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (as Aliases) validate(prefix string) error {
	for _, name := range as.Names() {
		alias := as[name]
		path := prefix + "." + name
		if err := validateKey(name); err != nil {
			return fmt.Errorf("%s: %w", prefix, err)
		}
		switch alias.Kind {
		case AliasBuiltIn:
		case AliasReference:
			if !referencePattern.MatchString(alias.Reference) {
				return fmt.Errorf("%s: invalid colour reference %q", path, alias.Reference)
			}
		case AliasGroup:
			if err := alias.Group.validate(path); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: unknown alias kind %v", path, alias.Kind)
		}
	}
	return nil
}
