// Package chains loads combo chain definitions.
//
// A chain file lists groups, each with a policy code and ordered slots:
//
//	groups:
//	  - id: Holy
//	    type: o
//	    actions:
//	      - Holy {1,3}
//	      - Assize *
//	      - Plenary Indulgence ?
//	      - Lucid Dreaming !
//
// Slot suffixes: none = single use, {m,u} = between m and u uses, * = may be
// skipped, ? = may be skipped once fired, ! = blocks until used.
// Actions are numeric ids or names known to the Resolver.
package chains

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
)

// Resolver maps action names to ids
type Resolver interface {
	Lookup(name string) (combo.ActionID, bool)
}

// File is the on-disk layout of a chain file
type File struct {
	Groups []GroupSpec `yaml:"groups"`
}

// GroupSpec is one group as written in a chain file
type GroupSpec struct {
	ID      string   `yaml:"id"`
	Type    string   `yaml:"type"`
	Actions []string `yaml:"actions"`
}

// Definition is a parsed group, ready to be turned into a combo.Group
type Definition struct {
	ID      combo.GroupID
	Policy  combo.Policy
	Actions []*combo.Action
}

var slotPattern = regexp.MustCompile(`^(?P<action>.+?)\s*(?:\{\s*(?P<min>\d+)\s*,\s*(?P<max>\d+)\s*\})?\s*(?P<flag>[*?!])?$`)

// Load reads and parses a chain file
func Load(path string, resolver Resolver) ([]*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to read chain file %s", path)
	}

	defs, err := Parse(data, resolver)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load chain file %s", path)
	}
	return defs, nil
}

// Parse parses chain file contents
func Parse(data []byte, resolver Resolver) ([]*Definition, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid chain yaml")
	}

	defs := make([]*Definition, 0, len(file.Groups))
	seen := make(map[combo.GroupID]bool, len(file.Groups))

	for i, spec := range file.Groups {
		def, err := parseGroup(spec, resolver)
		if err != nil {
			return nil, dnderr.Wrapf(err, "group %d", i).WithMeta("group_index", i)
		}
		if seen[def.ID] {
			return nil, dnderr.AlreadyExistsf("group %d is defined twice", def.ID).WithMeta("group_index", i)
		}
		seen[def.ID] = true
		defs = append(defs, def)
	}

	return defs, nil
}

func parseGroup(spec GroupSpec, resolver Resolver) (*Definition, error) {
	id, err := ResolveID(spec.ID, resolver)
	if err != nil {
		return nil, err
	}
	if len(spec.Actions) == 0 {
		return nil, dnderr.InvalidArgumentf("group %q has no actions", spec.ID)
	}

	def := &Definition{
		ID:      combo.GroupID(id),
		Policy:  combo.ParsePolicy(spec.Type),
		Actions: make([]*combo.Action, 0, len(spec.Actions)),
	}

	for j, line := range spec.Actions {
		action, err := ParseAction(line, resolver)
		if err != nil {
			return nil, dnderr.Wrapf(err, "slot %d", j).WithMeta("slot", line)
		}
		def.Actions = append(def.Actions, action)
	}

	return def, nil
}

// ParseAction parses one slot such as "Holy {1,3}?" or "7 !"
func ParseAction(line string, resolver Resolver) (*combo.Action, error) {
	match := slotPattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return nil, dnderr.InvalidArgumentf("cannot parse slot %q", line)
	}

	id, err := ResolveID(match[slotPattern.SubexpIndex("action")], resolver)
	if err != nil {
		return nil, err
	}

	flag := match[slotPattern.SubexpIndex("flag")]
	minText := match[slotPattern.SubexpIndex("min")]

	if minText == "" {
		action := combo.NewAction(id)
		switch flag {
		case "*":
			action.Kind = combo.KindSkipable
		case "?":
			action.Kind = combo.KindSingleSkipable
		case "!":
			action.Kind = combo.KindBlocking
		}
		return action, nil
	}

	minimum, _ := strconv.Atoi(minText)
	maximum, _ := strconv.Atoi(match[slotPattern.SubexpIndex("max")])
	if maximum < 1 || minimum > maximum {
		return nil, dnderr.InvalidArgumentf("slot %q has invalid bounds {%d,%d}", line, minimum, maximum)
	}

	action := combo.NewMultiAction(id, minimum, maximum)
	switch flag {
	case "*", "?":
		action.Kind = combo.KindMultiSkipable
	case "!":
		return nil, dnderr.InvalidArgumentf("slot %q cannot both repeat and block", line)
	}
	return action, nil
}

// ResolveID turns a numeric id or a known action name into an id
func ResolveID(text string, resolver Resolver) (combo.ActionID, error) {
	text = strings.Trim(strings.TrimSpace(text), `"'`)
	if text == "" {
		return 0, dnderr.InvalidArgument("action cannot be empty")
	}

	if n, err := strconv.ParseUint(text, 10, 32); err == nil {
		return combo.ActionID(n), nil
	}

	if resolver != nil {
		if id, ok := resolver.Lookup(text); ok {
			return id, nil
		}
	}
	return 0, dnderr.InvalidArgumentf("unknown action %q", text)
}

// String renders a definition back in chain file syntax
func (d *Definition) String() string {
	slots := make([]string, len(d.Actions))
	for i, a := range d.Actions {
		slots[i] = FormatAction(a)
	}
	return fmt.Sprintf("%d (%s): %s", d.ID, d.Policy, strings.Join(slots, " -> "))
}

// FormatAction renders one slot in chain file syntax
func FormatAction(a *combo.Action) string {
	text := strconv.FormatUint(uint64(a.ID), 10)
	if a.Kind.Has(combo.KindMulti) {
		text += fmt.Sprintf(" {%d,%d}", a.MinimumCount, a.MaximumCount)
		if a.Kind.Has(combo.KindSkipable) {
			text += "?"
		}
		return text
	}

	switch {
	case a.Kind.Has(combo.KindSingleSkipable):
		text += " ?"
	case a.Kind.Has(combo.KindSkipable):
		text += " *"
	case a.Kind.Has(combo.KindBlocking):
		text += " !"
	}
	return text
}
