// Package replay drives a tracker from a scripted sequence of game events
package replay

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/combo-tracker/internal/chains"
	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
	"github.com/KirkDiggler/combo-tracker/internal/oracle"
)

// Script is a replay file
type Script struct {
	Name   string        `yaml:"name"`
	Oracle []OracleEntry `yaml:"oracle"`
	Steps  []Step        `yaml:"steps"`
}

// OracleEntry seeds one action in the static oracle
type OracleEntry struct {
	ID          uint32        `yaml:"id"`
	Name        string        `yaml:"name"`
	Status      string        `yaml:"status"`
	RecastGroup int           `yaml:"recast_group"`
	Remaining   time.Duration `yaml:"remaining"`
	Adjusted    uint32        `yaml:"adjusted"`
	Base        uint32        `yaml:"base"`
}

// Step is one scripted moment. Oracle and player changes apply first, then
// either the reset or the trigger.
type Step struct {
	Action  string            `yaml:"action"`
	Status  string            `yaml:"status"`
	Set     []Change          `yaml:"set"`
	Cast    *Cast             `yaml:"cast"`
	Ready   *bool             `yaml:"ready"`
	Reset   *uint32           `yaml:"reset"`
	Expect  map[uint32]string `yaml:"expect"`
	Comment string            `yaml:"comment"`
}

// Change updates what the oracle reports for an action
type Change struct {
	Action    string         `yaml:"action"`
	Status    string         `yaml:"status"`
	Remaining *time.Duration `yaml:"remaining"`
}

// Cast starts a cast, or stops it when Total is zero
type Cast struct {
	Total   time.Duration `yaml:"total"`
	Elapsed time.Duration `yaml:"elapsed"`
}

// LoadScript reads and parses a replay file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to read replay script %s", path)
	}
	return ParseScript(data)
}

// ParseScript parses replay file contents
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid replay yaml")
	}

	for i, step := range script.Steps {
		if step.Action == "" && step.Reset == nil && len(step.Set) == 0 && step.Cast == nil && step.Ready == nil {
			return nil, dnderr.InvalidArgumentf("step %d does nothing", i).WithMeta("step", i)
		}
		if step.Action != "" && step.Reset != nil {
			return nil, dnderr.InvalidArgumentf("step %d has both an action and a reset", i).WithMeta("step", i)
		}
	}

	return &script, nil
}

// Seed loads the script's oracle table
func (s *Script) Seed(o *oracle.Static) error {
	for i, entry := range s.Oracle {
		status, err := parseStatus(entry.Status)
		if err != nil {
			return dnderr.Wrapf(err, "oracle entry %d", i).WithMeta("action_id", entry.ID)
		}

		o.Set(combo.ActionID(entry.ID), oracle.Entry{
			Name:        entry.Name,
			Status:      status,
			RecastGroup: entry.RecastGroup,
			Remaining:   entry.Remaining,
			Adjusted:    combo.ActionID(entry.Adjusted),
			Base:        combo.ActionID(entry.Base),
		})
	}
	return nil
}

func parseStatus(name string) (combo.Status, error) {
	if name == "" {
		return combo.StatusUnknown, nil
	}
	return combo.ParseStatus(name)
}

func resolve(o *oracle.Static, text string) (combo.ActionID, error) {
	return chains.ResolveID(text, o)
}
