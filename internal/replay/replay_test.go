package replay_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/combo-tracker/internal/chains"
	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
	"github.com/KirkDiggler/combo-tracker/internal/oracle"
	"github.com/KirkDiggler/combo-tracker/internal/replay"
	"github.com/KirkDiggler/combo-tracker/internal/services/tracker"
	mocktracker "github.com/KirkDiggler/combo-tracker/internal/services/tracker/mock"
	"github.com/KirkDiggler/combo-tracker/internal/testutils"
)

const openerScript = `
name: opener
oracle:
  - id: 1
    name: Stone
    recast_group: 58
  - id: 2
    name: Aero
    recast_group: 58
  - id: 3
    name: Assize
    status: pending
    remaining: 40s
steps:
  - action: Stone
    expect:
      10: Aero
  - action: Aero
    expect:
      10: Assize
  - comment: Assize comes off cooldown
    set:
      - action: Assize
        status: ready
        remaining: 0s
  - action: Assize
    expect:
      10: Stone
  - action: Aero
    status: pending
    expect:
      10: Stone
  - action: Stone
    expect:
      10: Aero
  - reset: 0
    expect:
      10: Stone
`

const openerChains = `
groups:
  - id: 10
    type: l
    actions: [Stone, Aero, Assize]
`

func TestParseScript(t *testing.T) {
	script, err := replay.ParseScript([]byte(openerScript))
	require.NoError(t, err)

	assert.Equal(t, "opener", script.Name)
	require.Len(t, script.Oracle, 3)
	require.Len(t, script.Steps, 7)
	assert.Equal(t, "Aero", script.Steps[0].Expect[10])
	require.NotNil(t, script.Steps[2].Set[0].Remaining)
	assert.Zero(t, *script.Steps[2].Set[0].Remaining)
	require.NotNil(t, script.Steps[6].Reset)
	assert.Equal(t, uint32(0), *script.Steps[6].Reset)
}

func TestParseScript_Errors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "empty step", data: "steps:\n  - comment: nothing\n"},
		{name: "action and reset", data: "steps:\n  - action: Stone\n    reset: 1\n"},
		{name: "not yaml", data: "steps: ["},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := replay.ParseScript([]byte(tc.data))
			assert.True(t, dnderr.IsInvalidArgument(err))
		})
	}
}

func TestScript_Seed(t *testing.T) {
	script, err := replay.ParseScript([]byte(openerScript))
	require.NoError(t, err)

	o := oracle.NewStatic()
	require.NoError(t, script.Seed(o))

	id, ok := o.Lookup("assize")
	require.True(t, ok)
	assert.Equal(t, combo.StatusPending, o.Status(id))
	assert.Equal(t, 58, o.RecastGroup(1))

	bad := &replay.Script{Oracle: []replay.OracleEntry{{ID: 4, Status: "sleepy"}}}
	assert.True(t, dnderr.IsInvalidArgument(bad.Seed(o)))
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opener.yaml")
	require.NoError(t, os.WriteFile(path, []byte(openerScript), 0o600))

	script, err := replay.LoadScript(path)
	require.NoError(t, err)
	assert.Len(t, script.Steps, 7)

	_, err = replay.LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewRunner_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocktracker.NewMockService(ctrl)

	_, err := replay.NewRunner(nil)
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = replay.NewRunner(&replay.RunnerConfig{Oracle: oracle.NewStatic(), Player: oracle.NewPlayer()})
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = replay.NewRunner(&replay.RunnerConfig{Service: svc, Player: oracle.NewPlayer()})
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = replay.NewRunner(&replay.RunnerConfig{Service: svc, Oracle: oracle.NewStatic()})
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestRunner_UsesOracleStatusWhenStepHasNone(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocktracker.NewMockService(ctrl)
	o := testutils.CreateTestOracle()
	o.SetStatus(testutils.ActionAssize, combo.StatusPending)

	runner, err := replay.NewRunner(&replay.RunnerConfig{Service: svc, Oracle: o, Player: oracle.NewPlayer()})
	require.NoError(t, err)

	gomock.InOrder(
		svc.EXPECT().Update(gomock.Any(), combo.Trigger{
			ActionID:  testutils.ActionAssize,
			Status:    combo.StatusPending,
			Succeeded: true,
		}).Return(false),
		svc.EXPECT().Update(gomock.Any(), combo.Trigger{
			ActionID:  testutils.ActionStone,
			Status:    combo.StatusNotSatisfied,
			Succeeded: true,
		}).Return(true),
		svc.EXPECT().Reset(combo.GroupID(7)),
	)
	svc.EXPECT().Groups().Return(nil).AnyTimes()

	seven := uint32(7)
	report, err := runner.Run(context.Background(), &replay.Script{Steps: []replay.Step{
		{Action: "Assize"},
		{Action: "119", Status: "not-satisfied"},
		{Reset: &seven},
	}})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Steps)
	assert.Equal(t, 1, report.Accepted)
	assert.True(t, report.Passed())
}

func TestRunner_UnknownAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocktracker.NewMockService(ctrl)

	runner, err := replay.NewRunner(&replay.RunnerConfig{Service: svc, Oracle: oracle.NewStatic(), Player: oracle.NewPlayer()})
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), &replay.Script{Steps: []replay.Step{{Action: "Glare"}}})
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
	assert.Equal(t, 0, dnderr.GetMeta(err)["step"])
}

func TestRunner_EndToEnd(t *testing.T) {
	script, err := replay.ParseScript([]byte(openerScript))
	require.NoError(t, err)

	o := oracle.NewStatic()
	require.NoError(t, script.Seed(o))

	defs, err := chains.Parse([]byte(openerChains), o)
	require.NoError(t, err)

	player := oracle.NewPlayer()
	svc, err := tracker.NewService(&tracker.ServiceConfig{
		Definitions: defs,
		Oracle:      o,
		Player:      player,
		Settings:    testutils.CreateTestSettings(),
	})
	require.NoError(t, err)

	var transcript bytes.Buffer
	runner, err := replay.NewRunner(&replay.RunnerConfig{Service: svc, Oracle: o, Player: player, Output: &transcript})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), script)
	require.NoError(t, err)

	assert.Empty(t, report.Failures)
	assert.Equal(t, 7, report.Steps)
	assert.Equal(t, 5, report.Accepted)
	assert.Contains(t, transcript.String(), "# opener")
	assert.Contains(t, transcript.String(), "7 steps")
}

func TestRunner_ReportsFailedExpectations(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocktracker.NewMockService(ctrl)
	o := testutils.CreateTestOracle()

	svc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true)
	svc.EXPECT().Current(combo.GroupID(1)).Return(testutils.ActionStone).AnyTimes()
	svc.EXPECT().Groups().Return([]combo.GroupID{1}).AnyTimes()

	var transcript bytes.Buffer
	runner, err := replay.NewRunner(&replay.RunnerConfig{Service: svc, Oracle: o, Player: oracle.NewPlayer(), Output: &transcript})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), &replay.Script{Steps: []replay.Step{
		{Action: "Stone", Expect: map[uint32]string{1: "Aero"}},
	}})
	require.NoError(t, err)

	assert.False(t, report.Passed())
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0], "group 1 expected Aero")
	assert.Contains(t, transcript.String(), "FAIL")
}

func TestRunner_BundledExamples(t *testing.T) {
	script, err := replay.LoadScript(filepath.Join("..", "..", "examples", "opener.yaml"))
	require.NoError(t, err)

	o := oracle.NewStatic()
	require.NoError(t, script.Seed(o))

	defs, err := chains.Load(filepath.Join("..", "..", "examples", "chains.yaml"), o)
	require.NoError(t, err)
	require.Len(t, defs, 3)

	player := oracle.NewPlayer()
	svc, err := tracker.NewService(&tracker.ServiceConfig{
		Definitions: defs,
		Oracle:      o,
		Player:      player,
		Settings:    testutils.CreateTestSettings(),
	})
	require.NoError(t, err)

	runner, err := replay.NewRunner(&replay.RunnerConfig{Service: svc, Oracle: o, Player: player})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), script)
	require.NoError(t, err)
	assert.Empty(t, report.Failures)
}
