package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs, oldFlags := os.Args, flag.CommandLine
	t.Cleanup(func() {
		os.Args, flag.CommandLine = oldArgs, oldFlags
	})

	os.Args = append([]string{"combo-replay"}, args...)
	flag.CommandLine = flag.NewFlagSet("combo-replay", flag.ContinueOnError)

	t.Setenv("REDIS_URL", "")
	t.Setenv("COMBO_ANIMATION_DELAY", "0s")
	t.Setenv("COMBO_ICON_REFRESH_DELAY", "0s")
	t.Setenv("COMBO_CAST_BUFFER", "0s")
}

func TestRun_ExitCodes(t *testing.T) {
	examples := filepath.Join("..", "..", "examples")

	testCases := []struct {
		name string
		args []string
		want int
	}{
		{
			name: "missing script flag",
			want: 2,
		},
		{
			name: "bundled opener passes",
			args: []string{"-script", filepath.Join(examples, "opener.yaml"), "-chains", filepath.Join(examples, "chains.yaml")},
			want: 0,
		},
		{
			name: "missing chain file",
			args: []string{"-script", filepath.Join(examples, "opener.yaml"), "-chains", filepath.Join(t.TempDir(), "missing.yaml")},
			want: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			withArgs(t, tc.args...)
			assert.Equal(t, tc.want, run())
		})
	}
}
