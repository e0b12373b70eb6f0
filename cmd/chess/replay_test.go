package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const replayScripts = `# two games
F2-F3, E7-E5, G2-G4, D8-H4
E2-E4 E7-E5

E2-E5
`

func replayConfig(t *testing.T, file string) (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithReplay(file, 2).
		WithOutput(&out).
		WithLog(&log).
		Build()
	return cfg, &out, &log
}

func TestRunReplayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.txt")
	if err := os.WriteFile(path, []byte(replayScripts), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, out, _ := replayConfig(t, path)

	stats, err := runReplay(context.Background(), cfg, nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.Scripts, 3)
	testutil.AssertEqual(t, stats.Checkmates, 1)
	testutil.AssertEqual(t, stats.Failed, 1)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, len(lines), 3)
	testutil.AssertEqual(t, lines[0], "line 2: 4 plies, checkmate, Black wins")
	testutil.AssertEqual(t, lines[1], "line 3: 2 plies, in progress")
	testutil.AssertContains(t, lines[2], "line 5: 0 plies, error:")
}

func TestRunReplayStdin(t *testing.T) {
	cfg, out, _ := replayConfig(t, "-")
	stats, err := runReplay(context.Background(), cfg, strings.NewReader("E2-E4\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.Scripts, 1)
	testutil.AssertEqual(t, out.String(), "line 1: 1 plies, in progress\n")
}

func TestRunReplayMissingFile(t *testing.T) {
	cfg, _, _ := replayConfig(t, filepath.Join(t.TempDir(), "missing.txt"))
	_, err := runReplay(context.Background(), cfg, nil)
	testutil.AssertError(t, err)
}

func TestRunReplayReportsFailures(t *testing.T) {
	cfg, _, log := replayConfig(t, "-")
	err := run(cfg, strings.NewReader("E2-E4\nE2-E5\n"))
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "1 of 2 scripts failed")
	testutil.AssertContains(t, log.String(), "2 scripts replayed")
}

func TestRunReplayJSON(t *testing.T) {
	cfg, out, _ := replayConfig(t, "-")
	cfg.Output.JSONFormat = true
	_, err := runReplay(context.Background(), cfg, strings.NewReader(strings.Join([]string{"F2-F3", "E7-E5", "G2-G4", "D8-H4"}, ",")+"\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), `"finished": true`)
	testutil.AssertContains(t, out.String(), `"winner": "black"`)
}

func TestRunReplayCountsDuplicates(t *testing.T) {
	cfg, _, _ := replayConfig(t, "-")
	scripts := "E2-E4 E7-E5 G1-F3\nG1-F3 E7-E5 E2-E4\nD2-D4\n"
	stats, err := runReplay(context.Background(), cfg, strings.NewReader(scripts))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.Scripts, 3)
	testutil.AssertEqual(t, stats.Duplicates, 1)
}
