package replay

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/snowhop/asset"
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/engine"
	"github.com/lixenwraith/snowhop/event"
	"github.com/lixenwraith/snowhop/manifest"
)

func newSession(t *testing.T) *engine.GameSession {
	t.Helper()
	levels, err := manifest.Load("", asset.DefaultLevels)
	if err != nil {
		t.Fatal(err)
	}
	s, err := engine.NewGameSession(engine.Config{Levels: levels, FSMConfig: asset.DefaultFSMConfig})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// scriptedInput walks right in bursts and jumps every so often
func scriptedInput(tick int) core.Snapshot {
	return core.Snapshot{
		MoveRight:    tick%90 < 60,
		MoveLeft:     tick%90 >= 75,
		JumpHeld:     tick%45 < 12,
		PauseToggled: tick == 200 || tick == 230,
	}
}

func record(t *testing.T, dir string, ticks int) (engine.Frame, Manifest) {
	t.Helper()
	s := newSession(t)
	clock := func() time.Time { return time.Date(2025, 12, 24, 20, 0, 0, 0, time.UTC) }
	rec, err := NewRecorder(dir, Meta{LevelsSource: asset.DefaultLevels, FSMSource: asset.DefaultFSMConfig}, clock)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	rec.Attach(s)

	s.Trigger(event.EventStart)
	s.SelectLevel(1)
	for i := 0; i < ticks; i++ {
		if i == 400 {
			s.Trigger(event.EventRestart) // ignored while playing
		}
		in := scriptedInput(i)
		rec.RecordInput(in)
		s.Tick(in)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return s.Frame(), rec.Manifest()
}

func TestRecordAndReplayDeterministic(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	want, m := record(t, dir, 600)

	if m.Ticks != 600 || m.Triggers != 3 {
		t.Fatalf("manifest counts ticks=%d triggers=%d", m.Ticks, m.Triggers)
	}

	rp, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(rp.Inputs) != 600 || len(rp.Triggers) != 3 {
		t.Fatalf("loaded %d inputs %d triggers", len(rp.Inputs), len(rp.Triggers))
	}
	if rp.Triggers[1].Type != "EventSelectLevel" || rp.Triggers[1].Index != 1 || rp.Triggers[1].Tick != 1 {
		t.Fatalf("select trigger %+v", rp.Triggers[1])
	}
	if rp.Manifest.LevelsHash == "" || rp.Manifest.CreatedAt != "2025-12-24T20:00:00Z" {
		t.Fatalf("manifest %+v", rp.Manifest)
	}
	for i, in := range rp.Inputs {
		if in != scriptedInput(i) {
			t.Fatalf("input %d = %+v", i, in)
		}
	}

	s := newSession(t)
	p := NewPlayer(rp, s)
	steps := 0
	if err := p.Run(func(uint64) { steps++ }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 600 || !p.Done() {
		t.Fatalf("replayed %d ticks", steps)
	}

	got := s.Frame()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("replayed frame differs\n got %+v\nwant %+v", got, want)
	}
	t.Logf("✓ 600 ticks replayed to state %s, player %+v", got.Name, got.Player.Box)
}

func TestOpenAcceptsManifestPath(t *testing.T) {
	dir := t.TempDir()
	record(t, dir, 10)
	if _, err := Open(filepath.Join(dir, ManifestFile)); err != nil {
		t.Fatal(err)
	}
}

func TestOpenRejectsVersion(t *testing.T) {
	dir := t.TempDir()
	record(t, dir, 1)
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte(`{"version":9}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(dir); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v", err)
	}
}

func TestUnknownTriggerStopsPlayback(t *testing.T) {
	rp := &Replay{
		Inputs:   make([]core.Snapshot, 3),
		Triggers: []Trigger{{Tick: 2, Type: "EventTeleport"}},
	}
	p := NewPlayer(rp, newSession(t))
	err := p.Run(nil)
	if !errors.Is(err, ErrUnknownTrigger) {
		t.Fatalf("err = %v", err)
	}
	if p.Tick() != 1 {
		t.Fatalf("stopped after %d ticks", p.Tick())
	}
}

func TestCloseTwice(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), Meta{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); !errors.Is(err, ErrClosed) {
		t.Fatalf("second close: %v", err)
	}
	rec.RecordInput(core.Snapshot{}) // no-op after close
	if rec.Manifest().Ticks != 0 {
		t.Fatal("input recorded after close")
	}
}

func TestCheckDigests(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	record(t, dir, 10)
	rp, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := rp.Check(asset.DefaultLevels, asset.DefaultFSMConfig); err != nil {
		t.Errorf("matching data rejected: %v", err)
	}
	err = rp.Check(asset.DefaultLevels+"\n# edited\n", asset.DefaultFSMConfig)
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("edited levels: err = %v, want ErrMismatch", err)
	}
	t.Logf("✓ mismatch reported: %v", err)

	rp.Manifest.LevelsHash = ""
	if err := rp.Check("anything", asset.DefaultFSMConfig); err != nil {
		t.Errorf("empty digest compared: %v", err)
	}
}
