package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/lixenwraith/snowhop/core"
)

// Replay is a fully loaded bundle
type Replay struct {
	Manifest Manifest
	Inputs   []core.Snapshot // Inputs[i] drives tick i+1
	Triggers []Trigger       // Ordered by Tick
}

// Open loads a bundle from its directory or manifest path
func Open(path string) (*Replay, error) {
	manifestPath := path
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	if info.IsDir() {
		manifestPath = filepath.Join(path, ManifestFile)
	}
	dir := filepath.Dir(manifestPath)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("replay manifest: %w", err)
	}
	if m.Version != FormatVersion {
		return nil, fmt.Errorf("replay: %w %d", ErrUnsupportedVersion, m.Version)
	}

	inputs, err := loadInputs(filepath.Join(dir, m.InputsPath))
	if err != nil {
		return nil, err
	}
	triggers, err := loadTriggers(filepath.Join(dir, m.EventsPath))
	if err != nil {
		return nil, err
	}

	return &Replay{Manifest: m, Inputs: inputs, Triggers: triggers}, nil
}

// Check compares the bundle's digests against the level and FSM text about to be used
// Empty digests (older bundles, unknown sources) are not compared
func (rp *Replay) Check(levels, fsmConfig string) error {
	var stale []string
	if h := rp.Manifest.LevelsHash; h != "" && h != digest(levels) {
		stale = append(stale, "levels")
	}
	if h := rp.Manifest.FSMHash; h != "" && h != digest(fsmConfig) {
		stale = append(stale, "fsm")
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", ErrMismatch, strings.Join(stale, ", "))
	}
	return nil
}

func loadInputs(path string) ([]core.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay inputs: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("replay inputs: %w", err)
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("replay inputs: %w", err)
	}
	out := make([]core.Snapshot, len(raw))
	for i, b := range raw {
		out[i] = core.UnpackSnapshot(b)
	}
	return out, nil
}

func loadTriggers(path string) ([]Trigger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay triggers: %w", err)
	}
	defer f.Close()

	var out []Trigger
	sc := bufio.NewScanner(snappy.NewReader(f))
	for line := 1; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var tr Trigger
		if err := json.Unmarshal(sc.Bytes(), &tr); err != nil {
			return nil, fmt.Errorf("replay triggers line %d: %w", line, err)
		}
		if n := len(out); n > 0 && tr.Tick < out[n-1].Tick {
			return nil, fmt.Errorf("replay triggers line %d: tick %d before %d", line, tr.Tick, out[n-1].Tick)
		}
		out = append(out, tr)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay triggers: %w", err)
	}
	return out, nil
}
