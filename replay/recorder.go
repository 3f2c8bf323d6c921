package replay

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/engine"
	"github.com/lixenwraith/snowhop/event"
	"github.com/lixenwraith/snowhop/parameter"
)

// Recorder streams one session to a bundle directory
// inputs.bin.zst holds one packed snapshot byte per tick; events.jsonl.sz holds one Trigger per line
type Recorder struct {
	mu        sync.Mutex
	dir       string
	manifest  Manifest
	inputFile *os.File
	inputs    *zstd.Encoder
	eventFile *os.File
	events    *snappy.Writer
	closed    bool
	err       error // First write error, reported by Close
}

func digest(s string) string {
	if s == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// NewRecorder creates dir and opens the compressed streams
func NewRecorder(dir string, meta Meta, clock func() time.Time) (*Recorder, error) {
	if dir == "" {
		return nil, fmt.Errorf("replay directory must be provided")
	}
	if clock == nil {
		clock = time.Now
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	inputFile, err := os.Create(filepath.Join(dir, InputsFile))
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	inputs, err := zstd.NewWriter(inputFile)
	if err != nil {
		inputFile.Close()
		return nil, fmt.Errorf("replay: %w", err)
	}
	eventFile, err := os.Create(filepath.Join(dir, EventsFile))
	if err != nil {
		inputs.Close()
		inputFile.Close()
		return nil, fmt.Errorf("replay: %w", err)
	}

	r := &Recorder{
		dir: dir,
		manifest: Manifest{
			Version:     FormatVersion,
			CreatedAt:   timestamp(clock()),
			TickRate:    parameter.TicksPerSecond,
			LevelsHash:  digest(meta.LevelsSource),
			FSMHash:     digest(meta.FSMSource),
			InputsPath:  InputsFile,
			EventsPath:  EventsFile,
			Description: meta.Description,
		},
		inputFile: inputFile,
		inputs:    inputs,
		eventFile: eventFile,
		events:    snappy.NewBufferedWriter(eventFile),
	}

	// Written up front so an interrupted run still leaves a readable bundle
	if err := r.writeManifest(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// Dir returns the bundle directory
func (r *Recorder) Dir() string {
	return r.dir
}

// Attach records every queued trigger the session dispatches
func (r *Recorder) Attach(s *engine.GameSession) {
	s.OnTrigger(func(ev event.GameEvent) {
		r.RecordTrigger(s.Ticks(), ev)
	})
}

// RecordInput appends the snapshot used for the next tick
func (r *Recorder) RecordInput(in core.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.err != nil {
		return
	}
	if _, err := r.inputs.Write([]byte{in.Pack()}); err != nil {
		r.err = fmt.Errorf("replay input: %w", err)
		return
	}
	r.manifest.Ticks++
}

// RecordTrigger appends a trigger dispatched during tick
func (r *Recorder) RecordTrigger(tick uint64, ev event.GameEvent) {
	rec := Trigger{Tick: tick, Type: ev.Type.String()}
	if p, ok := ev.Payload.(*event.SelectLevelPayload); ok {
		rec.Index = p.Index
	}
	line, err := json.Marshal(rec)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.err != nil {
		return
	}
	if err != nil {
		r.err = err
		return
	}
	if _, err := r.events.Write(append(line, '\n')); err != nil {
		r.err = fmt.Errorf("replay trigger: %w", err)
		return
	}
	r.manifest.Triggers++
}

// Manifest returns the manifest as it stands
func (r *Recorder) Manifest() Manifest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.manifest
}

// Close flushes both streams, rewrites the manifest with final counts, and releases files
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.closed = true

	firstErr := r.err
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	keep(r.inputs.Close())
	keep(r.inputFile.Close())
	keep(r.events.Close())
	keep(r.eventFile.Close())
	keep(r.writeManifest())
	return firstErr
}

func (r *Recorder) writeManifest() error {
	data, err := json.MarshalIndent(r.manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(r.dir, ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("replay manifest: %w", err)
	}
	return nil
}
