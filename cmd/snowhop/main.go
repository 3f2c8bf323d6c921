package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowhop/asset"
	"github.com/lixenwraith/snowhop/audio"
	"github.com/lixenwraith/snowhop/engine"
	"github.com/lixenwraith/snowhop/engine/fsm"
	"github.com/lixenwraith/snowhop/event"
	"github.com/lixenwraith/snowhop/input"
	"github.com/lixenwraith/snowhop/manifest"
	"github.com/lixenwraith/snowhop/parameter"
	"github.com/lixenwraith/snowhop/render"
	"github.com/lixenwraith/snowhop/replay"
	"github.com/lixenwraith/snowhop/spectate"
	"github.com/lixenwraith/snowhop/status"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write a debug log to logs/snowhop.log")
	levelsFlag    = flag.String("levels", "", "Level manifest (TOML), default is the built-in set")
	fsmFlag       = flag.String("fsm", "", "State machine config (TOML), default ./config/fsm.toml or built-in")
	levelFlag     = flag.Int("level", 0, "Start directly on this level (1-based), 0 opens the menu")
	recordFlag    = flag.String("record", "", "Record the session into this directory")
	replayFlag    = flag.String("replay", "", "Play back a recorded session directory")
	spectateFlag  = flag.String("spectate", "", "Serve a live spectator feed on this address, e.g. :8080")
)

// Compile-time check
var _ engine.Cues = (*audio.SoundManager)(nil)

func main() {
	var screen tcell.Screen

	// Panic recovery: restore the terminal before printing, or the trace is lost in raw mode
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNOWHOP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	levels, err := manifest.Load(*levelsFlag, asset.DefaultLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load levels: %v\n", err)
		os.Exit(1)
	}
	fsmSource, fsmConfig, err := fsm.ReadConfigAuto(*fsmFlag, asset.DefaultFSMConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load state machine: %v\n", err)
		os.Exit(1)
	}
	log.Printf("levels: %s; fsm: %s", levels, fsmSource)

	// Replay bundles must run against the data they were recorded with
	var rp *replay.Replay
	if *replayFlag != "" {
		if rp, err = replay.Open(*replayFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open replay: %v\n", err)
			os.Exit(1)
		}
		if err := rp.Check(levelsText(*levelsFlag), fsmConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	reg := status.NewRegistry()

	sounds := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	session, err := engine.NewGameSession(engine.Config{
		Levels:    levels,
		FSMConfig: fsmConfig,
		Cues:      sounds,
		Status:    reg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	a := &app{
		session: session,
		tracker: input.NewTracker(),
		clock:   engine.NewFrameClock(engine.SystemTime{}, parameter.FrameUpdateInterval, reg),
		levels:  levelInfos(levels),
		intents: make([]input.Intent, 0, 8),
	}

	if rp != nil {
		a.player = replay.NewPlayer(rp, session)
	} else {
		if *recordFlag != "" {
			rec, err := replay.NewRecorder(*recordFlag, replay.Meta{
				LevelsSource: levelsText(*levelsFlag),
				FSMSource:    fsmConfig,
				Description:  "snowhop session",
			}, nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to start recording: %v\n", err)
				os.Exit(1)
			}
			rec.Attach(session)
			a.recorder = rec
			defer func() {
				if err := rec.Close(); err != nil {
					log.Printf("recording: %v", err)
				}
			}()
		}
		if *levelFlag > 0 {
			if err := startAt(session, *levelFlag-1); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
		}
	}

	if *spectateFlag != "" {
		a.hub = spectate.NewHub(reg, nil)
		srv := spectate.NewServer(a.hub, reg, nil)
		if err := srv.Start(*spectateFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start spectator server: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
	}

	mode := render.ParseColorMode(*colorModeFlag)
	if mode == render.ColorMode256 {
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	a.renderer = render.NewTerminalRenderer(screen, mode)

	events := make(chan tcell.Event, parameter.EventChannelSize)
	// Input polling uses a raw goroutine as it talks to the terminal directly
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.run(events)
	log.Printf("exit after %d ticks, %.1f fps", session.Ticks(), a.clock.FPS())
}

// levelsText returns the manifest text for hashing; the embedded set when path is empty
func levelsText(path string) string {
	if path == "" {
		return asset.DefaultLevels
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// startAt skips the menu, going through the same triggers a player would
func startAt(s *engine.GameSession, index int) error {
	if index >= s.Levels().Len() {
		return fmt.Errorf("level %d: %w", index+1, engine.ErrNoSuchLevel)
	}
	s.Trigger(event.EventStart)
	s.SelectLevel(index)
	return nil
}
