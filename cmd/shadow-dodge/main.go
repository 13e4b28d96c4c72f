package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shadow-dodge/audio"
	"github.com/lixenwraith/shadow-dodge/config"
	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/engine"
	"github.com/lixenwraith/shadow-dodge/input"
	"github.com/lixenwraith/shadow-dodge/render"
	"github.com/lixenwraith/shadow-dodge/store"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

var (
	configFlag      = flag.String("config", "", "YAML file overriding field size and difficulty tiers")
	saveFlag        = flag.String("save", defaultSavePath(), "JSON save file for high score and tutorial progress")
	debugFlag       = flag.Bool("debug", false, "Write logs to "+filepath.Join(logDir, logFileName))
	skipLoadingFlag = flag.Bool("skip-loading", false, "Skip the loading screen")
	seedFlag        = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
)

func defaultSavePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "shadow-dodge", "save.json")
	}
	return "shadow-dodge-save.json"
}

// crash restores the terminal and prints the panic with its stack trace
func crash(screen tcell.Screen, what string, r any) {
	if screen != nil {
		screen.Fini()
	}
	// Use \r\n for raw mode compatibility
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(*saveFlag)
	if err != nil {
		// Corrupt or unreadable save: play with defaults
		log.Printf("save file: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	game, err := engine.NewGame(cfg, st, engine.NewMonotonicTimeProvider(), rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	if *skipLoadingFlag {
		game.SkipLoading()
	}

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: the terminal must be reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash(screen, "SHADOW-DODGE", r)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	field := vmath.Point{X: cfg.FieldWidth, Y: cfg.FieldHeight}
	renderer := render.NewTerminalRenderer(screen, field)
	handler := input.NewHandler(game, renderer.Viewport, constants.PlayerSize)

	log.Printf("started: seed=%d save=%s field=%.0fx%.0f", seed, *saveFlag, field.X, field.Y)
	run(screen, game, renderer, handler, sound)
}

// run is the single frame loop; every game call happens on this goroutine
func run(screen tcell.Screen, game *engine.Game, renderer *render.TerminalRenderer, handler *input.Handler, sound *audio.SoundManager) {
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, constants.EventChannelBuffer)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(screen, "EVENT POLLER", r)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch handler.HandleEvent(ev) {
			case input.ActionQuit:
				return
			case input.ActionMute:
				muted := sound.ToggleMute()
				renderer.SetMuted(muted)
				log.Printf("audio muted: %v", muted)
			case input.ActionResize:
				screen.Sync()
				renderer.Resize()
			}

		case <-frameTicker.C:
			game.Step()
			sound.HandleEvents(game.DrainEvents())
			renderer.RenderFrame(game)
		}
	}
}
