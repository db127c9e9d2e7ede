package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple/audio"
	"github.com/lixenwraith/ripple/core"
	"github.com/lixenwraith/ripple/engine"
	"github.com/lixenwraith/ripple/parameter"
	"github.com/lixenwraith/ripple/render"
	"github.com/lixenwraith/ripple/terminal"
)

var (
	throttleFlag      = flag.Duration("throttle", parameter.PointerThrottle, "Minimum interval between pointer samples")
	modeTTLFlag       = flag.Duration("mode-ttl", parameter.ModeTTL, "How long active mode lasts")
	thresholdFlag     = flag.Int64("threshold", parameter.ModeTriggerThreshold, "Clicks that activate the mode")
	spawnIntervalFlag = flag.Duration("spawn-interval", parameter.SpawnInterval, "Interval between target spawns")
	targetTTLFlag     = flag.Duration("target-ttl", parameter.TargetTTL, "Target lifetime")
	minDistanceFlag   = flag.Float64("min-distance", parameter.SpawnMinDistance, "Minimum distance between targets")
	muteFlag          = flag.Bool("mute", false, "Disable audio cues")
	debugFlag         = flag.Bool("debug", false, "Write debug log to logs/ripple.log")
	perfFlag          = flag.Bool("perf", false, "Show the performance HUD at start")
)

func main() {
	// Panic Recovery: restore the terminal even if the main loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := engine.DefaultConfig()
	cfg.Pointer.Throttle = *throttleFlag
	cfg.Mode.TTL = *modeTTLFlag
	cfg.Mode.Threshold = *thresholdFlag
	cfg.Spawn.Interval = *spawnIntervalFlag
	cfg.Spawn.TTL = *targetTTLFlag
	cfg.Spawn.MinDistance = *minDistanceFlag
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	host, err := terminal.NewHost(screen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetRestore(screen.Fini)
	defer host.Stop()

	// Audio is optional; the demo runs silent when no device is available
	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	} else {
		defer player.Close()
	}
	player.SetMuted(*muteFlag)
	cfg.Cues = player

	renderer := render.NewRenderer(screen, host.Translator())

	var eng *engine.Engine
	cfg.Perf.Nodes = func() int {
		n := len(renderer.Shapes())
		if eng != nil {
			n += len(eng.Targets())
		}
		return n
	}

	eng, err = engine.New(cfg, host)
	if err != nil {
		host.Stop()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer eng.Teardown()

	run(host, eng, renderer, player, *perfFlag)
}

func run(host *terminal.Host, eng *engine.Engine, renderer *render.Renderer, player *audio.Player, showHUD bool) {
	host.Start()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-host.Events():
			if key, ok := ev.(*tcell.EventKey); ok {
				switch terminal.KeyCommand(key) {
				case terminal.CmdQuit:
					return
				case terminal.CmdToggle:
					eng.Toggle()
				case terminal.CmdHUD:
					showHUD = !showHUD
				case terminal.CmdMute:
					player.SetMuted(!player.Muted())
				}
				continue
			}

			if _, ok := ev.(*tcell.EventResize); ok {
				host.Screen().Sync()
				renderer.Resize()
			}
			for _, e := range host.Translator().Translate(ev) {
				eng.Dispatch(e)
			}

		case <-frameTicker.C:
			eng.Step()
			renderer.Draw(eng, showHUD)
		}
	}
}
