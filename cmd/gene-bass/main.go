package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gene-bass/audio"
	"github.com/lixenwraith/gene-bass/genetic"
	"github.com/lixenwraith/gene-bass/input"
	"github.com/lixenwraith/gene-bass/parameter"
	"github.com/lixenwraith/gene-bass/sequencer"
)

var (
	debugFlag = flag.Bool("debug", false, "enable debug logging to file")
	seedFlag  = flag.Uint64("seed", 0, "random seed (0 = nondeterministic)")
	bpmFlag   = flag.Int("bpm", parameter.DefaultBPM, "initial tempo")
	muteFlag  = flag.Bool("mute", false, "start muted")
)

// tempoNudge is the control shift per tempo keypress (~5 BPM)
const tempoNudge = 0.02

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ngene-bass crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	config := genetic.DefaultConfig()
	config.Seed = *seedFlag
	engine := genetic.NewEngine(genetic.DefaultProgression, &genetic.JazzTable, config)

	synth := audio.NewSynth()
	if *muteFlag {
		synth.ToggleMute()
	}

	player := audio.NewPlayer(synth)
	if err := player.Initialize(); err != nil {
		// Silent mode: keep sequencing without a speaker
		log.Printf("audio unavailable, running silent: %v", err)
	}
	defer player.Cleanup()

	seq := sequencer.New(engine, synth)
	control := input.NewControl(sequencer.ControlForBPM(*bpmFlag))

	quit := make(chan struct{})
	go pollInput(screen, seq.Feedback(), control, synth, quit)

	ui := newUI(screen, engine, seq, synth)
	driver := sequencer.NewDriver(seq, control)
	driver.OnTick(ui.draw)
	driver.Run(quit)
}

// pollInput translates key events into feedback latches and control
// changes. It is the single writer of the latched flags.
func pollInput(screen tcell.Screen, feedback *sequencer.Feedback, control *input.Control, synth *audio.Synth, quit chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch tev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch input.MapKey(tev) {
			case input.ActionQuit:
				close(quit)
				return
			case input.ActionLike:
				feedback.Like()
			case input.ActionDislike:
				feedback.Dislike()
			case input.ActionTempoUp:
				control.Nudge(tempoNudge)
			case input.ActionTempoDown:
				control.Nudge(-tempoNudge)
			case input.ActionToggleMute:
				synth.ToggleMute()
			case input.ActionVolumeUp:
				synth.AdjustVolume(parameter.VolumeIncrement)
			case input.ActionVolumeDown:
				synth.AdjustVolume(-parameter.VolumeIncrement)
			}
		}
	}
}
