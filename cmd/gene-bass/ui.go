package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gene-bass/audio"
	"github.com/lixenwraith/gene-bass/genetic"
	"github.com/lixenwraith/gene-bass/parameter"
	"github.com/lixenwraith/gene-bass/sequencer"
)

// ui renders the sequencer status: one column per step, with gate,
// octave and waveform lanes and a step cursor
type ui struct {
	screen tcell.Screen
	engine *genetic.Engine
	seq    *sequencer.Sequencer
	synth  *audio.Synth
}

func newUI(screen tcell.Screen, engine *genetic.Engine, seq *sequencer.Sequencer, synth *audio.Synth) *ui {
	return &ui{screen: screen, engine: engine, seq: seq, synth: synth}
}

var noteGlyphs = [parameter.NoteClasses]rune{'C', 'c', 'D', 'd', 'E', 'F', 'f', 'G', 'g', 'A', 'a', 'B'}

func (u *ui) draw() {
	s := u.screen
	s.Clear()

	stats := u.engine.Stats()
	mute := ""
	if u.synth.IsMuted() {
		mute = "  [muted]"
	}
	beat := " "
	if u.seq.BeatIndicator() {
		beat = "*"
	}

	header := fmt.Sprintf("gene-bass  %s %3d bpm  gen %d  best %d  avg %.1f%s",
		beat, u.seq.BPM(), u.engine.Generation(), stats.Best, stats.Average, mute)
	drawText(s, 0, 0, tcell.StyleDefault.Bold(true), header)

	like, dislike := u.seq.Feedback().Pending()
	pending := ""
	if like {
		pending = "  like latched"
	} else if dislike {
		pending = "  dislike latched"
	}
	drawText(s, 0, 1, tcell.StyleDefault.Dim(true),
		"l like  d dislike  +/- tempo  m mute  [/] volume  q quit"+pending)

	best := u.engine.Best()
	cursor := u.seq.Step()

	for i := 0; i < parameter.SequenceLen; i++ {
		gene := best.Genome[i]
		style := tcell.StyleDefault
		if i == cursor {
			style = style.Reverse(true)
		}

		gate := '·'
		if gene.Gate {
			gate = '█'
		}
		s.SetContent(i, 3, gate, nil, style)
		s.SetContent(i, 4, noteGlyphs[gene.Note], nil, style)
		s.SetContent(i, 5, rune('0'+gene.Octave), nil, style)
		s.SetContent(i, 6, rune('0'+int(gene.Waveform)), nil, style)
	}

	drawText(s, parameter.SequenceLen+2, 3, tcell.StyleDefault.Dim(true), "gate")
	drawText(s, parameter.SequenceLen+2, 4, tcell.StyleDefault.Dim(true), "note")
	drawText(s, parameter.SequenceLen+2, 5, tcell.StyleDefault.Dim(true), "octave")
	drawText(s, parameter.SequenceLen+2, 6, tcell.StyleDefault.Dim(true), "waveform")

	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
