package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/adaptune/temper/solver"
	"github.com/adaptune/temper/tuning"
	"github.com/adaptune/temper/util"
	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(middlewareCmd)
}

var middlewareCmd = &cobra.Command{
	Use:   "middleware <config.json>",
	Short: "Runs the live MIDI retuning middleware",
	Long:  `Listens on a MIDI in port and forwards retuned notes with pitch bends. CC 20/21/22 morph the octave-weighting axes.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		startMiddleware(args[0])
	},
}

func startMiddleware(configPath string) {
	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI in port")
		return
	}
	out, err := midi.OutPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI out port")
		return
	}
	send, err := midi.SendTo(out)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	input := loadInput(configPath)
	input.OctaWeighting.Enabled = true

	// the debounced re-solve fires on a timer goroutine while the listen
	// callback keeps reading the table
	var mu sync.Mutex
	var table [128]float64
	resolve := func() {
		mu.Lock()
		defer mu.Unlock()
		res, err := solver.Run(input)
		if err != nil {
			fmt.Printf("Solve failed: %v\n", err)
			return
		}
		table = tuning.Table(res.NotesCents, input.CycleCents, input.BaseMidiNote)
		fmt.Printf("re-solved: generator %.4f cents (x=%.2f y=%.2f z=%.2f)\n",
			res.GeneratorCents, input.OctaWeighting.X, input.OctaWeighting.Y, input.OctaWeighting.Z)
	}
	resolve()

	// rapid CC turns would re-solve hundreds of times a second; the solver
	// contract leaves debouncing to the caller
	debounced := debounce.New(100 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel, cc, val uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			deviation := table[key]
			mu.Unlock()
			bend := tuning.PitchBend(deviation, tuning.DefaultPitchBendRange)
			send(midi.Pitchbend(ch, int16(bend-8192)))
			send(midi.NoteOn(ch, key, vel))
		case msg.GetNoteEnd(&ch, &key):
			send(midi.NoteOff(ch, key))
		case msg.GetControlChange(&ch, &cc, &val):
			axis := util.Clamp(float64(val)/127, 0, 1)
			mu.Lock()
			switch cc {
			case 20:
				input.OctaWeighting.X = axis
			case 21:
				input.OctaWeighting.Y = axis
			case 22:
				input.OctaWeighting.Z = axis
			default:
				mu.Unlock()
				return
			}
			mu.Unlock()
			debounced(resolve)
		default:
			// ignore
		}
	}, midi.UseSysEx())

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
