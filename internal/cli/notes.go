package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/patchwire/patchwire/pkg/audio"
)

// newNoteCmd creates the note command for converting between MIDI note
// numbers and frequencies in equal temperament (A4 = 440 Hz).
func newNoteCmd() *cobra.Command {
	var hertz bool

	cmd := &cobra.Command{
		Use:   "note [value]",
		Short: "Convert between MIDI note numbers and frequencies",
		Long: `Note converts a MIDI note number to its frequency in Hertz, using twelve
tone equal temperament tuned to A4 = 440 Hz (note 69).

With --hertz the argument is read as a frequency instead, and the nearest
MIDI note number is printed.`,
		Example: `  patchwire note 69
  patchwire note --hertz 440`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hertz {
				return runHertzToNote(args[0])
			}
			return runNoteToHertz(args[0])
		},
	}

	cmd.Flags().BoolVar(&hertz, "hertz", false, "treat the argument as a frequency in Hz")

	return cmd
}

func runNoteToHertz(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid note number: %q", arg)
	}

	freq := audio.NoteToHertz(audio.NoteNumber(n))
	printKeyValue("note", strconv.Itoa(n))
	printKeyValue("frequency", fmt.Sprintf("%g Hz", float64(freq)))
	return nil
}

func runHertzToNote(arg string) error {
	h, err := strconv.ParseFloat(arg, 64)
	if err != nil || h <= 0 {
		return fmt.Errorf("invalid frequency: %q", arg)
	}

	n := audio.HertzToNote(audio.Hertz(h))
	printKeyValue("frequency", fmt.Sprintf("%g Hz", h))
	printKeyValue("note", strconv.Itoa(int(n)))
	return nil
}
