package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/artemneskorodov/piano/midifile"
	"github.com/artemneskorodov/piano/player"
)

func main() {
	jsonOutput := flag.Bool("json", false, "Output decoded events as JSON")
	play := flag.Bool("play", false, "Play the file on a terminal keyboard display")
	verbose := flag.Bool("verbose", false, "Enable debug logging during playback")
	programLow := flag.Uint("program-low", 0, "Lowest program number treated as a piano")
	programHigh := flag.Uint("program-high", midifile.GMPianoProgramMax, "Highest program number treated as a piano")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file.mid>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	filename := flag.Arg(0)

	data, err := os.ReadFile(filename)
	if err != nil {
		log.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	header, err := midifile.ReadHeader(data)
	if err != nil {
		log.Printf("Error reading MIDI header: %v\n", err)
		os.Exit(1)
	}

	opts := midifile.Options{
		PianoProgramLow:  uint8(*programLow),
		PianoProgramHigh: uint8(*programHigh),
	}

	events, err := midifile.ParseWithOptions(data, opts)
	if err != nil {
		log.Printf("Error decoding MIDI file: %v\n", err)
		os.Exit(1)
	}

	if *jsonOutput {
		jsonData, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			log.Printf("Error marshaling to JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(jsonData))
		return
	}

	if *play {
		logger := zap.NewNop()
		if *verbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				log.Printf("Error creating logger: %v\n", err)
				os.Exit(1)
			}
		}
		defer logger.Sync()

		p := player.New(player.NewTerminalDisplay(os.Stdout), player.WithLogger(logger))
		p.Play(events, header.Division.Metrical())
		fmt.Println()
		return
	}

	printSummary(filename, header, events, opts)
}

func printSummary(filename string, header midifile.Header, events []midifile.Event, opts midifile.Options) {
	fmt.Printf("MIDI File: %s\n", filename)
	fmt.Printf("Format: %d\n", header.Format)
	fmt.Printf("Tracks: %d\n", header.TrackCount)
	fmt.Printf("Time division: %s\n", header.Division)
	fmt.Printf("Piano programs: %d (%s) to %d (%s)\n",
		opts.PianoProgramLow, midifile.GMProgramName(opts.PianoProgramLow),
		opts.PianoProgramHigh, midifile.GMProgramName(opts.PianoProgramHigh))
	fmt.Println()

	var noteOns, noteOffs, tempoChanges int
	var lowNote, highNote uint8
	var totalMillis float64

	for _, ev := range events {
		totalMillis += ev.DeltaMillis

		switch ev.Type {
		case midifile.NoteOn:
			if noteOns == 0 || ev.Note < lowNote {
				lowNote = ev.Note
			}
			if noteOns == 0 || ev.Note > highNote {
				highNote = ev.Note
			}
			noteOns++
		case midifile.NoteOff:
			noteOffs++
		case midifile.TempoChange:
			tempoChanges++
		}
	}

	fmt.Printf("Events: %d\n", len(events))
	fmt.Printf("  Note on: %d\n", noteOns)
	fmt.Printf("  Note off: %d\n", noteOffs)
	fmt.Printf("  Tempo changes: %d\n", tempoChanges)
	if noteOns > 0 {
		fmt.Printf("Note range: %d - %d\n", lowNote, highNote)
	}
	fmt.Printf("Duration: %.2f seconds (before tempo scaling)\n", totalMillis/1000)
}
