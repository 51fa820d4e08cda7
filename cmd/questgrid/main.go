// Command questgrid runs a mission sequence over a progressively
// revealed grid and writes the event log to a file.
//
// Usage:
//
//	questgrid <land_file> <travel_file> <mission_file> <output_file>
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/questgrid/journal"
	"github.com/katalvlaran/questgrid/mission"
	"github.com/katalvlaran/questgrid/scenario"
)

func main() {
	if len(os.Args) != 5 {
		log.Errorf("usage: %s <land_file> <travel_file> <mission_file> <output_file>", os.Args[0])
		os.Exit(1)
	}
	landFile, travelFile, missionFile, outputFile := os.Args[1], os.Args[2], os.Args[3], os.Args[4]

	g, missions, err := scenario.Load(landFile, travelFile, missionFile)
	if err != nil {
		log.Fatalln("loading scenario:", err)
	}
	log.Printf("loaded %dx%d grid, %d missions", g.Width(), g.Height(), len(missions)-1)

	sink := journal.NewWriter()
	runner, err := mission.NewRunner(g, missions, sink)
	if err != nil {
		log.Fatalln("building runner:", err)
	}

	if err = runner.Run(); err != nil {
		log.Fatalln("executing missions:", err)
	}

	if err = sink.WriteFile(outputFile); err != nil {
		log.Fatalln("writing journal:", err)
	}
	log.Printf("wrote %d events to %s", len(sink.Lines()), outputFile)
}
