package main

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/plus3/tileswap/ecs"
	"github.com/plus3/tileswap/game"
	"github.com/plus3/tileswap/puzzle"
)

// Report describes a headless scramble.
type Report struct {
	Seed       uint64
	Iterations int32
	Scramble   []puzzle.Coord
	Flips      []puzzle.Coord

	Board string
	Black int
	Cells int

	Log     game.FlipLog
	Storage ecs.StorageStats
	Systems []ecs.SystemStats
}

func newReport(world *game.World, seed uint64, flips []puzzle.Coord) *Report {
	grid := world.Snapshot()
	log := world.FlipLog()
	return &Report{
		Seed:       seed,
		Iterations: world.Settings().Iterations,
		Scramble:   log.LastScramble,
		Flips:      flips,
		Board:      grid.String(),
		Black:      grid.Count(puzzle.Black),
		Cells:      puzzle.Cells,
		Log:        log,
		Storage:    world.Storage.CollectStats(),
		Systems:    world.Scheduler.GetStats().Systems,
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `# tileswap scramble

## Setup
- Seed: {{.Seed}}
- Iterations: {{.Iterations}}
- Scramble: {{coords .Scramble}}
- Extra flips: {{coords .Flips}}

## Board (layers y=2..0, rows z, columns x)
{{.Board}}
- Black cubes: {{.Black}} / {{.Cells}}{{if eq .Black 0}} (all white){{end}}
- Flips: {{.Log.Flips}} ({{.Log.CellsToggled}} cubes toggled)

## Storage
- Entities: {{.Storage.TotalEntityCount}}
- Archetypes: {{.Storage.ArchetypeCount}}
{{- range .Storage.ArchetypeBreakdown}}
  - {{join .ComponentTypes}}: {{.EntityCount}}
{{- end}}
- Singletons: {{join .Storage.SingletonTypes}}

## Systems
{{- range .Systems}}
- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}
{{- end}}
`

	fm := template.FuncMap{
		"coords": func(cs []puzzle.Coord) string {
			if len(cs) == 0 {
				return "none"
			}
			parts := make([]string, len(cs))
			for i, c := range cs {
				parts[i] = c.String()
			}
			return strings.Join(parts, " ")
		},
		"join": func(names []string) string {
			return strings.Join(names, ", ")
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	return tmpl.Execute(w, r)
}
