package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kdenny/city-doodle-sub000/internal/render"
	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/engine"
	"github.com/kdenny/city-doodle-sub000/pkg/export"
	"github.com/kdenny/city-doodle-sub000/pkg/terrain"
	"github.com/kdenny/city-doodle-sub000/pkg/validation"
)

// buildCity loads the project, synthesizes terrain, and applies every
// placement in order through a fresh engine.
func buildCity(projectPath string) (city.Model, *validation.Report, error) {
	proj, err := config.Load(projectPath)
	if err != nil {
		return city.Model{}, nil, fmt.Errorf("loading project: %w", err)
	}
	if err := proj.Validate(); err != nil {
		return city.Model{}, nil, fmt.Errorf("invalid project: %w", err)
	}

	terr := terrain.Synthesize(proj.Terrain, proj.Seed)
	eng := engine.New(engine.Options{
		District:   config.DistrictGenerationConfig{Scale: proj.Scale},
		Bridges:    proj.Bridges,
		Waterfront: proj.Waterfront,
		Connect:    proj.Connect,
		Stitch:     proj.Stitch,
	})

	model := city.Model{Terrain: terr}
	report := validation.NewReport()
	for _, pl := range proj.Placements {
		next, rep := eng.Apply(model, pl)
		report.Merge(rep)
		model = next
	}
	return model, report, nil
}

func runGenerate(projectPath string) error {
	model, report, err := buildCity(projectPath)
	if err != nil {
		return err
	}

	output := map[string]any{
		"snapshot":   export.Build(model),
		"validation": report,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runValidate(projectPath string) error {
	model, report, err := buildCity(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)
	fmt.Println()
	printModelSummary(model)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runRender(projectPath, out string, scale float64) error {
	model, report, err := buildCity(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
	}

	if err := render.SavePNG(out, model, nil, scale); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

func runExport(projectPath, out string) error {
	model, _, err := buildCity(projectPath)
	if err != nil {
		return err
	}

	fc := export.FeatureCollection(model)
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding geojson: %w", err)
	}

	if out == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
