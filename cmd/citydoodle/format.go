package main

import (
	"fmt"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.FeatureID != "" {
				fmt.Printf("    -> %s\n", e.FeatureID)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.FeatureID != "" {
				fmt.Printf("    -> %s\n", w.FeatureID)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printModelSummary(m city.Model) {
	fmt.Println("City Summary")
	fmt.Println("------------")
	fmt.Printf("  Districts:    %d\n", len(m.Districts))
	fmt.Printf("  Roads:        %d\n", len(m.Roads))
	fmt.Printf("  POIs:         %d\n", len(m.POIs))
	fmt.Printf("  Bridges:      %d\n", len(m.Bridges))
	fmt.Printf("  Interchanges: %d\n", len(m.Interchanges))
	fmt.Printf("  Waterfront:   %d tagged roads\n", len(m.Waterfront))

	byClass := map[city.RoadClass]int{}
	for _, r := range m.Roads {
		byClass[r.Class]++
	}
	fmt.Println()
	fmt.Println("Roads by class")
	fmt.Println("--------------")
	for _, class := range []city.RoadClass{
		city.ClassHighway, city.ClassArterial, city.ClassCollector,
		city.ClassLocal, city.ClassTrail,
	} {
		if n := byClass[class]; n > 0 {
			fmt.Printf("  %-10s %d\n", class, n)
		}
	}
}
