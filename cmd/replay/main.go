package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rferris/geneline/go-engine/internal/replay"
)

// #region main
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: replay <fixture.json>")
	}

	fixture, err := replay.LoadFixture(os.Args[1])
	if err != nil {
		log.Fatalf("failed to load fixture: %v", err)
	}

	out, err := replay.Replay(fixture)
	if err != nil {
		log.Fatalf("replay failed: %v", err)
	}

	if fixture.Description != "" {
		fmt.Printf("%s\n\n", fixture.Description)
	}
	for i, r := range out.Results {
		fmt.Printf("[%d] %s %s -> %s", i, r.Kind, r.Name, r.Action)
		if r.Child != "" {
			fmt.Printf(" (%s, fitness %d)", r.Child, r.ChildScore)
		}
		fmt.Println()
	}

	s := out.Summary
	fmt.Printf("\n%d steps: %d accepted, %d invalid, %d fitness-rejected, %d not found\n",
		s.Steps, s.Accepts, s.InvalidRejects, s.FitnessRejects, s.NotFound)

	if len(fixture.Expected) > 0 {
		mismatches := replay.Verify(fixture, out.Results)
		if len(mismatches) == 0 {
			fmt.Println("all expectations met")
			return
		}
		for _, m := range mismatches {
			fmt.Println(m)
		}
		os.Exit(1)
	}
}

// #endregion main
