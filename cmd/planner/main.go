package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/signalsfoundry/mission-planner/core"
	"github.com/signalsfoundry/mission-planner/internal/logging"
	"github.com/signalsfoundry/mission-planner/internal/report"
	"github.com/signalsfoundry/mission-planner/kb"
	"github.com/signalsfoundry/mission-planner/model"
)

func main() {
	catalogPath := flag.String("catalog", "configs/catalog.json", "Path to the JSON vehicle and body catalog")
	vehicle := flag.String("vehicle", "", "Launch vehicle name from the catalog")
	body := flag.String("body", "", "Destination body name from the catalog")
	payload := flag.Float64("payload", 0, "Payload mass in kg")
	start := flag.String("start", "2025-01-01", "Mission start date (YYYY-MM-DD)")
	save := flag.Bool("save", false, "Save the mission summary to a timestamped file")
	markdown := flag.Bool("markdown", false, "Render the summary as Markdown instead of plain text")
	list := flag.Bool("list", false, "List catalog vehicles and destinations, then exit")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	catalog := kb.NewCatalog()
	if err := loadCatalog(catalog, *catalogPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		listCatalog(catalog)
		return
	}

	if *vehicle == "" || *body == "" {
		fmt.Fprintln(os.Stderr, "error: -vehicle and -body are required (use -list to see the catalog)")
		flag.Usage()
		os.Exit(2)
	}

	planner := core.NewMissionPlanner(catalog, log)
	result, windows, err := planner.PlanByName(ctx, *vehicle, *body, *payload, *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rep := report.New(*result, windows, time.Now().UTC())
	out := rep.RenderText()
	if *markdown {
		out = rep.RenderMarkdown()
	}
	fmt.Print(out)

	if *save {
		name := rep.Filename()
		if err := os.WriteFile(name, []byte(out), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to save summary: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nSaved mission summary to %s\n", name)
	}
}

func loadCatalog(catalog *kb.Catalog, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog %q: %w", path, err)
	}
	defer f.Close()

	if _, err := core.LoadCatalog(catalog, f); err != nil {
		return fmt.Errorf("load catalog %q: %w", path, err)
	}
	return nil
}

func listCatalog(catalog *kb.Catalog) {
	fmt.Println("Available Rockets:")
	for i, v := range catalog.ListVehicles() {
		fmt.Printf(" %d) %s\n", i+1, v.Name)
		fmt.Printf("    Wet mass:   %.0f kg | Dry mass: %.0f kg | Payload LEO: %.0f kg\n",
			v.WetMassKg, v.DryMassKg, v.PayloadLimitKg)
		fmt.Printf("    Isp_avg:    %.1f s   | Staging factor: %.2f | Tanker DV/mission: %.2f km/s\n",
			v.IspSeconds, v.StagingFactor, v.RefuelGainKmS)
	}

	fmt.Println("\nAvailable Destinations:")
	for i, b := range catalog.ListBodies() {
		fmt.Printf(" %d) %s\n", i+1, b.Name)
		fmt.Printf("    DV transfer: %.2f km/s | DV capture: %.2f km/s | Synodic: %.1f days\n",
			b.TransferDvKmS, b.CaptureDvKmS, b.SynodicPeriodDays)
		fmt.Printf("    Epoch: %s | Typical transit: %.0f days\n",
			b.Epoch.Format(model.DateLayout), b.TransitDays)
	}
}
