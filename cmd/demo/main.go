package main

import (
	"flag"
	"fmt"

	"cbdc-sim/internal/config"
	"cbdc-sim/internal/model"
	"cbdc-sim/internal/scenario"
	"cbdc-sim/internal/sim"
)

// Demo:
// - Build a scenario (or load a YAML config)
// - Run the simulation over the full horizon
// - Print a per-quarter table of the headline variables
func main() {
	scenarioName := flag.String("scenario", "default", "Built-in scenario name")
	cfgPath := flag.String("config", "", "Path to YAML config (overrides -scenario)")
	outCSV := flag.String("out", "", "Optional path to write history CSV (e.g. results/history.csv)")
	flag.Parse()

	var cfg *model.SimulationConfig
	var err error
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
	} else {
		cfg, err = scenario.ByName(*scenarioName)
	}
	if err != nil {
		panic(err)
	}

	engine, err := sim.New(cfg)
	if err != nil {
		panic(err)
	}
	result, err := engine.Run()
	if err != nil {
		panic(err)
	}

	fmt.Printf("Simulated %d quarters (seed %d)\n\n", result.Periods, cfg.Seed)
	fmt.Printf("%-8s %10s %9s %8s %8s %8s %10s %10s\n",
		"quarter", "gdp", "infl", "unemp", "policy", "fx", "cbdc", "deposits")

	for i, snap := range result.History {
		fmt.Printf("%-8d %10.1f %9.2f %8.2f %8.2f %8.3f %10.1f %10.1f\n",
			i,
			snap["gdp"],
			snap["inflation_rate"],
			snap["unemployment_rate"],
			snap["policy_rate"],
			snap["exchange_rate"],
			snap["cbdc_supply"],
			snap["bank_deposits"],
		)
	}

	if *outCSV != "" {
		if err := sim.WriteHistoryCSV(*outCSV, result.History); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	final := result.Final()
	fmt.Printf("\nDone. Final GDP=%.1f  Inflation=%.2f%%  Stress=%.3f\n",
		final["gdp"], final["inflation_rate"], final["financial_stress_index"])
}
