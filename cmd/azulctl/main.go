package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/azulpractice/engine/pkg/evaluator"
	"github.com/azulpractice/engine/pkg/export"
	"github.com/azulpractice/engine/pkg/generator"
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/rules"
)

const version = "1.0.0"

// CLI flags
var (
	configPath  = flag.String("config", "", "Path to YAML configuration file (optional; defaults are used if omitted)")
	outputDir   = flag.String("output", ".", "Output directory for generated files")
	format      = flag.String("format", "json", "Export format: json, svg, or all")
	seedFlag    = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	targetStage = flag.String("target-stage", "MID", "Target game stage to generate: EARLY, MID, or LATE")
	evaluate    = flag.Bool("evaluate", false, "Run Monte Carlo evaluation on the generated scenario and print the best move")
	verbose     = flag.Bool("verbose", false, "Enable verbose output")
	versionF    = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	// Invariant rechecks are for test and development builds; a release
	// CLI run trusts pkg/rules' own validation and skips the extra pass.
	rules.Debug = false

	if *versionF {
		fmt.Printf("azulctl version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", *format)
		os.Exit(1)
	}

	stage := model.GameStage(*targetStage)
	switch stage {
	case model.GameEarly, model.GameMid, model.GameLate:
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid target-stage %q, must be one of: EARLY, MID, LATE\n", *targetStage)
		os.Exit(1)
	}

	if err := run(stage); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// nolint:gocyclo // Complexity acceptable: CLI argument handling and output formatting
func run(stage model.GameStage) error {
	cfg := model.DefaultConfig()
	if *configPath != "" {
		if *verbose {
			fmt.Printf("Loading configuration from %s\n", *configPath)
		}
		loaded, err := model.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", cfg.Seed)
		fmt.Printf("Target stage: %s\n", stage)
		fmt.Printf("Policy mix: %s\n", cfg.PolicyMix.Kind)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	params := generator.Params{
		TargetGameStage: stage,
		Seed:            cfg.Seed,
		PolicyMix:       cfg.PolicyMix,
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Generating scenario...")
	}

	state, err := generator.GenerateScenarioWithFilters(params, cfg.Filters, 500)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Generation completed in %v\n", elapsed)
		printStats(state)
	}

	baseName := fmt.Sprintf("scenario_%d", cfg.Seed)

	if *format == "json" || *format == "all" {
		if err := exportJSON(state, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(state, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully generated scenario (seed=%d) in %v\n", cfg.Seed, elapsed)

	if *evaluate {
		if err := printBestMove(state, cfg); err != nil {
			return fmt.Errorf("evaluation failed: %w", err)
		}
	}

	return nil
}

func exportJSON(state model.State, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	if err := export.SaveJSONToFile(state, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func exportSVG(state model.State, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Scenario (round %d)", state.RoundNumber)
	if err := export.SaveSVGToFile(state, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func printStats(state model.State) {
	fmt.Println("\nScenario statistics:")
	fmt.Printf("  Round: %d\n", state.RoundNumber)
	fmt.Printf("  Draft phase: %s\n", state.DraftPhase)
	if state.ScenarioStage != nil {
		fmt.Printf("  Game stage: %s\n", *state.ScenarioStage)
	}
	fmt.Printf("  Active player: %d\n", state.ActivePlayer)
	for seat, p := range state.Players {
		fmt.Printf("  Player %d score: %d\n", seat, p.Score)
	}
}

func printBestMove(state model.State, cfg model.Config) error {
	params := evaluator.ParamsFromDefaults(cfg.Evaluator, cfg.Seed)
	result, err := evaluator.EvaluateBestMove(state, state.ActivePlayer, params)
	if err != nil {
		return err
	}
	fmt.Printf("\nBest move for player %d (EV %.2f):\n", state.ActivePlayer, result.BestEV)
	fmt.Printf("  %+v\n", result.BestAction)
	fmt.Printf("  Evaluated %d/%d legal actions, %d rollouts, %dms elapsed\n",
		result.Metadata.CandidatesEvaluated, result.Metadata.TotalLegalActions,
		result.Metadata.RolloutsRun, result.Metadata.ElapsedMs)
	return nil
}

func printHelp() {
	fmt.Printf("azulctl version %s\n\n", version)
	fmt.Println("A command-line tool for generating Azul practice scenarios.")
	fmt.Println("\nUsage:")
	fmt.Println("  azulctl [options]")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file (defaults are used if omitted)")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, or all (default: json)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed) (default: 0)")
	fmt.Println("  -target-stage string")
	fmt.Println("        Target game stage: EARLY, MID, or LATE (default: MID)")
	fmt.Println("  -evaluate")
	fmt.Println("        Run Monte Carlo evaluation and print the best move for the generated scenario")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Generate a mid-game scenario with default JSON export")
	fmt.Println("  azulctl -target-stage MID")
	fmt.Println("\n  # Generate with a custom seed, both export formats, and an evaluated best move")
	fmt.Println("  azulctl -seed 12345 -format all -evaluate -output ./out")
}
