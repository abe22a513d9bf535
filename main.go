package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ljens/makeclass/internal/analyzer"
	"github.com/ljens/makeclass/internal/config"
	"github.com/ljens/makeclass/internal/errors"
	"github.com/ljens/makeclass/internal/generator"
	"github.com/ljens/makeclass/internal/models"
	"github.com/ljens/makeclass/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Input     string  `arg:"" optional:"" help:"Path to input JSON file. If not specified, reads from stdin." type:"path"`
	ClassName *string `help:"Name of the class to be produced (default \"A\")." placeholder:"NAME"`
	Config    string  `help:"Path to config file. If not specified, searches for .makeclass.yml." short:"c" type:"path"`
	Imports   bool    `help:"Emit the import preamble above the class definition."`
	Version   bool    `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("makeclass"),
		kong.Description("Turn a JSON object into a dataclass definition"),
		kong.UsageOnError(),
	)

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("makeclass version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	// 1. Resolve configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 2. Parse JSON input
	ir, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 3. Build the class definition
	analyzerInst := analyzer.NewAnalyzerWithConfig(cfg)
	classDef, err := analyzerInst.Analyze(ir, cfg.ClassName)
	if err != nil {
		return err
	}

	// 4. Render it
	generatorInst := generator.NewGeneratorWithConfig(cfg)
	code, err := generatorInst.Generate(classDef)
	if err != nil {
		return errors.NewOutputError("failed to generate class definition", err)
	}

	// 5. Output the result
	return writeOutput(code)
}

// loadConfig resolves the effective configuration: defaults, then a
// config file if one is given or discovered, then CLI overrides.
func loadConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg := config.NewConfig()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to load config from '%s'", configPath), err)
		}
		cfg = fileCfg
	}

	// CLI values win over the config file when explicitly set. The flag is
	// a pointer so that an explicit --class-name A is distinguishable from
	// the flag being absent.
	if CLI.ClassName != nil && *CLI.ClassName != "" {
		cfg.ClassName = *CLI.ClassName
	}
	if CLI.Imports {
		cfg.Output.IncludeImports = true
	}

	return cfg, nil
}

// parseInput reads JSON from file or stdin
func parseInput() (models.IntermediateRepresentation, error) {
	if CLI.Input != "" {
		// Parse from file
		return parser.ParseFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewIOError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive and nothing was piped in
		return models.IntermediateRepresentation{}, errors.NewIOError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewIOError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return models.IntermediateRepresentation{}, errors.NewIOError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes the generated definition to stdout
func writeOutput(code string) error {
	_, err := fmt.Println(strings.TrimRight(code, "\n"))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
