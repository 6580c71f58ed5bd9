// Command lvlsearch runs one shortest-path puzzle family over an input file
// and prints both answers.
//
// Usage:
//
//	lvlsearch [-config file.yaml] [-v] <maze|ram|race|keypad|lan> <input-file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
)

var version = "dev"

// cliConfig holds the flags and positional arguments.
type cliConfig struct {
	configFile  string
	verbose     bool
	showVersion bool
	solver      string
	inputFile   string
}

// errUsage marks bad command lines; run maps it to exit code 2.
var errUsage = errors.New("usage error")

func main() {
	cli, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cli, os.Stdout, os.Stderr))
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, "lvlsearch %s\n\n", version)
	fmt.Fprintln(w, "Usage: lvlsearch [-config file.yaml] [-v] <solver> <input-file>")
	fmt.Fprintf(w, "Solvers: %s\n", strings.Join(solverNames(), ", "))
}

// parseArgs parses command-line flags and positional arguments.
func parseArgs(args []string, stderr io.Writer) (cliConfig, error) {
	var cli cliConfig

	fs := flag.NewFlagSet("lvlsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cli.configFile, "config", "", "YAML file with solver parameters")
	fs.BoolVar(&cli.verbose, "v", false, "Debug logging on stderr")
	fs.BoolVar(&cli.showVersion, "version", false, "Print version and exit")
	fs.Usage = func() { printHelp(stderr) }

	if err := fs.Parse(args); err != nil {
		return cli, err
	}
	if cli.showVersion {
		return cli, nil
	}
	if fs.NArg() != 2 {
		return cli, fmt.Errorf("%w: want <solver> <input-file>, got %d arguments", errUsage, fs.NArg())
	}
	cli.solver, cli.inputFile = fs.Arg(0), fs.Arg(1)
	if _, ok := solvers[cli.solver]; !ok {
		return cli, fmt.Errorf("%w: unknown solver %q", errUsage, cli.solver)
	}

	return cli, nil
}

// newLogger builds the stderr text logger tagged with a per-run ID.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("run", ulid.Make().String()))
}

// run executes the selected solver.
// Returns an exit code: 0 for success, 1 for failure.
func run(cli cliConfig, stdout, stderr io.Writer) int {
	if cli.showVersion {
		fmt.Fprintf(stdout, "lvlsearch %s\n", version)
		return 0
	}
	log := newLogger(stderr, cli.verbose)

	cfg, err := LoadConfig(cli.configFile)
	if err != nil {
		log.Error("config", slog.String("error", err.Error()))
		return 1
	}
	f, err := os.Open(cli.inputFile)
	if err != nil {
		log.Error("open input", slog.String("error", err.Error()))
		return 1
	}
	defer f.Close()

	log = log.With(slog.String("solver", cli.solver))
	log.Debug("solving", slog.String("input", cli.inputFile))
	ans, err := solvers[cli.solver](cfg, f, log)
	if err != nil {
		log.Error("solve", slog.String("error", err.Error()))
		return 1
	}
	fmt.Fprintf(stdout, "part1: %s\npart2: %s\n", ans.part1, ans.part2)

	return 0
}
