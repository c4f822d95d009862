package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/attohq/attoval/cmd/attoview/logger"
	"github.com/attohq/attoval/value"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false

	filtered := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filtered = append(filtered, arg)
		}
	}

	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filtered) >= 1 && (filtered[0] == "--help" || filtered[0] == "-h") {
		printHelp()
		os.Exit(0)
	}

	if len(filtered) >= 1 && (filtered[0] == "--version" || filtered[0] == "-v") {
		fmt.Printf("attoview %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	sourcePath := "<stdin>"
	var raw []byte
	var err error
	if len(filtered) >= 1 {
		sourcePath = filtered[0]
		raw, err = os.ReadFile(sourcePath)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		logger.Error("failed to read input", "source", sourcePath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := value.ParseJSON(value.NewStringFromBytes(raw))
	if root.Kind() != value.KindList && root.Kind() != value.KindMap {
		fmt.Fprintln(os.Stderr, "Error: top-level value must be a JSON array or object")
		os.Exit(1)
	}

	logger.Info("starting attoview", "source", sourcePath, "debug", debugMode)

	m := NewModel(sourcePath, root)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("attoview exited normally")
}

func printHelp() {
	fmt.Println("attoview - Interactive browser for attoval JSON values")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  attoview [options] [file.json]")
	fmt.Println()
	fmt.Println("  Reads a JSON array or object from the given file, or from stdin")
	fmt.Println("  when no file is given, and opens it for interactive browsing.")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Move the cursor")
	fmt.Println("    →/l, Enter  Descend into a List/Map/Set")
	fmt.Println("    ←/h, Esc    Go to parent container")
	fmt.Println("    y           Copy the selected value to the clipboard")
	fmt.Println("    d           Delete the selected node (with confirmation)")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.attoview/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'attoctl' command instead.")
}
