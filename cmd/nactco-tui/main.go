package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/logging"
	"github.com/rgehrsitz/nactco/internal/reference"
	"github.com/rgehrsitz/nactco/internal/tui"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Println("Usage: nactco-tui [scenario-file]")
		os.Exit(1)
	}

	// The catalog override follows the CLI's environment variable
	cat, err := reference.Load(os.Getenv("NACTCO_CATALOG"))
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	scenario := config.DefaultScenario()
	if len(os.Args) == 2 {
		loaded, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		scenario = *loaded
	}

	// Only errors reach stderr while the alternate screen is active
	logger := logging.Quiet()
	defer func() { _ = logger.Sync() }()

	model := tui.NewModel(cat, scenario, logger.Sugar())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
