package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"liquidity-engine/internal/api"
	"liquidity-engine/internal/config"
	"liquidity-engine/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	apiURL := flag.String("api-url", cfg.APIURL, "Analyzer API URL")
	maxWidth := flag.Int("max-width", 0, "Max columns (0 = no limit)")
	maxHeight := flag.Int("max-height", 0, "Max rows (0 = no limit)")
	flag.Parse()

	client := api.NewClient(*apiURL)
	m := ui.NewModel(client, *apiURL, *maxWidth, *maxHeight)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
