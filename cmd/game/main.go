package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/homerun/internal/commentary"
	"github.com/tatianab/homerun/internal/config"
	"github.com/tatianab/homerun/internal/questions"
	"github.com/tatianab/homerun/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	f, err := tea.LogToFile(cfg.LogFile, "homerun")
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	bank, err := questions.Load(cfg.BankPath)
	if err != nil {
		fmt.Printf("Error loading question bank: %v\n", err)
		os.Exit(1)
	}
	log.Printf("loaded %q: %v", bank.Title, bank.CountByType())

	catalog, err := commentary.NewCatalog(cfg.Locale)
	if err != nil {
		fmt.Printf("Error loading commentary: %v\n", err)
		os.Exit(1)
	}

	var announcer commentary.Announcer = catalog
	if cfg.UseGemini() {
		gemini, err := commentary.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, catalog)
		if err != nil {
			fmt.Printf("Error creating Gemini announcer: %v\n", err)
			os.Exit(1)
		}
		defer gemini.Close()
		announcer = commentary.Fallback{Primary: gemini, Secondary: catalog}
	}

	opts := tui.Options{Config: cfg, Bank: bank, Catalog: catalog, Announcer: announcer}
	if err := tui.Run(opts); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
