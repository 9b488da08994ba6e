package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vectorpad/internal/config"
	"vectorpad/internal/editor"
	"vectorpad/internal/eventbus"
	"vectorpad/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	var toolName string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.StringVar(&toolName, "tool", "", "Initial tool (line, shape, pen, path)")
	flag.Parse()

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceWithPath(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if toolName != "" {
		cfg.Tools.Default = toolName
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("Loaded config from %s", configSvc.Path())

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	session, err := editor.NewSession(editor.Options{
		Tool:           cfg.DefaultTool(),
		ShapeSides:     cfg.Tools.ShapeSides,
		PrimaryColor:   cfg.PrimaryColor(),
		SecondaryColor: cfg.SecondaryColor(),
	}, bus)
	if err != nil {
		fmt.Printf("Error creating session: %v\n", err)
		os.Exit(1)
	}

	uiModel := ui.NewModel(session, cfg.PaletteColors())
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Forward editor notifications to the UI
	forward := func(e eventbus.Event) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventOperationsApplied, forward)
	bus.Subscribe(eventbus.EventHistoryChanged, forward)
	bus.Subscribe(eventbus.EventToolChanged, forward)
	bus.Subscribe(eventbus.EventColorChanged, forward)
	bus.Subscribe(eventbus.EventLayerSelected, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Run the UI
	log.Printf("Starting UI with %s tool", session.ActiveTool())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
