package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"tomo/internal/app"
	"tomo/internal/config"
	"tomo/internal/event"
	"tomo/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea, so logs go to a file or nowhere
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tomo")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("Session %s started (tick rate %s)", uuid.NewString(), cfg.TickRate)

	keys := event.NewKeyQueue()
	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(ui.NewModel(keys), opts...)

	done := make(chan error, 1)
	go func() {
		_, err := program.Run()
		keys.Close(err)
		done <- err
	}()

	a := newApp(cfg)
	renderer := ui.NewRenderer(program)
	loopErr := app.Run(a, event.NewSource(keys, cfg.TickRate), renderer)
	renderer.Close()
	termErr := <-done

	if errors.Is(loopErr, event.ErrInputClosed) {
		loopErr = nil
	}
	if loopErr != nil {
		log.Printf("Stopped with error: %v", loopErr)
		return loopErr
	}
	if termErr != nil {
		log.Printf("Terminal error: %v", termErr)
		return termErr
	}
	log.Printf("Session ended")
	return nil
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("tomo", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML or TOML config file (default ~/.config/tomo/config.yaml)")
	tickRate := fs.Duration("tick", 0, "time between ticks")
	name := fs.String("name", "", "skip the naming screen and use this name")
	logFile := fs.String("log", "", "write debug logs to this file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	path := *configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if *tickRate != 0 {
		cfg.TickRate = *tickRate
	}
	if *name != "" {
		cfg.Pet.Name = *name
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp(cfg *config.Config) *app.App {
	opts := []app.Option{app.WithFeedbackTTL(cfg.FeedbackTTL)}
	if cfg.Pet.Name != "" {
		return app.NewRunning(cfg.Pet.Name, opts...)
	}
	return app.New(opts...)
}
