package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/site"
	"github.com/olivier-w/folio/internal/ui"
	"github.com/olivier-w/folio/internal/web"
)

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("folio", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultPath(), "path to the config file")
	writeConfig := fs.Bool("write-config", false, "write the effective settings to the config file and exit")
	serve := fs.Bool("serve", false, "serve the page over HTTP instead of opening the terminal UI")
	addr := fs.String("addr", "", "listen address for -serve")
	reducedMotion := fs.Bool("reduced-motion", false, "jump between sections instead of animating")
	theme := fs.String("theme", "", "colour theme: dark or light")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: folio [flags] [document]\n\n")
		fmt.Fprintf(fs.Output(), "document is a %s file; without one a browser lists the current directory.\n\n", site.SupportedExtsList())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}
	if *reducedMotion {
		cfg.ReducedMotion = true
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if fs.NArg() > 0 {
		cfg.Content = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *writeConfig {
		if err := config.SaveToPath(cfg, *configPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *configPath)
		return nil
	}

	closeLog := setupLogging(cfg.LogFile)
	defer closeLog()
	log.Printf("config loaded from %s", *configPath)

	if *serve {
		return runServer(cfg)
	}
	return runTUI(cfg)
}

// setupLogging sends the standard logger to path. The terminal belongs to the UI,
// so without a log file output is discarded.
func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { logFile.Close() }
}

func runTUI(cfg *config.Config) error {
	var model tea.Model
	if cfg.Content != "" {
		m, err := buildSiteModel(selection{path: cfg.Content}, cfg)
		if err != nil {
			return err
		}
		model = m
	} else {
		model = newStartupModel(cfg)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := program.Run()
	if m, ok := final.(ui.Model); ok {
		m.Stop()
	}
	return err
}

func runServer(cfg *config.Config) error {
	sel := selection{path: cfg.Content, sample: cfg.Content == ""}
	s, name, err := loadSelection(sel)
	if err != nil {
		return err
	}
	router, err := web.NewRouter(s, web.Options{
		AssetBase:     cfg.AssetBase,
		StaticDir:     staticDir(),
		ReducedMotion: cfg.ReducedMotion,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: router}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serving %s on %s", name, cfg.Addr)
		fmt.Fprintf(os.Stderr, "serving %s on %s\n", name, cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// staticDir is ./static when it exists.
func staticDir() string {
	if info, err := os.Stat("static"); err == nil && info.IsDir() {
		return "static"
	}
	return ""
}
