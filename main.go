package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/andareed/peekview/config"
	"github.com/andareed/peekview/logging"
	"github.com/andareed/peekview/overlay"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	flag "github.com/spf13/pflag"
)

var Version = "dev"

func main() {
	var (
		logFile     string
		configPath  string
		versionFlag bool
		showHelp    bool
	)
	flag.StringVar(&logFile, "debug", "", "Write Debug Logs to file")
	flag.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/peek/config.yaml)")
	flag.BoolVar(&versionFlag, "version", false, "print version and exit")
	flag.BoolVarP(&showHelp, "help", "h", false, "show this help")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: peek [flags] [document]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// --- EARLY EXIT ---
	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("peek: Started")

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	applyColorProfile(cfg.ColorProfile)

	theme, err := overlay.DefaultTheme().WithShade(cfg.ShadeColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: shade_color %q: %v\n", cfg.ShadeColor, err)
		os.Exit(1)
	}

	var path string
	if args := flag.Args(); len(args) > 0 {
		path = args[0]
	}

	m, err := newModel(context.Background(), cfg, theme, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// applyColorProfile forces the lipgloss renderer onto a fixed profile. "auto"
// keeps whatever termenv detected for the terminal.
func applyColorProfile(name string) {
	switch strings.ToLower(name) {
	case "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "ansi256":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "ansi":
		lipgloss.SetColorProfile(termenv.ANSI)
	case "ascii":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	logging.Debugf("colour profile %s (%v)", name, lipgloss.ColorProfile())
}
