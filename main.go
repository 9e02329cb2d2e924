package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bulga138/lined/config"
	"github.com/bulga138/lined/editor"
	"github.com/bulga138/lined/terminal"
	"github.com/bulga138/lined/version"
)

// Define the command-line flags
var (
	initConfig  = flag.Bool("init-config", false, "Create a default config file and exit.")
	showVersion = flag.Bool("version", false, "Show version information and exit.")
	configPath  = flag.String("config", "", "Read settings from this file instead of the default location.")
	capacity    = flag.Int("capacity", 0, "Initial line capacity of the buffer (overrides the config file).")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("lined %s\n", version.String())
		os.Exit(0)
	}

	if *initConfig {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// 1. Load Config
	cfg := config.LoadConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *capacity > 0 {
		cfg.InitialCapacity = *capacity
	}

	// 2. Set up logging based on config
	if cfg.EnableLogger {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- lined started (logging enabled) ---")
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("Config loaded: %+v", cfg)

	// 3. Parse Arguments
	var filename string
	args := flag.Args()
	if len(args) > 1 {
		fmt.Println("Usage: lined [flags] [filename]")
		os.Exit(1)
	}
	if len(args) == 1 {
		filename = args[0]
	}

	// 4. Pick the input source
	interactive := terminal.IsInteractive(os.Stdin)
	if cfg.ListWidth == 0 && terminal.IsInteractive(os.Stdout) {
		if w, err := terminal.Width(os.Stdout); err == nil {
			cfg.ListWidth = w
		}
	}

	var in editor.Prompter = editor.NewStreamPrompter(os.Stdin, os.Stdout)
	var out io.Writer = os.Stdout
	if interactive && cfg.UseReadline {
		rp, err := editor.NewReadlinePrompter(cfg.HistoryFile)
		if err != nil {
			log.Printf("readline unavailable, using plain input: %v", err)
		} else {
			defer rp.Close()
			in, out = rp, rp.Stdout()
		}
	}

	// 5. Initialize Editor
	e, err := editor.NewEditor(in, out, cfg, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing editor: %v\n", err)
		log.Printf("Error initializing editor: %v", err)
		os.Exit(1)
	}

	// 6. Run the editor
	if err := e.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		log.Printf("Error running editor: %v", err)
		os.Exit(1)
	}

	log.Println("--- lined exited cleanly ---")
}
