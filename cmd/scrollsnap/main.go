// Package main provides the scrollsnap demo binary.
//
// Usage:
//
//	scrollsnap demo [options]          Word list that follows its newest entry
//	scrollsnap tail [options] [file]   Follow lines from a file or stdin
//	scrollsnap version                 Print version information
//	scrollsnap help                    Show help
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grindlemire/scrollsnap/internal/config"
	"github.com/grindlemire/scrollsnap/internal/debug"
)

const version = "0.1.0"

const usage = `scrollsnap - auto-scroll-to-end for terminal widget trees

Usage:
  scrollsnap <command> [options] [file]

Commands:
  demo        Append words to a list that keeps its newest entry in view
  tail        Stream lines from a file (or stdin) into a following list
  version     Print version information
  help        Show this help message

Options:
  -config     Path to a YAML config file
  -mode       decorator or broadcast
  -engine     expr or cel, the language of the snap expressions
  -snap       Vertical snap expression (default "follow")
  -fps        Frame rate
  -log        Path to a debug log file
  -every      demo: append a word on this interval (0 disables)

Keys:
  a, enter    add a word (demo)
  p / f       pause / follow
  x           clear the list
  arrows      scroll; scrolling up pauses, End resumes
  q, ctrl+c   quit

Examples:
  scrollsnap demo
  scrollsnap demo -engine cel -snap 'follow && count > 3'
  scrollsnap tail -mode broadcast /var/log/syslog
  some-command | scrollsnap tail
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "demo":
		if err := runDemo(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "tail":
		if err := runTail(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("scrollsnap version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

// commonFlags are shared by every subcommand that opens a UI.
type commonFlags struct {
	configPath string
	mode       string
	engine     string
	snap       string
	fps        int
	logPath    string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&c.mode, "mode", "", "decorator or broadcast")
	fs.StringVar(&c.engine, "engine", "", "expr or cel")
	fs.StringVar(&c.snap, "snap", "", "Vertical snap expression")
	fs.IntVar(&c.fps, "fps", 0, "Frame rate")
	fs.StringVar(&c.logPath, "log", "", "Path to a debug log file")
}

// load reads the config file and lets explicitly set flags override it.
func (c *commonFlags) load() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.mode != "" {
		cfg.Mode = c.mode
	}
	if c.engine != "" {
		cfg.Engine = c.engine
	}
	if c.snap != "" {
		cfg.Snap.Vertical = c.snap
	}
	if c.fps != 0 {
		cfg.FrameRate = c.fps
	}
	if c.logPath != "" {
		cfg.DebugLog = c.logPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.DebugLog != "" {
		if err := debug.Init(cfg.DebugLog); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
