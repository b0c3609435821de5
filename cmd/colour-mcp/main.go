package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/colour-tools-mcp/internal/config"
	"github.com/ironsheep/colour-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("colour-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("colour-tools-mcp - MCP server for colour conversion and manipulation")
			fmt.Println()
			fmt.Println("Usage: colour-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=/path/config.yaml    Load settings from a YAML file\n", config.EnvConfigPath)
			fmt.Printf("  %s=debug             Enable debug logging\n", config.EnvLogLevel)
			fmt.Printf("  %s=true                 Reject malformed colours instead of using black\n", config.EnvStrict)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Colour MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("strict=%v swatch=%dx%d cell=%d", cfg.Strict, cfg.Swatch.Width, cfg.Swatch.Height, cfg.Swatch.Cell)
	}

	server.Version = Version
	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
