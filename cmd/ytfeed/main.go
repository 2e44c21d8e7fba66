package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/podqueue/ytfeed/internal/config"
	ytfeedhttp "github.com/podqueue/ytfeed/internal/http"
	"github.com/podqueue/ytfeed/internal/resolve"
	"github.com/podqueue/ytfeed/internal/youtube"
)

func main() {
	// Command line flags
	var (
		urlsFlag      = flag.String("url", "", "YouTube URL(s) to resolve (comma-separated or newline-separated)")
		configFlag    = flag.String("config", "", "Path to config file")
		fmtFlag       = flag.String("fmt", "", "Preferred format ids, comma-separated (e.g. 22,18,5)")
		playlistFlag  = flag.Bool("playlist", false, "Create playlist file with resolved URLs")
		coverFlag     = flag.Bool("cover", false, "Save channel cover art")
		normalizeFlag = flag.Bool("normalize", false, "Print canonical feed URLs without resolving")
		userFlag      = flag.String("user", "", "List channel feed URLs for a YouTube username")
		apiKeyFlag    = flag.String("api-key", "", "YouTube Data API v3 key (overrides config)")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// CLI mode - require URL or username
	if *urlsFlag == "" && *userFlag == "" && flag.NArg() == 0 {
		fmt.Println("ytfeed - Resolve YouTube channels and videos to podcast feeds")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  ytfeed -url <URL> [options]")
		fmt.Println("  ytfeed <URL> [options]")
		fmt.Println("  ytfeed -user <username> -api-key <key>")
		fmt.Println()
		fmt.Println("For interactive mode, use: ytfeed-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *fmtFlag != "" {
		ids, err := parseFormatIDs(*fmtFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -fmt: %v\n", err)
			os.Exit(1)
		}
		settings.PreferredFmtIDs = ids
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}
	if *coverFlag {
		settings.SaveCoverArt = true
	}
	if *apiKeyFlag != "" {
		settings.APIKeyV3 = *apiKeyFlag
	}

	// Get URLs
	urls := *urlsFlag
	if urls == "" && flag.NArg() > 0 {
		urls = flag.Arg(0)
	}
	urls = strings.ReplaceAll(urls, ",", "\n")

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	if *userFlag != "" {
		if err := listChannels(ctx, *userFlag, settings.APIKeyV3); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing channels: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *normalizeFlag {
		for _, line := range strings.Split(urls, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			fmt.Println(youtube.NormalizeChannelURL(line))
		}
		return
	}

	// Create manager with progress callback
	manager := resolve.NewManager(settings, func(event resolve.ProgressEvent) {
		if event.Level == resolve.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case resolve.LevelError:
			prefix = "✗ "
		case resolve.LevelWarning:
			prefix = "! "
		case resolve.LevelSuccess:
			prefix = "✓ "
		case resolve.LevelInfo:
			prefix = "› "
		default:
			prefix = "  "
		}

		fmt.Fprintln(os.Stderr, prefix+event.Message)
	})

	if err := manager.Initialize(ctx, urls); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	if err := manager.Resolve(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during resolution: %v\n", err)
		os.Exit(1)
	}

	// Resolved URLs go to stdout so the output can be piped.
	failed := false
	for _, result := range manager.Results() {
		if result.Err != nil {
			failed = true
			continue
		}
		fmt.Println(result.URL.Resolved)
	}
	if failed {
		os.Exit(1)
	}
}

// parseFormatIDs parses a comma-separated list of itag numbers.
func parseFormatIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid format id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// listChannels prints the feed URLs for a username's channels.
func listChannels(ctx context.Context, username, apiKey string) error {
	resolver := youtube.NewResolver(ytfeedhttp.NewClient())
	feeds, err := resolver.ChannelsForUser(ctx, username, apiKey)
	if err != nil {
		return err
	}
	for _, f := range feeds {
		fmt.Println(f)
	}
	return nil
}
