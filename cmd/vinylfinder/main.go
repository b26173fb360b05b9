package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/benthev/vinylfinder/internal/config"
	"github.com/benthev/vinylfinder/internal/discogs"
	"github.com/benthev/vinylfinder/internal/finder"
	internalhttp "github.com/benthev/vinylfinder/internal/http"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		tokenFlag   = flag.String("token", "", "Discogs API token (overrides config and DISCOGS_API_KEY)")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Vinyl-Only Finder - find seller listings with no digital counterparts")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  vinylfinder [options] <discogs_seller_url> [genre]")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  vinylfinder 'https://www.discogs.com/seller/woodstockmusicshop/profile'")
		fmt.Println("  vinylfinder 'https://www.discogs.com/seller/woodstockmusicshop/profile' Rock")
		fmt.Println("  vinylfinder 'https://www.discogs.com/seller/woodstockmusicshop/profile' ''  # No genre filter")
		fmt.Println()
		fmt.Println("Default genre filter: Electronic")
		fmt.Println()
		fmt.Println("For interactive mode, use: vinylfinder-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *tokenFlag != "" {
		settings.API.Token = *tokenFlag
	}

	sellerURL := flag.Arg(0)
	genre := settings.Scan.Genre
	if flag.NArg() > 1 {
		// An explicit second argument wins, and an explicit empty
		// string disables genre filtering.
		genre = flag.Arg(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	fetcher := internalhttp.NewClient(settings.ToFetchConfig())
	if fetcher.Authenticated() {
		fmt.Fprintln(os.Stderr, "Using authenticated API requests")
	}

	client := discogs.NewClient(fetcher, settings.ToDiscogsConfig())

	scanner := finder.NewScanner(client, genre,
		func(e finder.ProgressEvent) {
			if e.Level == finder.LevelVerbose && !*verboseFlag {
				return
			}
			fmt.Fprintln(os.Stderr, e.Message)
		},
		func(r finder.Result) {
			fmt.Println(r.Line())
		})

	summary, err := scanner.Scan(ctx, sellerURL)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(summary)
}
