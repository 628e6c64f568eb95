package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"store-monitor/internal/config"
	"store-monitor/internal/monitor"
	"store-monitor/internal/notify"
	"store-monitor/internal/shop"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.CheckRobots {
		client := &http.Client{Timeout: cfg.Timeout}
		if !shop.RobotsAllowed(client, cfg.CollectionURL, cfg.UserAgent) {
			fmt.Printf("Skipping run: robots.txt disallows fetching %s\n", cfg.CollectionURL)
			return
		}
	}

	m := &monitor.Monitor{
		Fetcher:       shop.PickFetcher(cfg.RenderPages, cfg.Timeout, cfg.UserAgent),
		CollectionURL: cfg.CollectionURL,
		StateKeyword:  cfg.StateKeyword,
		SizeKeyword:   cfg.SizeKeyword,
	}

	result, err := m.Run()
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	// On delivery failure the message still lands on stdout so the
	// operator is not left uninformed.
	sink := notify.ForTopic(cfg.NtfyServer, cfg.NtfyTopic, cfg.Timeout, os.Stdout)
	if err := notify.Deliver(sink, os.Stdout, result.Message); err != nil {
		log.Printf("Failed to deliver notification: %v", err)
		os.Exit(1)
	}
}
