package main

import (
	"fmt"
	"log"
	"os"
	"store-monitor/internal/config"
	"store-monitor/internal/notify"
	"store-monitor/internal/shop"
)

// Watches the whole-store collection (newest first) and notifies once
// per product title that previous runs have not seen.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fetcher := shop.NewStaticFetcher(cfg.Timeout, cfg.UserAgent)

	page, err := fetcher.Fetch(cfg.StoreCollectionURL)
	if err != nil {
		log.Fatalf("Failed to fetch store page: %v", err)
	}

	titles, err := shop.ProductTitles(page)
	if err != nil {
		log.Fatalf("Failed to parse store page: %v", err)
	}
	if len(titles) == 0 {
		return
	}

	cache := shop.TitleCache{Path: cfg.CacheFile}
	fresh := shop.NewTitles(titles, cache.Load())
	if len(fresh) == 0 {
		return
	}

	sink := pickNotifier(cfg)
	for _, title := range fresh {
		if err := sink.Notify(fmt.Sprintf("New product added: %s", title)); err != nil {
			log.Printf("Failed to deliver notification: %v", err)
		}
	}

	if err := cache.Save(titles); err != nil {
		log.Printf("Failed to write cache file: %v", err)
	}
}

func pickNotifier(cfg *config.Config) notify.Notifier {
	topic := cfg.NtfyStoreTopic
	if topic == "" {
		topic = cfg.NtfyTopic
	}
	if topic == "" {
		log.Println("NTFY_STORE_TOPIC is not set. Printing to stdout instead.")
	}
	return notify.ForTopic(cfg.NtfyServer, topic, cfg.Timeout, os.Stdout)
}
