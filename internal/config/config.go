package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"log"
	"os"
	"time"
)

type Config struct {
	// StateKeyword maps to STATE_KEYWORD: the state name to look for in
	// the collection page's product links.
	StateKeyword string `envconfig:"STATE_KEYWORD" default:"indiana"`

	// SizeKeyword maps to SIZE_KEYWORD: the size to look for among the
	// product's variants.
	SizeKeyword string `envconfig:"SIZE_KEYWORD" default:"large"`

	// NtfyTopic maps to NTFY_TOPIC. When empty, messages go to stdout
	// instead of the ntfy server (local/dry-run mode).
	NtfyTopic string `envconfig:"NTFY_TOPIC"`

	// NtfyStoreTopic maps to NTFY_STORE_TOPIC, used by the new-product
	// watcher. Falls back to NtfyTopic when unset.
	NtfyStoreTopic string `envconfig:"NTFY_STORE_TOPIC"`

	// NtfyServer maps to NTFY_SERVER.
	NtfyServer string `envconfig:"NTFY_SERVER" default:"https://ntfy.sh"`

	// CollectionURL maps to COLLECTION_URL: the listing the variant
	// monitor scans for the state's product page.
	CollectionURL string `envconfig:"COLLECTION_URL" default:"https://store.dead.net/collections/united-states-of-dead"`

	// StoreCollectionURL maps to STORE_COLLECTION_URL: the whole-store
	// listing the new-product watcher scans, newest first.
	StoreCollectionURL string `envconfig:"STORE_COLLECTION_URL" default:"https://store.dead.net/collections/all?sort_by=created-descending"`

	// CacheFile maps to CACHE_FILE: where the new-product watcher keeps
	// the titles it has already seen.
	CacheFile string `envconfig:"CACHE_FILE" default:".store_monitor_cache.json"`

	// Timeout maps to HTTP_TIMEOUT. envconfig parses durations directly.
	Timeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// UserAgent maps to USER_AGENT.
	UserAgent string `envconfig:"USER_AGENT" default:"StoreMonitor/1.0"`

	// RenderPages maps to RENDER_PAGES: fetch pages through a headless
	// browser instead of a plain GET.
	RenderPages bool `envconfig:"RENDER_PAGES" default:"false"`

	// CheckRobots maps to CHECK_ROBOTS: consult robots.txt before
	// scraping the collection page.
	CheckRobots bool `envconfig:"CHECK_ROBOTS" default:"true"`
}

// Load processes environment variables and populates the Config struct.
func Load() (*Config, error) {
	// 1. Try to load .env file (if it exists)
	// We don't panic here because on the scheduler host there usually is
	// no .env file (vars are injected by cron/systemd directly).
	if err := godotenv.Load(); err != nil {
		// Only log if the file actually exists but failed to load.
		if _, statErr := os.Stat(".env"); statErr == nil {
			log.Printf("Warning: .env file found but could not be loaded: %v", err)
		}
	}

	// 2. Process Environment Variables (System + Loaded from .env)
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
