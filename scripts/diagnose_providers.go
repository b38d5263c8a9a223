// Command diagnose_providers probes the configured news providers with a
// sample topic and reports whether each one is reachable and returning
// items. Run it from the repo root:
//
//	go run ./scripts "solid state batteries"
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"blogsmith/internal/domain/entity"
	"blogsmith/internal/infra/news"
)

// ProviderDiagnostic represents the diagnostic result for a single news provider
type ProviderDiagnostic struct {
	Provider     string `json:"provider"`
	Status       string `json:"status"` // "OK", "EMPTY", "CONFIG_ERROR", "UPSTREAM_ERROR", "TIMEOUT", "ERROR"
	ItemCount    int    `json:"item_count"`
	SampleTitle  string `json:"sample_title,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	ResponseTime int64  `json:"response_time_ms"`
}

type newsFetcher interface {
	FetchNews(ctx context.Context, topic string) ([]entity.NewsItem, error)
}

func main() {
	topic := "technology"
	if len(os.Args) > 1 {
		topic = os.Args[1]
	}

	cfg, err := news.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load news configuration: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	fetchers := []struct {
		name    string
		fetcher newsFetcher
	}{
		{"currents", news.NewCurrentsClient(cfg, httpClient)},
		{"google-news", news.NewGoogleNewsClient(cfg, httpClient)},
	}

	log.Printf("Diagnosing %d news providers with topic %q...", len(fetchers), topic)

	diagnostics := make([]ProviderDiagnostic, 0, len(fetchers))
	for i, f := range fetchers {
		log.Printf("[%d/%d] Probing: %s", i+1, len(fetchers), f.name)
		diag := diagnoseProvider(f.name, f.fetcher, topic, cfg.Timeout)
		diagnostics = append(diagnostics, diag)

		// Rate limiting to be nice to servers
		time.Sleep(500 * time.Millisecond)
	}

	printReport(diagnostics)
	generateJSONReport(diagnostics)
}

func diagnoseProvider(name string, fetcher newsFetcher, topic string, timeout time.Duration) ProviderDiagnostic {
	diag := ProviderDiagnostic{Provider: name}

	startTime := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	items, err := fetcher.FetchNews(ctx, topic)
	diag.ResponseTime = time.Since(startTime).Milliseconds()

	if err != nil {
		var configErr *entity.ConfigError
		var upstreamErr *entity.UpstreamError
		switch {
		case errors.As(err, &configErr):
			diag.Status = "CONFIG_ERROR"
			diag.ErrorMessage = fmt.Sprintf("set %s to enable this provider", configErr.EnvVar)
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			diag.Status = "TIMEOUT"
			diag.ErrorMessage = fmt.Sprintf("no response within %v", timeout)
		case errors.As(err, &upstreamErr):
			diag.Status = "UPSTREAM_ERROR"
			diag.ErrorMessage = err.Error()
		default:
			diag.Status = "ERROR"
			diag.ErrorMessage = err.Error()
		}
		return diag
	}

	diag.ItemCount = len(items)
	if len(items) == 0 {
		diag.Status = "EMPTY"
		diag.ErrorMessage = "provider returned no items for the topic"
		return diag
	}

	diag.SampleTitle = items[0].Title
	diag.Status = "OK"
	return diag
}

func printReport(diagnostics []ProviderDiagnostic) {
	fmt.Println("===============================================")
	fmt.Println("News Provider Diagnostic Report")
	fmt.Printf("Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Println("===============================================")
	fmt.Println()

	var okCount int
	for _, d := range diagnostics {
		if d.Status == "OK" || d.Status == "EMPTY" {
			okCount++
		}
	}
	fmt.Printf("Reachable: %d/%d\n\n", okCount, len(diagnostics))

	for _, d := range diagnostics {
		fmt.Printf("Provider: %s\n", d.Provider)
		fmt.Printf("  Status: %s | Items: %d | Response: %dms\n", d.Status, d.ItemCount, d.ResponseTime)
		if d.SampleTitle != "" {
			fmt.Printf("  Sample: %s\n", d.SampleTitle)
		}
		if d.ErrorMessage != "" {
			fmt.Printf("  Error: %s\n", d.ErrorMessage)
		}
		fmt.Println()
	}
}

func generateJSONReport(diagnostics []ProviderDiagnostic) {
	f, err := os.Create("provider_diagnostic_report.json")
	if err != nil {
		log.Printf("Failed to create JSON report: %v", err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close JSON report file: %v", err)
		}
	}()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(diagnostics); err != nil {
		log.Printf("Failed to write JSON report: %v", err)
		return
	}

	log.Println("JSON report generated: provider_diagnostic_report.json")
}
