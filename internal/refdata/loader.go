package refdata

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/getsentry/sentry-go"
	"tabiplan.jp/internal/report"
	"tabiplan.jp/internal/utils"
)

// builtinJSON is the dataset shipped with the binary: the four classic
// first-trip destinations (Tokyo, Kyoto, Osaka, Nara) with their attraction,
// hotel, restaurant and transit tables.
//
//go:embed japan.json
var builtinJSON []byte

// Builtin parses and validates the embedded default dataset.
func Builtin() (Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(builtinJSON, &ds); err != nil {
		return Dataset{}, fmt.Errorf("failed to parse builtin dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("builtin dataset invalid: %w", err)
	}
	return ds, nil
}

// loadFromFile reads and validates a JSON dataset from disk.
func loadFromFile(filePath string) (Dataset, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("data_file", filePath),
			Level: sentry.LevelError,
		})
		return Dataset{}, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return parseDataset(data, filePath)
}

// loadFromURL fetches and validates a JSON dataset from a remote HTTP(S)
// endpoint, with optional basic auth and bounded retries.
func loadFromURL(ctx context.Context, client *http.Client, url, authUser, authPass string, maxRetries int) (Dataset, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to create request: %w", err)
	}
	if authUser != "" && authPass != "" {
		req.SetBasicAuth(authUser, authPass)
	}

	resp, err := DoWithBackoff(ctx, client, req, maxRetries)
	if err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("data_url", url),
			Level: sentry.LevelError,
		})
		return Dataset{}, fmt.Errorf("failed to fetch remote dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("remote dataset returned status: %d", resp.StatusCode)
		report.ReportErrorWithSentryOptions(statusErr, report.SentryReportOptions{
			Tags:  utils.MakeMap("data_url", url),
			Level: sentry.LevelError,
		})
		return Dataset{}, statusErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read remote dataset: %w", err)
	}
	return parseDataset(data, url)
}

func parseDataset(data []byte, source string) (Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("data_source", source),
			Level: sentry.LevelError,
		})
		return Dataset{}, fmt.Errorf("failed to unmarshal dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  utils.MakeMap("data_source", source),
			Level: sentry.LevelError,
		})
		return Dataset{}, fmt.Errorf("dataset failed validation: %w", err)
	}
	return ds, nil
}
