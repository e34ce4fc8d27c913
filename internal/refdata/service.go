package refdata

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"tabiplan.jp/internal/report"
	"tabiplan.jp/internal/utils"
)

// Service loads reference datasets into a Store and keeps a remote source
// refreshed in the background.
type Service struct {
	Logger *slog.Logger
	Client *http.Client
	Store  *Store
}

// NewService creates a Service around the given store.
func NewService(logger *slog.Logger, client *http.Client, store *Store) *Service {
	return &Service{
		Logger: logger,
		Client: client,
		Store:  store,
	}
}

// Load installs the dataset from the configured source: a local file, a
// remote URL, or the builtin tables when neither is given.
func (s *Service) Load(ctx context.Context, dataFile, dataURL, authUser, authPass string, maxRetries int) error {
	var (
		ds     Dataset
		err    error
		source string
	)
	switch {
	case dataFile != "":
		ds, err = loadFromFile(dataFile)
		source = dataFile
	case dataURL != "":
		ds, err = loadFromURL(ctx, s.Client, dataURL, authUser, authPass, maxRetries)
		source = dataURL
	default:
		ds, err = Builtin()
		source = "builtin"
	}
	if err != nil {
		return err
	}

	s.Store.Update(ds)
	s.Logger.Info("Loaded reference dataset", "source", source, "counts", s.Store.Counts())
	return nil
}

// Refresh periodically re-fetches the dataset from a remote URL and swaps it
// into the store. Fetch and validation errors are logged and reported but do
// not disturb the active dataset; the loop simply tries again next interval.
// It returns when the context is canceled.
func (s *Service) Refresh(ctx context.Context, dataURL, authUser, authPass string, interval time.Duration, maxRetries int) {
	for {
		select {
		case <-ctx.Done():
			s.Logger.Info("Stopping dataset refresh routine")
			return
		default:
			ds, err := loadFromURL(ctx, s.Client, dataURL, authUser, authPass, maxRetries)
			if err != nil {
				report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
					Tags:  utils.MakeMap("data_url", dataURL),
					Level: sentry.LevelError,
				})
				s.Logger.Error("Failed to refresh reference dataset", "error", err)
			} else {
				s.Store.Update(ds)
				s.Logger.Info("Refreshed reference dataset", "counts", s.Store.Counts())
			}
			time.Sleep(interval)
		}
	}
}
