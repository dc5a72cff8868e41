package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/leadscout/internal/dataset"
	"github.com/MrSnakeDoc/leadscout/internal/index"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
)

// DatasetReloader periodically reloads the lead directory into the catalog.
// Sessions already open keep their own snapshot.
type DatasetReloader struct {
	loader        *dataset.Loader
	mapper        *dataset.Mapper
	catalog       *index.Catalog
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewDatasetReloader creates a new dataset reloader. An empty datasetFile
// selects the embedded directory.
func NewDatasetReloader(
	datasetFile string,
	catalog *index.Catalog,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *DatasetReloader {
	return &DatasetReloader{
		loader:        dataset.NewLoader(datasetFile),
		mapper:        dataset.NewMapper(),
		catalog:       catalog,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the directory once, failing if that is impossible, then keeps
// reloading on the interval or on a manual trigger.
func (dr *DatasetReloader) Start(ctx context.Context) error {
	if err := dr.Reload(ctx); err != nil {
		return fmt.Errorf("initial dataset load failed: %w", err)
	}

	ticker := time.NewTicker(dr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				dr.reloadOrLog(ctx)
			case <-dr.manualTrigger:
				dr.logger.Info("Manual dataset reload triggered")
				dr.reloadOrLog(ctx)
			case <-dr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (dr *DatasetReloader) Stop() {
	close(dr.stopCh)
}

func (dr *DatasetReloader) reloadOrLog(ctx context.Context) {
	if err := dr.Reload(ctx); err != nil {
		dr.logger.Error("Failed to reload dataset, keeping previous one", logger.Error(err))
	}
}

// Reload reads and validates the directory and swaps it into the catalog.
// On error the catalog is left untouched.
func (dr *DatasetReloader) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	source := dr.loader.Source()
	dr.logger.Info("Loading dataset", logger.String("source", source))

	file, err := dr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	ds, err := dr.mapper.Map(file)
	if err != nil {
		return fmt.Errorf("failed to map dataset: %w", err)
	}

	dr.catalog.Replace(ds, source)
	dr.logger.Info("Dataset loaded",
		logger.String("source", source),
		logger.Int("companies", len(ds.Companies)),
		logger.Int("lists", len(ds.Lists)),
		logger.Int("alerts", len(ds.Alerts)))

	return nil
}
