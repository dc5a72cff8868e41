// Package export simulates handing a saved list to a CRM or a file.
//
// Both paths are timer driven: the start is reported at once and the
// completion after a fixed delay. Timers are never cancelled; the Simulator
// only tracks them so shutdown can wait for the last ones.
package export

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/leadscout/internal/domain"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
	"github.com/MrSnakeDoc/leadscout/internal/notify"
)

// ErrNoExportView is returned when an export starts without an open view.
var ErrNoExportView = errors.New("no export view open")

const (
	DefaultCRMDelay      = 2 * time.Second
	DefaultDownloadDelay = 1 * time.Second

	crmName = "HubSpot"
)

// Config holds the simulated delays.
type Config struct {
	CRMDelay      time.Duration
	DownloadDelay time.Duration
}

// Simulator runs export jobs against the configured targets.
type Simulator struct {
	cfg   Config
	crm   CRMTarget
	files FileTarget
	log   logger.Logger
	now   func() time.Time

	wg sync.WaitGroup
}

// NewSimulator creates a simulator. Zero delays fall back to the defaults.
func NewSimulator(cfg Config, crm CRMTarget, files FileTarget, log logger.Logger) *Simulator {
	if cfg.CRMDelay <= 0 {
		cfg.CRMDelay = DefaultCRMDelay
	}
	if cfg.DownloadDelay <= 0 {
		cfg.DownloadDelay = DefaultDownloadDelay
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Simulator{cfg: cfg, crm: crm, files: files, log: log, now: time.Now}
}

// StartCRM reports the start of a CRM export of the list shown in v and
// completes it after the CRM delay, closing the view.
func (s *Simulator) StartCRM(v *View, sink notify.Sink) error {
	j, err := v.begin(true)
	if err != nil {
		return err
	}
	count := len(j.companies)

	s.emit(sink, domain.SeverityInfo, "Export started",
		fmt.Sprintf("%s %s being exported to %s.", domain.CountCompanies(count), domain.Plural(count, "is", "are"), crmName), "")

	s.after(s.cfg.CRMDelay, func() {
		receipt, err := s.crm.ExportList(context.Background(), j.list, j.companies)
		if err != nil {
			v.finishCRM(j, "")
			s.log.Error("CRM export failed", logger.String("list_id", j.list.ID), logger.Error(err))
			s.emit(sink, domain.SeverityError, "Export failed", err.Error(), "")
			return
		}

		v.finishCRM(j, receipt.ID)
		s.log.Info("CRM export completed",
			logger.String("list_id", j.list.ID),
			logger.String("receipt_id", receipt.ID),
			logger.Int("companies", count))
		s.emit(sink, domain.SeveritySuccess, "Export completed",
			fmt.Sprintf("%s %s now available in your %s account.", domain.CountCompanies(count), domain.Plural(count, "is", "are"), crmName), receipt.ID)
	})
	return nil
}

// StartDownload reports the start of a file download of the list shown in v
// and completes it after the download delay. The view stays open.
func (s *Simulator) StartDownload(v *View, sink notify.Sink) error {
	j, err := v.begin(false)
	if err != nil {
		return err
	}

	s.emit(sink, domain.SeverityInfo, "Download CSV", "Downloading the list as a CSV file...", "")

	s.after(s.cfg.DownloadDelay, func() {
		handle, err := s.files.DownloadAsFile(WithOwner(context.Background(), j.owner), j.list, j.companies)
		if err != nil {
			v.finishDownload("")
			s.log.Error("File download failed", logger.String("list_id", j.list.ID), logger.Error(err))
			s.emit(sink, domain.SeverityError, "Download failed", err.Error(), "")
			return
		}

		v.finishDownload(handle.ID)
		s.log.Info("File download ready",
			logger.String("list_id", j.list.ID),
			logger.String("file_id", handle.ID),
			logger.Int("bytes", handle.Size))
		s.emit(sink, domain.SeveritySuccess, "Download completed", "The CSV file is ready to use.", handle.ID)
	})
	return nil
}

// Wait blocks until every started timer has fired and finished, or ctx ends.
func (s *Simulator) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Simulator) after(d time.Duration, fn func()) {
	s.wg.Add(1)
	time.AfterFunc(d, func() {
		defer s.wg.Done()
		fn()
	})
}

func (s *Simulator) emit(sink notify.Sink, sev domain.Severity, title, desc, ref string) {
	sink.Notify(domain.Notification{
		Title:       title,
		Description: desc,
		Severity:    sev,
		At:          s.now(),
		Ref:         ref,
	})
}
