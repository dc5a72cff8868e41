package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/leadscout/internal/export"
	"github.com/MrSnakeDoc/leadscout/internal/index"
	"github.com/MrSnakeDoc/leadscout/internal/logger"
	"github.com/MrSnakeDoc/leadscout/internal/session"
)

// SnapshotStatus reports on the optional session snapshot store.
type SnapshotStatus interface {
	Ping(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	AllowedHosts []string // Host headers allowed to trigger a reload
	AllowedCIDRS []string // IPs allowed to access readyz/infra/reload
	TrustProxy   bool     // true if running behind a trusted reverse proxy (e.g., cloudflared)

	RequestTimeout   time.Duration // per request deadline
	RateBurst        int           // /api bucket size per client IP
	RateRefillPerMin int           // /api tokens added per minute

	Catalog       *index.Catalog    // current lead directory
	Sessions      *session.Manager  // per client workspaces
	Exporter      *export.Simulator // CRM and file export timers
	Files         *export.FileStore // rendered downloads
	Snapshots     SnapshotStatus    // nil when redis is disabled
	ReloadTrigger chan struct{}     // Channel to trigger manual dataset reload
}
