package dashboard

import (
	"context"
	"time"

	"github.com/flowpms/flowpms-go/pkg/kv"
	"github.com/flowpms/flowpms-go/pkg/logger"
)

const dismissalDateFormat = "2006-01-02"

// Notice tracks the maintenance banner's per-day dismissal. Dismissing hides
// the banner for the rest of the calendar day; it reappears the next day.
type Notice struct {
	store kv.Store
	logg  *logger.Logger
	now   func() time.Time
}

// NewNotice wraps the store with the dismissal logic.
func NewNotice(store kv.Store, logg *logger.Logger) *Notice {
	return &Notice{store: store, logg: logg, now: time.Now}
}

// Hidden reports whether the banner was dismissed today. Storage failures
// and unparseable values fall back to showing the banner.
func (n *Notice) Hidden(ctx context.Context) bool {
	raw, found, err := n.store.Get(ctx, kv.KeyMaintenanceHidden)
	if err != nil {
		n.logg.Warn(ctx, "maintenance dismissal read failed: "+err.Error())
		return false
	}
	if !found {
		return false
	}
	return raw == n.today()
}

// Dismiss hides the banner until the end of the day.
func (n *Notice) Dismiss(ctx context.Context) {
	if err := n.store.Set(ctx, kv.KeyMaintenanceHidden, n.today()); err != nil {
		n.logg.Warn(ctx, "maintenance dismissal write failed: "+err.Error())
	}
}

func (n *Notice) today() string {
	return n.now().Format(dismissalDateFormat)
}
