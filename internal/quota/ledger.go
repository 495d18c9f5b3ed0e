package quota

import (
	"fmt"
	"log/slog"
	"sync"

	"curator/internal/config"
	"curator/internal/services"
)

// Confirmer obtains an explicit operator yes/no before an expensive charge.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// Status reports session quota usage for display.
type Status struct {
	Used        int
	Remaining   int
	Total       int
	PercentUsed float64
}

// Ledger accumulates the point cost of provider calls within one session.
type Ledger struct {
	mu        sync.Mutex
	used      int
	settings  config.Quota
	confirmer Confirmer
	logger    *slog.Logger
	warned    bool
}

// NewLedger creates a session ledger. A nil confirmer auto-approves, which
// is only appropriate for tests.
func NewLedger(settings config.Quota, confirmer Confirmer, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		settings:  settings,
		confirmer: confirmer,
		logger:    logger.With("component", "quota"),
	}
}

// EstimateAndCharge adds points to the session total. Charges above the
// confirmation threshold block on operator approval first; a decline leaves
// the ledger untouched and returns a quota-declined error so callers can
// short-circuit instead of retrying.
func (l *Ledger) EstimateAndCharge(points int, label string) error {
	if points <= 0 {
		return nil
	}

	if points > l.settings.ConfirmThreshold && l.confirmer != nil {
		prompt := fmt.Sprintf("%s will use %d quota points. Continue?", label, points)
		approved, err := l.confirmer.Confirm(prompt)
		if err != nil {
			return services.Wrap(services.ErrInput, "quota", "confirm", label, err)
		}
		if !approved {
			return services.Wrap(services.ErrQuotaDeclined, "quota", "charge", label, nil)
		}
	}

	l.mu.Lock()
	l.used += points
	used := l.used
	remaining := l.settings.DailyBudget - l.used
	warn := remaining < l.settings.WarnFloor && !l.warned
	if warn {
		l.warned = true
	}
	l.mu.Unlock()

	l.logger.Debug("charged quota", "points", points, "label", label, "session_used", used)
	if warn {
		l.logger.Warn("session quota running low",
			"used", used,
			"remaining", remaining,
			"budget", l.settings.DailyBudget)
	}
	return nil
}

// SearchCost returns the configured cost of one search call.
func (l *Ledger) SearchCost() int { return l.settings.SearchCost }

// DetailCost returns the configured cost of one detail call.
func (l *Ledger) DetailCost() int { return l.settings.DetailCost }

// WriteCost returns the configured cost of one mutation call.
func (l *Ledger) WriteCost() int { return l.settings.WriteCost }

// Status returns session usage for display. Remaining may go negative; it is
// informational only.
func (l *Ledger) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	remaining := l.settings.DailyBudget - l.used
	percent := 0.0
	if l.settings.DailyBudget > 0 {
		percent = float64(l.used) / float64(l.settings.DailyBudget) * 100
	}
	return Status{
		Used:        l.used,
		Remaining:   remaining,
		Total:       l.settings.DailyBudget,
		PercentUsed: percent,
	}
}
