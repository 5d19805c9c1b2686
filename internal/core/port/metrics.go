package port

import (
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
)

type Metrics interface {
	OrderTransition(from, to domain.OrderStatus)
	ProvisioningAttempt(kind string, duration time.Duration)
	LedgerEntryWritten(entryType domain.LedgerEntryType)
	LedgerMismatch()
	IdempotencyDecision(outcome domain.IdempotencyOutcome)
	Reconciliation(report *domain.ReconciliationReport)
}
