package ledger

import (
	"context"
)

// LedgerService defines the attendance ledger operations exposed to
// the console: session lifecycle, the correction workflow and the
// derived views over the current ledger state.
type LedgerService interface {
	// BuildSession derives the working-day calendar for the month
	// range, loads the department roster and generates a fresh ledger.
	BuildSession(ctx context.Context, req BuildSessionRequest) (SessionResponse, error)

	// GetSession retrieves session metadata by ID.
	GetSession(ctx context.Context, sessionID string) (SessionResponse, error)

	// DeleteSession discards a session and its ledger.
	DeleteSession(ctx context.Context, sessionID string) error

	// ListEntries returns one filtered, paginated page of employee rows.
	ListEntries(ctx context.Context, sessionID string, filter EntryFilter) (ListEntriesResponse, error)

	// PendingRequests lists the actionable correction requests for the
	// employees on the current page. The queue is page-scoped on
	// purpose: it bounds the approver panel to what is rendered, at
	// the cost of hiding requests parked on other pages.
	PendingRequests(ctx context.Context, sessionID string, filter EntryFilter) (PendingRequestsResponse, error)

	// Approve resolves a pending request: the entry becomes PRESENT
	// with a manual-correction provenance and the request is removed.
	Approve(ctx context.Context, sessionID string, req DecisionRequest) (EntryResponse, error)

	// Reject resolves a pending request: the entry stays MISSING and
	// the request is retained with state REJECTED for audit.
	Reject(ctx context.Context, sessionID string, req DecisionRequest) (EntryResponse, error)

	// Summary tallies statuses across the full filtered employee set
	// and every working day.
	Summary(ctx context.Context, sessionID string, filter EntryFilter) (SummaryResponse, error)

	// Export renders the current page as a delimited-text document.
	Export(ctx context.Context, sessionID string, filter EntryFilter) (ExportDocument, error)
}

// SessionRepository stores built sessions. Replace swaps in a session
// whose ledger is a fresh copy, so concurrent readers keep observing
// the snapshot they started with.
type SessionRepository interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Replace(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
}
