package queries

import (
	"errors"
	"time"

	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/pkg/guard"
)

var (
	ErrExportQueryIsNotConstructed = errors.New(
		"ExportQuery must be created via NewExportQuery constructor",
	)
	ErrRequestedAtIsRequired = errors.New("export time is required")
)

// ExportFile is a finished download: the name offered to the browser, its
// media type and the bytes.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportQuery asks for one of the manifest downloads of a session. The
// request time dates the PDF file name.
//
// Example:
//
//	query, _ := NewExportQuery(sessionID, time.Now())
//	file, err := csvHandler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	return c.Blob(http.StatusOK, file.ContentType, file.Content)
type ExportQuery struct {
	sessionID   kernel.UUID
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// NewExportQuery creates an export query for the session.
func NewExportQuery(sessionID kernel.UUID, requestedAt time.Time) (ExportQuery, error) {
	var timeErr error
	if requestedAt.IsZero() {
		timeErr = ErrRequestedAtIsRequired
	}
	if err := errors.Join(sessionID.Validate(), timeErr); err != nil {
		return ExportQuery{}, err
	}

	return ExportQuery{
		sessionID:   sessionID,
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ExportQuery) Validate() error {
	return q.guard.Validate(ErrExportQueryIsNotConstructed)
}

// SessionID returns the exported session.
func (q ExportQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// RequestedAt returns the time of the export request.
func (q ExportQuery) RequestedAt() time.Time {
	return q.requestedAt
}
