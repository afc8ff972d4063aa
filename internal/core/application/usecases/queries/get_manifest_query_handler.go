package queries

import (
	"context"

	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/domain/model/signature"
	"dispatchdesk/internal/core/domain/services"
	"dispatchdesk/internal/core/ports"
)

// GetManifestQueryHandler builds the manifest read model of a session.
type GetManifestQueryHandler struct {
	reader    ports.SessionReader
	formatter services.AmountFormatter
}

// NewGetManifestQueryHandler creates a handler for manifest queries.
func NewGetManifestQueryHandler(reader ports.SessionReader, formatter services.AmountFormatter) GetManifestQueryHandler {
	return GetManifestQueryHandler{reader: reader, formatter: formatter}
}

// Handle executes the manifest query. Unknown sessions fail with an
// *errs.ObjectNotFoundError.
func (h GetManifestQueryHandler) Handle(ctx context.Context, query GetManifestQuery) (GetManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetManifestQueryResponse{}, err
	}

	var response GetManifestQueryResponse
	err := h.reader.View(ctx, query.SessionID(), func(s *session.Session) error {
		store := s.Manifest()
		total := store.Total()

		response = GetManifestQueryResponse{
			SessionID: s.ID(),
			Rows:      NewRowViews(store.Rows()),
			Total:     total.Int(),
			TotalText: h.formatter.Format(total),
			BigTotal:  h.formatter.FormatBig(total),
			Date:      s.Meta().Date(),
			Note:      s.Meta().Note(),
		}
		response.SelectedCourier, _ = s.SelectedCourier()
		response.CourierSigned = isSigned(s, signature.Courier)
		response.ReceiverSigned = isSigned(s, signature.Receiver)
		return nil
	})
	if err != nil {
		return GetManifestQueryResponse{}, err
	}

	return response, nil
}

func isSigned(s *session.Session, kind signature.Kind) bool {
	pad, err := s.Pad(kind)
	return err == nil && !pad.IsBlank()
}
