package http

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SessionId is the sessionId path parameter.
type SessionId = openapi_types.UUID //nolint:revive // matches the API parameter name

// RowIndex is the 1-based index path parameter.
type RowIndex = int

// ExportFormat selects a manifest download.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)

// SignaturePad names one of the two signature canvases.
type SignaturePad = string

type SessionCreated struct {
	Id string `json:"id"` //nolint:revive // API field name
}

type CourierList struct {
	Couriers []string `json:"couriers"`
	Selected *string  `json:"selected,omitempty"`
}

type SelectCourierRequest struct {
	Name string `json:"name"`
}

type ScanBatchRequest struct {
	Text string `json:"text"`
}

// QuickAddRequest is a record typed into the quick-add form. Amount is free
// text; every non-digit is dropped.
type QuickAddRequest struct {
	Id            string `json:"id"` //nolint:revive // API field name
	RecipientName string `json:"recipientName,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	Amount        string `json:"amount,omitempty"`
}

type EditCellRequest struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

type MetaRequest struct {
	Date string `json:"date"`
	Note string `json:"note,omitempty"`
}

type SignatureEvent struct {
	Type string  `json:"type"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
}

type SignatureEventsRequest struct {
	Events []SignatureEvent `json:"events"`
}

type ManifestRow struct {
	Index         int    `json:"index"`
	Id            string `json:"id"` //nolint:revive // API field name
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Amount        int    `json:"amount"`
	Courier       string `json:"courier"`
}

type Manifest struct {
	SessionId       string        `json:"sessionId"` //nolint:revive // API field name
	SelectedCourier *string       `json:"selectedCourier,omitempty"`
	Rows            []ManifestRow `json:"rows"`
	Total           int           `json:"total"`
	TotalText       string        `json:"totalText"`
	BigTotal        string        `json:"bigTotal"`
	Date            string        `json:"date"`
	Note            string        `json:"note"`
	CourierSigned   bool          `json:"courierSigned"`
	ReceiverSigned  bool          `json:"receiverSigned"`
}

type PrintView struct {
	MetaLine    string        `json:"metaLine"`
	CourierName string        `json:"courierName"`
	Rows        []ManifestRow `json:"rows"`
	Total       int           `json:"total"`
	TotalText   string        `json:"totalText"`
}

type ClipboardText struct {
	Text string `json:"text"`
}

// ClearManifestParams holds the query of DELETE .../manifest.
type ClearManifestParams struct {
	Confirm *bool `form:"confirm,omitempty" json:"confirm,omitempty"`
}
