package calendar

import "github.com/shopspring/decimal"

// The ten payload variants below mirror the per-module record shapes of the
// procurement store. Dates are pre-formatted dd/MM/yyyy strings; empty when
// the source column was null.

// RequisitionPayload carries a purchase requisition with its line items.
type RequisitionPayload struct {
	Module       ModuleTag         `json:"module"`
	PRCode       string            `json:"PRCode"`
	RequiredDate string            `json:"RequiredDate"`
	StatusName   string            `json:"StatusName"`
	Description  string            `json:"Description"`
	AddedBy      string            `json:"AddedBy"`
	AddedDate    string            `json:"AddedDate"`
	ApprovedBy   string            `json:"ApprovedBy"`
	ApprovedDate string            `json:"ApprovedDate"`
	PriorityName string            `json:"PriorityName"`
	Items        []RequisitionItem `json:"Items"`
}

func (RequisitionPayload) Tag() ModuleTag { return TagRequisition }

// QuotationRequestPayload carries an RFQ with the requisition items it quotes.
type QuotationRequestPayload struct {
	Module          ModuleTag              `json:"module"`
	RFQCode         string                 `json:"RFQCode"`
	PRCode          string                 `json:"PRCode"`
	ExpectedDate    string                 `json:"ExpectedDate"`
	Description     string                 `json:"Description"`
	AddedBy         string                 `json:"AddedBy"`
	AddedDate       string                 `json:"AddedDate"`
	AccountantName  string                 `json:"AccountantName"`
	AccountantEmail string                 `json:"AccountantEmail"`
	DeliveryAddress string                 `json:"DeliveryAddress"`
	Items           []QuotationRequestItem `json:"Items"`
}

func (QuotationRequestPayload) Tag() ModuleTag { return TagQuotationRequest }

// QuotationRegistrationPayload is bucket-keyed: one event per registration
// date, embedding every quotation registered that day.
type QuotationRegistrationPayload struct {
	Module ModuleTag                   `json:"module"`
	Items  []QuotationRegistrationLine `json:"Items"`
}

func (QuotationRegistrationPayload) Tag() ModuleTag { return TagQuotationRegistration }

// OrderPayload carries a purchase order with items and agreed terms.
type OrderPayload struct {
	Module          ModuleTag       `json:"module"`
	POCode          string          `json:"POCode"`
	StatusName      string          `json:"StatusName"`
	AddedDate       string          `json:"AddedDate"`
	ApprovedDate    string          `json:"ApprovedDate"`
	TotalAmount     decimal.Decimal `json:"TotalAmount"`
	BillingAddress  string          `json:"BillingAddress"`
	VendorName      string          `json:"VendorName"`
	AddedBy         string          `json:"AddedBy"`
	ApprovedBy      string          `json:"ApprovedBy"`
	AccountantName  string          `json:"AccountantName"`
	ShippingCharges decimal.Decimal `json:"ShippingCharges"`
	Items           []OrderItem     `json:"Items"`
	TermConditions  []string        `json:"TermConditions"`
}

func (OrderPayload) Tag() ModuleTag { return TagOrder }

// ReceiptPayload carries a goods receipt note with received items.
type ReceiptPayload struct {
	Module          ModuleTag       `json:"module"`
	POCode          string          `json:"POCode"`
	GRNCode         string          `json:"GRNCode"`
	PODate          string          `json:"PODate"`
	GRNDate         string          `json:"GRNDate"`
	InvoiceDate     string          `json:"InvoiceDate"`
	VendorName      string          `json:"VendorName"`
	InvoiceCode     string          `json:"InvoiceCode"`
	CompanyAddress  string          `json:"CompanyAddress"`
	BillingAddress  string          `json:"BillingAddress"`
	StatusName      string          `json:"StatusName"`
	TotalAmount     decimal.Decimal `json:"TotalAmount"`
	ShippingCharges decimal.Decimal `json:"ShippingCharges"`
	Items           []ReceiptItem   `json:"Items"`
}

func (ReceiptPayload) Tag() ModuleTag { return TagReceipt }

// ReturnPayload carries a goods return with the rejected items.
type ReturnPayload struct {
	Module             ModuleTag    `json:"module"`
	GoodsReturnCode    string       `json:"GoodsReturnCode"`
	GRNCode            string       `json:"GRNCode"`
	TransporterName    string       `json:"TransporterName"`
	TransportContactNo string       `json:"TransportContactNo"`
	VehicleNo          string       `json:"VehicleNo"`
	VehicleType        string       `json:"VehicleType"`
	Reason             string       `json:"Reason"`
	AddedBy            string       `json:"AddedBy"`
	AddedDate          string       `json:"AddedDate"`
	StatusName         string       `json:"StatusName"`
	Items              []ReturnItem `json:"Items"`
}

func (ReturnPayload) Tag() ModuleTag { return TagReturn }

// QualityCheckPayload is bucket-keyed by (date, status): one event per
// bucket, embedding every inspected item in it.
type QualityCheckPayload struct {
	Module ModuleTag          `json:"module"`
	Items  []QualityCheckLine `json:"Items"`
}

func (QualityCheckPayload) Tag() ModuleTag { return TagQualityCheck }

// StockRefillPayload is bucket-keyed by (date, requesting staff).
type StockRefillPayload struct {
	Module ModuleTag      `json:"module"`
	Items  []PlanningLine `json:"Items"`
}

func (StockRefillPayload) Tag() ModuleTag { return TagStockRefill }

// JustInTimePayload is bucket-keyed by (date, requesting staff).
type JustInTimePayload struct {
	Module ModuleTag      `json:"module"`
	Items  []PlanningLine `json:"Items"`
}

func (JustInTimePayload) Tag() ModuleTag { return TagJustInTime }

// MaterialPlanningPayload carries a material requirement plan with the
// items it covers.
type MaterialPlanningPayload struct {
	Module                  ModuleTag              `json:"module"`
	MaterialReqPlanningCode string                 `json:"MaterialReqPlanningCode"`
	PlanName                string                 `json:"PlanName"`
	PlanYear                int                    `json:"PlanYear"`
	FromDate                string                 `json:"FromDate"`
	ToDate                  string                 `json:"ToDate"`
	StatusName              string                 `json:"StatusName"`
	AddedBy                 string                 `json:"AddedBy"`
	AddedDate               string                 `json:"AddedDate"`
	ApprovedBy              string                 `json:"ApprovedBy"`
	ApprovedDate            string                 `json:"ApprovedDate"`
	Reason                  string                 `json:"Reason"`
	Items                   []MaterialPlanningItem `json:"Items"`
}

func (MaterialPlanningPayload) Tag() ModuleTag { return TagMaterialPlanning }
