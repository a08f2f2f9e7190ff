package calendar

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentHeader is the list-stage row for document-keyed modules: one row
// per business document, identified by its code.
type DocumentHeader struct {
	Code      string
	AddedBy   string
	AddedDate time.Time
	// EndDate is only populated by sources that span a range
	// (quotation requests carry their expected date).
	EndDate *time.Time
}

// BucketHeader is the list-stage row for bucket-keyed modules: one row per
// (date, secondary key) group, carrying the number of documents in the
// bucket. Status is set for quality checks, StaffCode for stock-planning
// requests.
type BucketHeader struct {
	Count     int
	Date      time.Time
	Status    string
	StaffCode string
	AddedBy   string
}

// Key returns the bucket's secondary key, empty for date-only buckets.
func (h BucketHeader) Key() string {
	if h.Status != "" {
		return h.Status
	}
	return h.StaffCode
}

// RequisitionItem is one requisition line. Shared between the detail record
// and the event payload; it carries no date columns.
type RequisitionItem struct {
	PRCode           string `json:"PRCode"`
	PRItemCode       string `json:"PRItemCode"`
	ItemCode         string `json:"ItemCode"`
	ItemName         string `json:"ItemName"`
	RequiredQuantity int    `json:"RequiredQuantity"`
}

// RequisitionDetail is the full record for one purchase requisition.
type RequisitionDetail struct {
	PRCode       string
	RequiredDate *time.Time
	StatusName   string
	Description  string
	AddedBy      string
	AddedDate    *time.Time
	ApprovedBy   string
	ApprovedDate *time.Time
	PriorityName string
	Items        []RequisitionItem
}

// QuotationRequestItem is one RFQ line.
type QuotationRequestItem struct {
	RFQCode          string `json:"RFQCode"`
	PRItemCode       string `json:"PRItemCode"`
	ItemCode         string `json:"ItemCode"`
	ItemName         string `json:"ItemName"`
	RequiredQuantity int    `json:"RequiredQuantity"`
}

// QuotationRequestDetail is the full record for one request for quotation.
type QuotationRequestDetail struct {
	RFQCode         string
	PRCode          string
	AddedBy         string
	AddedDate       *time.Time
	ExpectedDate    *time.Time
	Description     string
	AccountantName  string
	AccountantEmail string
	DeliveryAddress string
	Items           []QuotationRequestItem
}

// QuotationRegistrationRecord is one registered quotation within a date
// bucket, as read from the store.
type QuotationRegistrationRecord struct {
	RegisterQuotationCode string
	RFQCode               string
	VendorName            string
	DeliveryDate          *time.Time
	StatusName            string
	AddedBy               string
	ApprovedBy            string
	AddedDate             *time.Time
	ApprovedDate          *time.Time
	ShippingCharges       decimal.Decimal
}

// QuotationRegistrationLine is the payload form of one registered quotation.
type QuotationRegistrationLine struct {
	RegisterQuotationCode string          `json:"RegisterQuotationCode"`
	RFQCode               string          `json:"RFQCode"`
	VendorName            string          `json:"VendorName"`
	StatusName            string          `json:"StatusName"`
	AddedBy               string          `json:"AddedBy"`
	DeliveryDate          string          `json:"DeliveryDate"`
	AddedDate             string          `json:"AddedDate"`
	ApprovedBy            string          `json:"ApprovedBy"`
	ApprovedDate          string          `json:"ApprovedDate"`
	ShippingCharges       decimal.Decimal `json:"ShippingCharges"`
}

// OrderItem is one purchase order line.
type OrderItem struct {
	POCode      string          `json:"POCode"`
	POItemCode  string          `json:"POItemCode"`
	RQItemCode  string          `json:"RQItemCode"`
	ItemCode    string          `json:"ItemCode"`
	ItemName    string          `json:"ItemName"`
	CostPerUnit decimal.Decimal `json:"CostPerUnit"`
	Discount    int             `json:"Discount"`
	Quantity    int64           `json:"Quantity"`
	StatusName  string          `json:"StatusName"`
}

// OrderDetail is the full record for one purchase order, including the
// third result set of agreed terms and conditions.
type OrderDetail struct {
	POCode          string
	StatusName      string
	AddedDate       *time.Time
	ApprovedDate    *time.Time
	TotalAmount     decimal.Decimal
	BillingAddress  string
	VendorName      string
	AddedBy         string
	ApprovedBy      string
	ShippingCharges decimal.Decimal
	AccountantName  string
	Items           []OrderItem
	TermConditions  []string
}

// ReceiptItem is one received line on a goods receipt note.
type ReceiptItem struct {
	GRNCode     string          `json:"GRNCode"`
	GRNItemCode string          `json:"GRNItemCode"`
	ItemCode    string          `json:"ItemCode"`
	ItemName    string          `json:"ItemName"`
	Quantity    int64           `json:"Quantity"`
	CostPerUnit decimal.Decimal `json:"CostPerUnit"`
	Discount    int             `json:"Discount"`
	TaxRate     string          `json:"TaxRate"`
	FinalAmount decimal.Decimal `json:"FinalAmount"`
}

// ReceiptDetail is the full record for one goods receipt note.
type ReceiptDetail struct {
	POCode          string
	GRNCode         string
	PODate          *time.Time
	GRNDate         *time.Time
	InvoiceDate     *time.Time
	VendorName      string
	InvoiceCode     string
	CompanyAddress  string
	BillingAddress  string
	StatusName      string
	TotalAmount     decimal.Decimal
	ShippingCharges decimal.Decimal
	Items           []ReceiptItem
}

// ReturnItem is one rejected line on a goods return.
type ReturnItem struct {
	GRItemCode string `json:"GRItemCode"`
	ItemCode   string `json:"ItemCode"`
	ItemName   string `json:"ItemName"`
	Reason     string `json:"Reason"`
}

// ReturnDetail is the full record for one goods return.
type ReturnDetail struct {
	GoodsReturnCode    string
	GRNCode            string
	TransporterName    string
	TransportContactNo string
	VehicleNo          string
	VehicleType        string
	Reason             string
	AddedBy            string
	AddedDate          *time.Time
	StatusName         string
	Items              []ReturnItem
}

// QualityCheckRecord is one inspected item within a (date, status) bucket,
// as read from the store.
type QualityCheckRecord struct {
	QualityCheckCode     string
	StatusName           string
	GRNItemsCode         string
	ItemCode             string
	ItemName             string
	Quantity             int64
	InspectionFrequency  int
	SampleQualityChecked int64
	SampleTestFailed     int64
	QCAddedBy            string
	QCAddedDate          *time.Time
	QCFailedAddedBy      string
	QCFailedDate         *time.Time
	Reason               string
}

// QualityCheckLine is the payload form of one inspected item.
type QualityCheckLine struct {
	QualityCheckCode     string `json:"QualityCheckCode"`
	StatusName           string `json:"StatusName"`
	GRNItemsCode         string `json:"GRNItemsCode"`
	ItemCode             string `json:"ItemCode"`
	ItemName             string `json:"ItemName"`
	Quantity             int64  `json:"Quantity"`
	InspectionFrequency  int    `json:"InspectionFrequency"`
	SampleQualityChecked int64  `json:"SampleQualityChecked"`
	SampleTestFailed     int64  `json:"SampleTestFailed"`
	QCAddedBy            string `json:"QCAddedBy"`
	QCAddedDate          string `json:"QCAddedDate"`
	QCFailedAddedBy      string `json:"QCFailedAddedBy"`
	QCFailedDate         string `json:"QCFailedDate"`
	Reason               string `json:"Reason"`
}

// PlanningRecord is one requested item within a (date, staff) bucket of
// either the stock-refill or just-in-time source.
type PlanningRecord struct {
	ItemCode     string
	ItemName     string
	Quantity     int64
	RequiredDate *time.Time
	StatusName   string
	AddedBy      string
	AddedDate    *time.Time
}

// PlanningLine is the payload form of one requested item.
type PlanningLine struct {
	ItemCode     string `json:"ItemCode"`
	ItemName     string `json:"ItemName"`
	Quantity     int64  `json:"Quantity"`
	RequiredDate string `json:"RequiredDate"`
	StatusName   string `json:"StatusName"`
	AddedBy      string `json:"AddedBy"`
	AddedDate    string `json:"AddedDate"`
}

// MaterialPlanningItem is one planned line item.
type MaterialPlanningItem struct {
	IssueItemsID int    `json:"IssueItemsId"`
	ItemCode     string `json:"ItemCode"`
	ItemName     string `json:"ItemName"`
	Quantity     int64  `json:"Quantity"`
}

// MaterialPlanningDetail is the full record for one material requirement plan.
type MaterialPlanningDetail struct {
	MaterialReqPlanningCode string
	PlanName                string
	PlanYear                int
	FromDate                *time.Time
	ToDate                  *time.Time
	StatusName              string
	AddedBy                 string
	AddedDate               *time.Time
	ApprovedBy              string
	ApprovedDate            *time.Time
	Reason                  string
	Items                   []MaterialPlanningItem
}
