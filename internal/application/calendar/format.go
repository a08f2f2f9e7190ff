package calendar

import "time"

// Event colors, one stable assignment per module tag.
const (
	colorRequisition           = "#007bff"
	colorQuotationRequest      = "#17a2b8"
	colorQuotationRegistration = "#6f42c1"
	colorOrder                 = "#fd7e14"
	colorReceipt               = "#28a745"
	colorReturn                = "#ffc107"
	colorQualityCheck          = "#dc3545"
	colorStockRefill           = "#6610f2"
	colorJustInTime            = "#0d6efd"
	colorMaterialPlanning      = "#20c997"
)

const (
	startStampLayout  = "2006-01-02T15:04:05"
	startDateLayout   = "2006-01-02"
	payloadDateLayout = "02/01/2006"
	bucketKeyLayout   = "20060102"
)

// startStamp formats the placement timestamp of a document-keyed event.
func startStamp(t time.Time) string {
	return t.Format(startStampLayout)
}

// startDate formats the placement date of a bucket-keyed event.
func startDate(t time.Time) string {
	return t.Format(startDateLayout)
}

// payloadDate formats an optional record date for the event payload.
func payloadDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(payloadDateLayout)
}

// pluralSuffix and countVerb build bucket titles like
// "3 Quotations Are Registered By ..." / "1 Quotation Is Registered By ...".
func pluralSuffix(n int) string {
	if n != 1 {
		return "s"
	}
	return ""
}

func countVerb(n int) string {
	if n != 1 {
		return "Are"
	}
	return "Is"
}
