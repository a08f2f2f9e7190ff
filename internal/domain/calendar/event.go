package calendar

// ModuleTag identifies one of the ten event sources feeding the calendar.
// For the seven permission-gated modules the tag doubles as the permission
// name returned by the permission store, and for all ten it is the
// discriminator serialized into the event payload.
type ModuleTag string

const (
	TagRequisition           ModuleTag = "PurchaseRequisition"
	TagQuotationRequest      ModuleTag = "RequestForQuotation"
	TagQuotationRegistration ModuleTag = "RegisterQuotation"
	TagOrder                 ModuleTag = "PurchaseOrder"
	TagReceipt               ModuleTag = "GRNInfo"
	TagReturn                ModuleTag = "GoodsReturnInfo"
	TagQualityCheck          ModuleTag = "QualityCheckInfo"
	TagStockRefill           ModuleTag = "ItemStockRefill"
	TagJustInTime            ModuleTag = "JustInTime"
	TagMaterialPlanning      ModuleTag = "MaterialReqPlanningInfo"
)

// PermissionStockPlanning gates the three stock-planning sources
// (StockRefill, MaterialPlanning, JustInTime) as a group; which of the
// three are actually included depends on the other permissions held,
// see SelectSources.
const PermissionStockPlanning = "StockPlanning"

// Event is the uniform calendar feed unit. Start and End are pre-formatted
// for the calendar surface: document-keyed modules use a full timestamp,
// bucket-keyed modules a bare date. ID is unique within one feed: the
// business code for document-keyed modules, a synthesized tag+bucket key
// otherwise.
type Event struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Start         string  `json:"start"`
	End           string  `json:"end,omitempty"`
	Color         string  `json:"color"`
	ExtendedProps Payload `json:"extendedProps"`
}

// Payload is the module-specific part of an event. Exactly one concrete
// payload type exists per ModuleTag; consumers dispatch on the serialized
// "module" field.
type Payload interface {
	Tag() ModuleTag
}
