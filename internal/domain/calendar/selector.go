package calendar

// stockPlanningMatrix decides which stock-planning sources join the feed
// when the StockPlanning permission is held, keyed by (hasRequisition,
// hasOrder). The "both" and "neither" rows are identical; that duplication
// is established selection policy and is pinned by tests, so keep the four
// rows spelled out.
var stockPlanningMatrix = map[[2]bool][]ModuleTag{
	{true, true}:   {TagStockRefill, TagMaterialPlanning, TagJustInTime},
	{true, false}:  {TagStockRefill, TagMaterialPlanning},
	{false, true}:  {TagJustInTime},
	{false, false}: {TagStockRefill, TagMaterialPlanning, TagJustInTime},
}

// SelectSources maps a permission set to the ordered list of module tags to
// aggregate: stock-planning sources first (if StockPlanning is held), then
// the directly permission-gated modules in the set's resolution order.
// Permission names that match no module are ignored.
func SelectSources(perms PermissionSet) []ModuleTag {
	var tags []ModuleTag

	if perms.Has(PermissionStockPlanning) {
		key := [2]bool{perms.Has(string(TagRequisition)), perms.Has(string(TagOrder))}
		tags = append(tags, stockPlanningMatrix[key]...)
	}

	for _, name := range perms.Names() {
		switch tag := ModuleTag(name); tag {
		case TagRequisition, TagQuotationRequest, TagQuotationRegistration,
			TagOrder, TagReceipt, TagReturn, TagQualityCheck:
			tags = append(tags, tag)
		}
	}

	return tags
}
