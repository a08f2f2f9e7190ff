package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setOf(names ...string) PermissionSet {
	perms := make([]Permission, 0, len(names))
	for _, n := range names {
		perms = append(perms, Permission{Name: n})
	}
	return NewPermissionSet(perms)
}

func TestSelectSources_StockPlanningMatrix(t *testing.T) {
	tests := []struct {
		name     string
		perms    PermissionSet
		expected []ModuleTag
	}{
		{
			name:     "stock planning with requisition and order keeps all three",
			perms:    setOf(PermissionStockPlanning, string(TagRequisition), string(TagOrder)),
			expected: []ModuleTag{TagStockRefill, TagMaterialPlanning, TagJustInTime},
		},
		{
			name:     "stock planning with requisition only drops just in time",
			perms:    setOf(PermissionStockPlanning, string(TagRequisition)),
			expected: []ModuleTag{TagStockRefill, TagMaterialPlanning},
		},
		{
			name:     "stock planning with order only keeps just in time only",
			perms:    setOf(PermissionStockPlanning, string(TagOrder)),
			expected: []ModuleTag{TagJustInTime},
		},
		{
			name:     "stock planning alone keeps all three",
			perms:    setOf(PermissionStockPlanning),
			expected: []ModuleTag{TagStockRefill, TagMaterialPlanning, TagJustInTime},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := SelectSources(tt.perms)
			// Only compare the stock-planning prefix; direct modules follow.
			assert.GreaterOrEqual(t, len(tags), len(tt.expected))
			assert.Equal(t, tt.expected, tags[:len(tt.expected)])
		})
	}
}

func TestSelectSources_MatrixRowDuplication(t *testing.T) {
	// The "both" and "neither" rows of the matrix resolve to the same
	// inclusion set. This is established policy, not an accident of the
	// implementation; pin it.
	both := SelectSources(setOf(PermissionStockPlanning, string(TagRequisition), string(TagOrder)))
	neither := SelectSources(setOf(PermissionStockPlanning))

	assert.Equal(t,
		[]ModuleTag{TagStockRefill, TagMaterialPlanning, TagJustInTime},
		both[:3])
	assert.Equal(t,
		[]ModuleTag{TagStockRefill, TagMaterialPlanning, TagJustInTime},
		neither)
}

func TestSelectSources_WithoutStockPlanning(t *testing.T) {
	tags := SelectSources(setOf(string(TagRequisition), string(TagOrder)))

	assert.NotContains(t, tags, TagStockRefill)
	assert.NotContains(t, tags, TagMaterialPlanning)
	assert.NotContains(t, tags, TagJustInTime)
	assert.Equal(t, []ModuleTag{TagRequisition, TagOrder}, tags)
}

func TestSelectSources_DirectModulesFollowResolutionOrder(t *testing.T) {
	tags := SelectSources(setOf(
		string(TagQualityCheck),
		PermissionStockPlanning,
		string(TagReceipt),
		string(TagRequisition),
	))

	assert.Equal(t, []ModuleTag{
		TagStockRefill, TagMaterialPlanning, // PR without PO
		TagQualityCheck, TagReceipt, TagRequisition,
	}, tags)
}

func TestSelectSources_UnknownNamesIgnored(t *testing.T) {
	tags := SelectSources(setOf("VendorManagement", "SomethingElse"))
	assert.Empty(t, tags)
}

func TestSelectSources_EmptySet(t *testing.T) {
	assert.Empty(t, SelectSources(NewPermissionSet(nil)))
}
