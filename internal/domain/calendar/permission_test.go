package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPermissionSet(t *testing.T) {
	t.Run("preserves resolution order", func(t *testing.T) {
		s := NewPermissionSet([]Permission{
			{Name: "GRNInfo"},
			{Name: "PurchaseRequisition"},
			{Name: "StockPlanning"},
		})

		assert.Equal(t, []string{"GRNInfo", "PurchaseRequisition", "StockPlanning"}, s.Names())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("drops duplicates and empty names", func(t *testing.T) {
		s := NewPermissionSet([]Permission{
			{Name: "PurchaseOrder"},
			{Name: ""},
			{Name: "PurchaseOrder"},
		})

		assert.Equal(t, []string{"PurchaseOrder"}, s.Names())
		assert.True(t, s.Has("PurchaseOrder"))
		assert.False(t, s.Has(""))
	})

	t.Run("empty input yields empty set", func(t *testing.T) {
		s := NewPermissionSet(nil)
		assert.Zero(t, s.Len())
		assert.False(t, s.Has("PurchaseOrder"))
	})
}
