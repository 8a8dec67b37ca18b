package services

import (
	"testing"

	"wareflow-app/models"
	"wareflow-app/wms/master/division"

	"github.com/stretchr/testify/assert"
)

func testMasterRef() *MasterRef {
	locations := []models.Location{
		{LocationCode: "EST-A", Name: "Estate A"},
		{LocationCode: "EST-B", Name: "Estate B"},
	}
	sectors := []models.Sector{
		{SectorCode: "SEC-01", Name: "Sector One", LocationCode: "EST-A"},
	}
	divisions := []division.Division{
		{Code: "DIV-001", Name: "Plantation"},
	}
	return NewMasterRef(locations, sectors, divisions)
}

func TestMasterRefResolvesCodeAndName(t *testing.T) {
	ref := testMasterRef()

	assert.Equal(t, "EST-A", ref.LocationCode("EST-A"))
	assert.Equal(t, "EST-A", ref.LocationCode("Estate A"))
	assert.Equal(t, "EST-A", ref.LocationCode("  estate a "))
	assert.Equal(t, "SEC-01", ref.SectorCode("sector one"))
	assert.Equal(t, "DIV-001", ref.DivisionCode("PLANTATION"))
}

func TestMasterRefUnknownReferenceIsEmpty(t *testing.T) {
	ref := testMasterRef()

	assert.Equal(t, "", ref.LocationCode("Estate Z"))
	assert.Equal(t, "", ref.DivisionCode(""))
}

func TestNormalizeMachines(t *testing.T) {
	ref := testMasterRef()

	machines := ref.NormalizeMachines([]models.Machine{
		{MachineCode: "M-01", LocationCode: "Estate A", SectorCode: "Sector One", DivisionCode: "plantation"},
		{MachineCode: "M-02", LocationCode: "Estate Z", SectorCode: "", DivisionCode: ""},
	})

	assert.Equal(t, "EST-A", machines[0].LocationCode)
	assert.Equal(t, "SEC-01", machines[0].SectorCode)
	assert.Equal(t, "DIV-001", machines[0].DivisionCode)

	// Unresolved references become empty and never match a scope.
	assert.Equal(t, "", machines[1].LocationCode)
}

func TestPlannedItemsEmptyLocationYieldsEmptySet(t *testing.T) {
	machines := []models.Machine{
		{MachineCode: "M-01", LocationCode: "EST-A", Category: "Tractor", ModelNo: "T-100"},
	}
	bom := []models.BOMRecord{
		{ModelNo: "T-100", ItemCode: "ITM-001"},
	}

	planned := PlannedItems(machines, bom, "", "", "")
	assert.Empty(t, planned)
}

func TestPlannedItemsModelAndCategoryUnion(t *testing.T) {
	machines := []models.Machine{
		{MachineCode: "M-01", LocationCode: "EST-A", SectorCode: "SEC-01", DivisionCode: "DIV-001", Category: "Tractor", ModelNo: "T-100"},
		{MachineCode: "M-02", LocationCode: "EST-A", SectorCode: "SEC-01", DivisionCode: "DIV-001", Category: "Pump", ModelNo: ""},
		{MachineCode: "M-03", LocationCode: "EST-B", SectorCode: "SEC-03", DivisionCode: "DIV-001", Category: "Harvester", ModelNo: "H-200"},
	}
	bom := []models.BOMRecord{
		{ModelNo: "T-100", ItemCode: "ITM-OIL"},            // matches by model
		{MachineCategory: "Pump", ItemCode: "ITM-SEAL"},    // matches by category
		{ModelNo: "H-200", ItemCode: "ITM-BLADE"},          // other location
		{MachineCategory: "Crane", ItemCode: "ITM-CABLE"},  // no machine in scope
	}

	planned := PlannedItems(machines, bom, "EST-A", "", "")

	assert.True(t, planned["ITM-OIL"])
	assert.True(t, planned["ITM-SEAL"])
	assert.False(t, planned["ITM-BLADE"])
	assert.False(t, planned["ITM-CABLE"])
}

func TestPlannedItemsSectorAndDivisionNarrowScope(t *testing.T) {
	machines := []models.Machine{
		{MachineCode: "M-01", LocationCode: "EST-A", SectorCode: "SEC-01", DivisionCode: "DIV-001", ModelNo: "T-100"},
		{MachineCode: "M-02", LocationCode: "EST-A", SectorCode: "SEC-02", DivisionCode: "DIV-002", ModelNo: "P-300"},
	}
	bom := []models.BOMRecord{
		{ModelNo: "T-100", ItemCode: "ITM-OIL"},
		{ModelNo: "P-300", ItemCode: "ITM-HOSE"},
	}

	planned := PlannedItems(machines, bom, "EST-A", "SEC-01", "DIV-001")

	assert.True(t, planned["ITM-OIL"])
	assert.False(t, planned["ITM-HOSE"])
}
