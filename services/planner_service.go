package services

import (
	"strings"

	"wareflow-app/models"
	"wareflow-app/wms/master/division"
)

// MasterRef maps loose location/sector/division references (code or display
// name, any case) to canonical codes. Upstream machine data stores either,
// so normalization happens once when master data loads and everything after
// compares codes strictly.
type MasterRef struct {
	locationByKey map[string]string
	sectorByKey   map[string]string
	divisionByKey map[string]string
}

func NewMasterRef(locations []models.Location, sectors []models.Sector, divisions []division.Division) *MasterRef {
	ref := &MasterRef{
		locationByKey: make(map[string]string),
		sectorByKey:   make(map[string]string),
		divisionByKey: make(map[string]string),
	}

	for _, l := range locations {
		ref.locationByKey[refKey(l.LocationCode)] = l.LocationCode
		if l.Name != "" {
			ref.locationByKey[refKey(l.Name)] = l.LocationCode
		}
	}
	for _, s := range sectors {
		ref.sectorByKey[refKey(s.SectorCode)] = s.SectorCode
		if s.Name != "" {
			ref.sectorByKey[refKey(s.Name)] = s.SectorCode
		}
	}
	for _, d := range divisions {
		ref.divisionByKey[refKey(d.Code)] = d.Code
		if d.Name != "" {
			ref.divisionByKey[refKey(d.Name)] = d.Code
		}
	}

	return ref
}

func refKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LocationCode resolves a loose reference, "" when unknown.
func (r *MasterRef) LocationCode(ref string) string {
	return r.locationByKey[refKey(ref)]
}

func (r *MasterRef) SectorCode(ref string) string {
	return r.sectorByKey[refKey(ref)]
}

func (r *MasterRef) DivisionCode(ref string) string {
	return r.divisionByKey[refKey(ref)]
}

// NormalizeMachines rewrites machine references to canonical codes. A
// reference that resolves to nothing becomes "", which simply keeps the
// machine out of any scope match.
func (r *MasterRef) NormalizeMachines(machines []models.Machine) []models.Machine {
	out := make([]models.Machine, len(machines))
	for i, m := range machines {
		m.LocationCode = r.LocationCode(m.LocationCode)
		m.SectorCode = r.SectorCode(m.SectorCode)
		m.DivisionCode = r.DivisionCode(m.DivisionCode)
		out[i] = m
	}
	return out
}

// PlannedItems returns the item codes reachable from the given scope via the
// Machine → BOM → Item chain. Machines are matched on canonical codes; BOM
// rows match when their model number OR machine category appears among the
// scoped machines. The union is deliberate: model numbers are often missing
// upstream and a category hit is better than a false negative.
func PlannedItems(machines []models.Machine, bomRecords []models.BOMRecord, locationCode, sectorCode, divisionCode string) map[string]bool {
	planned := make(map[string]bool)
	if locationCode == "" {
		return planned
	}

	modelSet := make(map[string]bool)
	categorySet := make(map[string]bool)

	for _, m := range machines {
		if m.LocationCode != locationCode {
			continue
		}
		if sectorCode != "" && m.SectorCode != sectorCode {
			continue
		}
		if divisionCode != "" && m.DivisionCode != divisionCode {
			continue
		}
		if m.ModelNo != "" {
			modelSet[m.ModelNo] = true
		}
		if m.Category != "" {
			categorySet[m.Category] = true
		}
	}

	for _, b := range bomRecords {
		if modelSet[b.ModelNo] || categorySet[b.MachineCategory] {
			planned[b.ItemCode] = true
		}
	}

	return planned
}
