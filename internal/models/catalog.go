package models

// ChecklistItem is one audit question. Items are immutable at runtime;
// their position in the catalog is the identity used by answer records.
type ChecklistItem struct {
	Section   string `json:"section"`
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

// Catalog is the ordered checklist. Indices are stable across releases
// so persisted snapshots keep their meaning.
type Catalog []ChecklistItem

// InRange reports whether idx addresses a catalog item.
func (c Catalog) InRange(idx int) bool {
	return idx >= 0 && idx < len(c)
}

// Sections returns the distinct section names in first-appearance order.
func (c Catalog) Sections() []string {
	seen := make(map[string]struct{}, 16)
	sections := make([]string, 0, 16)
	for _, item := range c {
		if _, ok := seen[item.Section]; ok {
			continue
		}
		seen[item.Section] = struct{}{}
		sections = append(sections, item.Section)
	}
	return sections
}

// DefaultCatalog returns the HSA / CIF scaffolding inspection checklist.
func DefaultCatalog() Catalog {
	return Catalog{
		{"Administration & Certification", "Scaffold design/plan available where required for complex or non-standard scaffolds.", "HSA Code of Practice; SI No. 291/2013"},
		{"Administration & Certification", "Hand-over certificate / initial GA3 completed before first use.", "HSA GA3 Form; HSA Code of Practice"},
		{"Administration & Certification", "Scaffold tag system at access points indicates current inspection status.", "CIF / HSA guidance"},
		{"Administration & Certification", "Weekly inspection records (≤7 days) and after alteration, adverse weather, or events.", "HSA Code of Practice; SI No. 291/2013"},
		{"Administration & Certification", "Competence of scaffolders/inspectors verified; training records available.", "HSA Code of Practice; CIF training"},
		{"Administration & Certification", "Scaffold ID/location clearly marked; max duty/loading class displayed.", "HSA Code of Practice"},

		{"Ground & Foundations", "Ground bearing capacity assessed and adequate; no undermining/erosion.", "HSA Code of Practice"},
		{"Ground & Foundations", "Sole boards provided where required and correctly sized/positioned.", "HSA Code of Practice"},
		{"Ground & Foundations", "Base plates/jacks present on all standards; jacks not over-extended; locked.", "HSA Code of Practice"},
		{"Ground & Foundations", "Drainage and protection from soft ground/standing water provided.", "HSA Code of Practice"},

		{"Main Scaffold Structure", "Standards plumb and continuous; joints properly positioned and secured.", "HSA Code of Practice"},
		{"Main Scaffold Structure", "Ledgers/transoms correctly installed to manufacturer/spec; joints staggered.", "HSA Code of Practice"},
		{"Main Scaffold Structure", "All couplers/fixtures correctly tightened; components free from damage/corrosion.", "HSA Code of Practice"},
		{"Main Scaffold Structure", "Base ties and return/stop-end arrangements as per design/spec.", "HSA Code of Practice"},

		{"Bracing & Ties", "Façade and plan bracing installed per design/system requirements.", "HSA Code of Practice"},
		{"Bracing & Ties", "Anchorage/tie pattern and spacing adequate; anchors tested as specified.", "HSA Code of Practice"},
		{"Bracing & Ties", "Records of anchor tests and tie capacities available.", "HSA Code of Practice"},

		{"Platforms & Decking", "Platform width suitable for loading/duty class; working areas unobstructed.", "HSA Code of Practice"},
		{"Platforms & Decking", "Boards/steel decks secured, level, with correct overhang; no damaged boards.", "HSA Code of Practice"},
		{"Platforms & Decking", "No gaps that risk falls of persons or materials; brickguards where required.", "HSA Code of Practice"},

		{"Edge Protection", "Top guardrail, mid-rail (or equivalent) and toeboards fitted to all open edges.", "HSA Code of Practice"},
		{"Edge Protection", "Loading bays fitted with gates and full edge protection; gates self-closing/managed.", "HSA Code of Practice"},
		{"Edge Protection", "Openings/trapdoors protected and kept closed or guarded.", "HSA Code of Practice"},

		{"Access & Egress", "Safe access provided (stair tower or secured ladders) to all working platforms.", "HSA Code of Practice"},
		{"Access & Egress", "Ladders at correct angle, tied/secured, extending sufficiently above landing.", "HSA Code of Practice"},
		{"Access & Egress", "Access routes kept clear; no trip hazards or stored materials.", "HSA Code of Practice"},

		{"Protection & Containment", "Debris netting/brickguards/fans fitted where required and properly fixed.", "HSA Code of Practice"},
		{"Protection & Containment", "Sheeting/netting loads considered in design; additional ties/bracing provided.", "HSA Code of Practice"},
		{"Protection & Containment", "Toe-boards/mesh to prevent materials falling; waste chutes managed.", "HSA Code of Practice"},

		{"Services & Environment", "Safe clearances from overhead power lines/services maintained; permits in place.", "HSA Code of Practice"},
		{"Services & Environment", "Weather conditions monitored (wind, storms); scaffold checked after severe weather.", "HSA Code of Practice"},
		{"Services & Environment", "Public protection in place: barriers, signage, lighting, controlled access.", "HSA Code of Practice"},

		{"Erection/Alteration/Dismantling", "EAD carried out by competent persons using a safe system of work.", "HSA Code of Practice"},
		{"Erection/Alteration/Dismantling", "Collective fall protection maintained; personal fall arrest used where necessary.", "HSA Code of Practice"},
		{"Erection/Alteration/Dismantling", "Exclusion zones set up below during EAD activities.", "HSA Code of Practice"},

		{"Mobile Towers (if applicable)", "Correct base dimensions/outriggers; platform height within ratio limits.", "HSA Code of Practice"},
		{"Mobile Towers (if applicable)", "Castors in good condition and locked; moved only when empty.", "HSA Code of Practice"},
		{"Mobile Towers (if applicable)", "Access provided internally; guardrails and toeboards fitted.", "HSA Code of Practice"},

		{"Close-out", "Outstanding defects recorded with corrective actions and target dates.", "HSA Code of Practice"},
		{"Close-out", "Scaffold tag updated after inspection; users informed of restrictions.", "HSA Code of Practice"},
	}
}
