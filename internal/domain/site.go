package domain

import "time"

// SiteType classifies a tourism site. Every site has exactly one type.
type SiteType string

const (
	SiteTypeNature    SiteType = "nature"
	SiteTypeWater     SiteType = "water"
	SiteTypeReligious SiteType = "religious"
)

// SiteTypes lists the types in fixed enumeration order.
var SiteTypes = []SiteType{SiteTypeNature, SiteTypeWater, SiteTypeReligious}

// IsValid reports whether t is a known site type.
func (t SiteType) IsValid() bool {
	switch t {
	case SiteTypeNature, SiteTypeWater, SiteTypeReligious:
		return true
	}
	return false
}

// Label returns the Indonesian display name used on the dashboard.
func (t SiteType) Label() string {
	switch t {
	case SiteTypeNature:
		return "Wisata Alam"
	case SiteTypeWater:
		return "Wisata Air"
	case SiteTypeReligious:
		return "Wisata Religi"
	}
	return string(t)
}

// Risk is a disaster-risk flag attached to a site.
type Risk string

const (
	RiskWaterAccident Risk = "water_accident"
	RiskFlood         Risk = "flood"
	RiskLandslide     Risk = "landslide"
)

// Risks lists the known risks in fixed enumeration order.
var Risks = []Risk{RiskWaterAccident, RiskFlood, RiskLandslide}

// IsValid reports whether r is a known risk.
func (r Risk) IsValid() bool {
	switch r {
	case RiskWaterAccident, RiskFlood, RiskLandslide:
		return true
	}
	return false
}

// Label returns the Indonesian display name for a risk badge.
func (r Risk) Label() string {
	switch r {
	case RiskWaterAccident:
		return "Kecelakaan Air"
	case RiskFlood:
		return "Banjir"
	case RiskLandslide:
		return "Longsor"
	}
	return string(r)
}

// RiskSafeLabel is shown in place of badges when a site carries no risks.
const RiskSafeLabel = "Aman"

// NormalizeRisks drops unknown values and duplicates while preserving the
// first-seen order. An empty result means the site is considered safe.
func NormalizeRisks(in []Risk) []Risk {
	out := make([]Risk, 0, len(in))
	seen := make(map[Risk]struct{}, len(in))
	for _, r := range in {
		if !r.IsValid() {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// TouristSite is one registered tourism site in the regency.
type TouristSite struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Village   string    `json:"village" db:"village"`
	District  District  `json:"district" db:"district"`
	Type      SiteType  `json:"type" db:"type"`
	Capacity  int       `json:"capacity" db:"capacity"`
	Risks     []Risk    `json:"risks" db:"risks"`
	Latitude  string    `json:"latitude,omitempty" db:"latitude"`
	Longitude string    `json:"longitude,omitempty" db:"longitude"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RiskLabel renders the site's risk set for display: a comma-joined badge
// list, or "Aman" when the set is empty.
func (s *TouristSite) RiskLabel() string {
	if len(s.Risks) == 0 {
		return RiskSafeLabel
	}
	label := ""
	for i, r := range s.Risks {
		if i > 0 {
			label += ", "
		}
		label += r.Label()
	}
	return label
}

// HasRisk reports whether the site carries the given risk.
func (s *TouristSite) HasRisk(r Risk) bool {
	for _, have := range s.Risks {
		if have == r {
			return true
		}
	}
	return false
}
