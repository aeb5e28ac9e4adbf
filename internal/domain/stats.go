package domain

// DistrictFilter scopes dashboard computations to one district, or to the
// whole regency with the "all" sentinel.
type DistrictFilter string

// FilterAll selects every district.
const FilterAll DistrictFilter = "all"

// IsValid reports whether the filter is "all" or a known district name.
func (f DistrictFilter) IsValid() bool {
	return f == FilterAll || District(f).IsValid()
}

// Matches reports whether a site falls inside the filter.
func (f DistrictFilter) Matches(s *TouristSite) bool {
	return f == FilterAll || s.District == District(f)
}

// TypeCount is one entry of the per-type breakdown.
type TypeCount struct {
	Type  SiteType `json:"type"`
	Label string   `json:"label"`
	Count int      `json:"count"`
}

// DistrictCount is one entry of the per-district grid.
type DistrictCount struct {
	District District `json:"district"`
	Count    int      `json:"count"`
}

// DashboardStats carries every aggregate the dashboard renders. All values
// are derived from the filtered subset only.
type DashboardStats struct {
	Filter           DistrictFilter  `json:"filter"`
	TotalCount       int             `json:"total_count"`
	TotalCapacity    int             `json:"total_capacity"`
	CountsByType     []TypeCount     `json:"counts_by_type"`
	CountsByDistrict []DistrictCount `json:"counts_by_district"`
}

// Aggregate computes dashboard statistics from a record list and a district
// filter. It is a pure function: no caching, no side effects, recomputed in
// full on every call. An empty input yields all-zero stats.
//
// CountsByType always holds one entry per site type in enumeration order.
// CountsByDistrict holds all 19 districts in enumeration order when the
// filter is "all" (zero counts included), or the single filtered district
// otherwise.
func Aggregate(sites []TouristSite, filter DistrictFilter) DashboardStats {
	stats := DashboardStats{
		Filter:       filter,
		CountsByType: make([]TypeCount, 0, len(SiteTypes)),
	}

	byType := make(map[SiteType]int, len(SiteTypes))
	byDistrict := make(map[District]int, len(Districts))

	for i := range sites {
		s := &sites[i]
		if !filter.Matches(s) {
			continue
		}
		stats.TotalCount++
		stats.TotalCapacity += s.Capacity
		byType[s.Type]++
		byDistrict[s.District]++
	}

	for _, t := range SiteTypes {
		stats.CountsByType = append(stats.CountsByType, TypeCount{
			Type:  t,
			Label: t.Label(),
			Count: byType[t],
		})
	}

	if filter == FilterAll {
		stats.CountsByDistrict = make([]DistrictCount, 0, len(Districts))
		for _, d := range Districts {
			stats.CountsByDistrict = append(stats.CountsByDistrict, DistrictCount{
				District: d,
				Count:    byDistrict[d],
			})
		}
	} else {
		d := District(filter)
		stats.CountsByDistrict = []DistrictCount{{District: d, Count: byDistrict[d]}}
	}

	return stats
}

// FilterSites returns the subset of sites matching the filter, preserving
// order.
func FilterSites(sites []TouristSite, filter DistrictFilter) []TouristSite {
	if filter == FilterAll {
		return sites
	}
	out := make([]TouristSite, 0, len(sites))
	for i := range sites {
		if filter.Matches(&sites[i]) {
			out = append(out, sites[i])
		}
	}
	return out
}
