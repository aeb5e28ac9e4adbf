package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tourism-registry/internal/domain"
)

func sampleSites() []domain.TouristSite {
	return []domain.TouristSite{
		{ID: "1", Name: "Bledug Kuwu", Village: "Kuwu", District: domain.DistrictKradenan, Type: domain.SiteTypeNature, Capacity: 500},
		{ID: "2", Name: "Waduk Kedungombo", Village: "Rambat", District: domain.DistrictGeyer, Type: domain.SiteTypeWater, Capacity: 1200,
			Risks: []domain.Risk{domain.RiskWaterAccident}},
		{ID: "3", Name: "Makam Ki Ageng Selo", Village: "Selo", District: domain.DistrictTawangharjo, Type: domain.SiteTypeReligious, Capacity: 300},
		{ID: "4", Name: "Air Terjun Widuri", Village: "Kemadohbatur", District: domain.DistrictTawangharjo, Type: domain.SiteTypeNature, Capacity: 150,
			Risks: []domain.Risk{domain.RiskLandslide, domain.RiskFlood}},
	}
}

func TestAggregate_AllFilter(t *testing.T) {
	sites := sampleSites()
	stats := domain.Aggregate(sites, domain.FilterAll)

	assert.Equal(t, 4, stats.TotalCount)
	assert.Equal(t, 2150, stats.TotalCapacity)

	// Type counts sum to the total and keep enumeration order.
	assert.Len(t, stats.CountsByType, 3)
	typeSum := 0
	for i, tc := range stats.CountsByType {
		assert.Equal(t, domain.SiteTypes[i], tc.Type)
		typeSum += tc.Count
	}
	assert.Equal(t, stats.TotalCount, typeSum)
	assert.Equal(t, 2, stats.CountsByType[0].Count) // nature
	assert.Equal(t, 1, stats.CountsByType[1].Count) // water
	assert.Equal(t, 1, stats.CountsByType[2].Count) // religious

	// District grid covers all 19 districts in order, zero counts included.
	assert.Len(t, stats.CountsByDistrict, len(domain.Districts))
	districtSum := 0
	for i, dc := range stats.CountsByDistrict {
		assert.Equal(t, domain.Districts[i], dc.District)
		districtSum += dc.Count
	}
	assert.Equal(t, stats.TotalCount, districtSum)
}

func TestAggregate_DistrictFilter(t *testing.T) {
	sites := sampleSites()
	stats := domain.Aggregate(sites, domain.DistrictFilter(domain.DistrictTawangharjo))

	assert.Equal(t, 2, stats.TotalCount)
	assert.Equal(t, 450, stats.TotalCapacity)

	// Exactly one district entry when a specific district is selected.
	assert.Len(t, stats.CountsByDistrict, 1)
	assert.Equal(t, domain.DistrictTawangharjo, stats.CountsByDistrict[0].District)
	assert.Equal(t, 2, stats.CountsByDistrict[0].Count)

	// Every counted record belongs to the filtered district.
	filtered := domain.FilterSites(sites, domain.DistrictFilter(domain.DistrictTawangharjo))
	assert.Len(t, filtered, 2)
	for _, s := range filtered {
		assert.Equal(t, domain.DistrictTawangharjo, s.District)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	for _, filter := range []domain.DistrictFilter{
		domain.FilterAll,
		domain.DistrictFilter(domain.DistrictPurwodadi),
	} {
		stats := domain.Aggregate(nil, filter)

		assert.Equal(t, 0, stats.TotalCount)
		assert.Equal(t, 0, stats.TotalCapacity)
		for _, tc := range stats.CountsByType {
			assert.Equal(t, 0, tc.Count)
		}
		for _, dc := range stats.CountsByDistrict {
			assert.Equal(t, 0, dc.Count)
		}
	}
}

func TestAggregate_IsPure(t *testing.T) {
	sites := sampleSites()

	first := domain.Aggregate(sites, domain.FilterAll)
	second := domain.Aggregate(sites, domain.FilterAll)

	assert.Equal(t, first, second)
	// The input list is untouched.
	assert.Equal(t, sampleSites(), sites)
}
