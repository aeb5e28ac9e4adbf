package dto

import (
	"time"

	"github.com/tourism-registry/internal/domain"
)

// SiteResponse is a single tourism-site record as the dashboard table shows
// it: raw fields plus display labels.
type SiteResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Village   string          `json:"village"`
	District  domain.District `json:"district"`
	Type      domain.SiteType `json:"type"`
	TypeLabel string          `json:"type_label"`
	Capacity  int             `json:"capacity"`
	Risks     []domain.Risk   `json:"risks"`
	RiskLabel string          `json:"risk_label"`
	Latitude  string          `json:"latitude,omitempty"`
	Longitude string          `json:"longitude,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewSiteResponse maps a domain record to its response shape.
func NewSiteResponse(s *domain.TouristSite) SiteResponse {
	risks := s.Risks
	if risks == nil {
		risks = []domain.Risk{}
	}
	return SiteResponse{
		ID:        s.ID,
		Name:      s.Name,
		Village:   s.Village,
		District:  s.District,
		Type:      s.Type,
		TypeLabel: s.Type.Label(),
		Capacity:  s.Capacity,
		Risks:     risks,
		RiskLabel: s.RiskLabel(),
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		CreatedAt: s.CreatedAt,
	}
}

// NewSiteListResponse maps a record list, preserving order.
func NewSiteListResponse(sites []domain.TouristSite) []SiteResponse {
	out := make([]SiteResponse, 0, len(sites))
	for i := range sites {
		out = append(out, NewSiteResponse(&sites[i]))
	}
	return out
}

// DistrictResponse is one entry of GET /api/v1/districts.
type DistrictResponse struct {
	Name     domain.District `json:"name"`
	Centroid domain.Point    `json:"centroid"`
}

// NewDistrictListResponse lists every district with its centroid in fixed
// enumeration order.
func NewDistrictListResponse() []DistrictResponse {
	out := make([]DistrictResponse, 0, len(domain.Districts))
	for _, d := range domain.Districts {
		centroid, _ := d.Centroid()
		out = append(out, DistrictResponse{Name: d, Centroid: centroid})
	}
	return out
}
