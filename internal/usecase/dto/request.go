package dto

// CreateSiteRequest is the payload of POST /api/v1/sites. Capacity arrives
// as a string because the entry form submits raw text; non-numeric input is
// coerced to 0 rather than rejected.
type CreateSiteRequest struct {
	Name      string   `json:"name" validate:"required"`
	Village   string   `json:"village" validate:"required"`
	District  string   `json:"district"`
	Type      string   `json:"type" validate:"required"`
	Capacity  string   `json:"capacity"`
	Risks     []string `json:"risks"`
	Latitude  string   `json:"latitude"`
	Longitude string   `json:"longitude"`
}
