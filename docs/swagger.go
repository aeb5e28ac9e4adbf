// Package docs Tourism Site Registry API.
//
// Data-entry and dashboard service for tourism sites in the regency.
// Records carry name, village, district, type, capacity, disaster risks and
// optional coordinates; the dashboard aggregates them per district and type
// and plots each record on the map, falling back to district centroids when
// a record has no usable coordinates.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs

// The served specification is generated from the handler annotations, not
// committed. Regenerate it into this package before building a release:
//
//	swag init -g cmd/api/main.go -o docs
