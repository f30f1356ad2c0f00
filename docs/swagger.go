// Package docs Commute Map API.
//
// Picks an office, scatters candidate houses around it and shows what a
// daily drive from a house to the office costs per year: driving route,
// days spent in the car and fuel cost, with 15/30/45 km distance rings.
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
//	- text/html
//
// swagger:meta
package docs
