// Package analytic provides plane analytic geometry: straight lines and the
// three conic sections.
package analytic
