// Package search provides full-text search over scan history using Bleve.
// Plants are findable by scientific name, common names, description text,
// and exact taxonomy terms.
package search

import (
	"strings"
	"time"

	"github.com/verdantapp/verdant-server/internal/domain"
)

// PlantDocument is the indexed representation of a scanned plant.
type PlantDocument struct {
	ID             string   `json:"id"`
	ScientificName string   `json:"scientific_name"`
	CommonNames    []string `json:"common_names,omitempty"`
	Description    string   `json:"description,omitempty"`
	Family         string   `json:"family,omitempty"`
	Genus          string   `json:"genus,omitempty"`
	Order          string   `json:"order,omitempty"`
	ScannedAt      int64    `json:"scanned_at"` // Unix millis
}

// FromScannedPlant builds an index document from a history entry.
func FromScannedPlant(p *domain.ScannedPlant) *PlantDocument {
	doc := &PlantDocument{
		ID:             p.ID,
		ScientificName: p.ScientificName,
		CommonNames:    p.CommonNames,
		Description:    p.Description,
	}

	// "Unknown" placeholders are presentation values, not search terms.
	if p.Taxonomy.Family != domain.UnknownValue {
		doc.Family = p.Taxonomy.Family
	}
	if p.Taxonomy.Genus != domain.UnknownValue {
		doc.Genus = p.Taxonomy.Genus
	}
	if p.Taxonomy.Order != domain.UnknownValue {
		doc.Order = p.Taxonomy.Order
	}
	if p.Description == domain.DefaultDescription {
		doc.Description = ""
	}

	if t, err := time.Parse(time.RFC3339, p.ScannedAt); err == nil {
		doc.ScannedAt = t.UnixMilli()
	}

	return doc
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *PlantDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":              d.ID,
		"scientific_name": d.ScientificName,
		"scanned_at":      d.ScannedAt,
	}

	if len(d.CommonNames) > 0 {
		m["common_names"] = strings.Join(d.CommonNames, " ")
	}
	if d.Description != "" {
		m["description"] = d.Description
	}
	if d.Family != "" {
		m["family"] = strings.ToLower(d.Family)
	}
	if d.Genus != "" {
		m["genus"] = strings.ToLower(d.Genus)
	}
	if d.Order != "" {
		m["order"] = strings.ToLower(d.Order)
	}

	return m
}
