package plantid

import (
	"github.com/verdantapp/verdant-server/internal/domain"
	"github.com/verdantapp/verdant-server/internal/id"
	"github.com/verdantapp/verdant-server/internal/slug"
)

// normalizeSuggestion converts the top-ranked raw suggestion to a PlantData.
// Every absent or null optional field is replaced by an empty slice or the
// "Unknown" placeholder so callers never see partial data. Performs no I/O
// and never fails.
func normalizeSuggestion(s *rawSuggestion) *domain.PlantData {
	p := &domain.PlantData{
		ID:                 s.ID,
		ScientificName:     s.Name,
		CommonNames:        []string{},
		Probability:        s.Probability,
		Description:        domain.DefaultDescription,
		Taxonomy: domain.PlantTaxonomy{
			Family: domain.UnknownValue,
			Genus:  domain.UnknownValue,
			Order:  domain.UnknownValue,
		},
		Synonyms:           []string{},
		EdibleParts:        []string{},
		PropagationMethods: []string{},
	}

	if p.ScientificName == "" {
		p.ScientificName = domain.UnknownValue
	}

	// Suggestions occasionally arrive without an id. Derive a stable one
	// from the name so history dedup still works across rescans.
	if p.ID == "" {
		if derived := slug.Make(p.ScientificName); derived != "" && derived != "unknown" {
			p.ID = derived
		} else {
			p.ID = id.MustGenerate("plant")
		}
	}

	if len(s.SimilarImages) > 0 {
		p.ImageURL = s.SimilarImages[0].URL
	}

	d := s.Details
	if d == nil {
		return p
	}

	if len(d.CommonNames) > 0 {
		p.CommonNames = append(p.CommonNames, d.CommonNames...)
	}
	if d.Description != nil && d.Description.Value != "" {
		if text := stripHTML(d.Description.Value); text != "" {
			p.Description = text
		}
	}
	// Prefer the service's representative image over a similar-image match.
	if d.Image != nil && d.Image.Value != "" {
		p.ImageURL = d.Image.Value
	}
	if t := d.Taxonomy; t != nil {
		if t.Family != "" {
			p.Taxonomy.Family = t.Family
		}
		if t.Genus != "" {
			p.Taxonomy.Genus = t.Genus
		}
		if t.Order != "" {
			p.Taxonomy.Order = t.Order
		}
	}
	p.WikipediaURL = d.URL
	if d.Watering != nil {
		p.Watering = domain.NewWateringInfo(d.Watering.Min, d.Watering.Max)
	}
	if len(d.Synonyms) > 0 {
		p.Synonyms = append(p.Synonyms, d.Synonyms...)
	}
	if len(d.EdibleParts) > 0 {
		p.EdibleParts = append(p.EdibleParts, d.EdibleParts...)
	}
	if len(d.PropagationMethods) > 0 {
		p.PropagationMethods = append(p.PropagationMethods, d.PropagationMethods...)
	}
	p.GBIFID = d.GBIFID
	p.INaturalistID = d.INaturalistID

	return p
}
