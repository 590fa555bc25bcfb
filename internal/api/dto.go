package api

import (
	"github.com/verdantapp/verdant-server/internal/domain"
)

// === Shared DTOs ===

// TaxonomyResult is the botanical classification of a plant.
type TaxonomyResult struct {
	Family string `json:"family" doc:"Botanical family, Unknown if unavailable"`
	Genus  string `json:"genus" doc:"Botanical genus, Unknown if unavailable"`
	Order  string `json:"order" doc:"Botanical order, Unknown if unavailable"`
}

// WateringResult is the recommended watering interval.
type WateringResult struct {
	Min   int    `json:"min" doc:"Minimum days between waterings"`
	Max   int    `json:"max" doc:"Maximum days between waterings"`
	Label string `json:"label" doc:"Display label, e.g. 7-14 days"`
}

// PlantResult is a scanned plant as returned by the API.
type PlantResult struct {
	ID                 string          `json:"id" doc:"Service-assigned identification id"`
	ScientificName     string          `json:"scientificName" doc:"Latin binomial, Unknown if unavailable"`
	CommonNames        []string        `json:"commonNames" doc:"Common names, may be empty"`
	Probability        float64         `json:"probability" doc:"Identification confidence in [0,1]"`
	Description        string          `json:"description" doc:"Plain-text description"`
	ImageURL           string          `json:"imageUrl,omitempty" doc:"Reference image from the identification service"`
	CapturedImageURI   string          `json:"capturedImageUri,omitempty" doc:"Path to the user's captured photo on this server"`
	BlurHash           string          `json:"blurHash,omitempty" doc:"BlurHash placeholder for the captured photo"`
	Taxonomy           TaxonomyResult  `json:"taxonomy"`
	WikipediaURL       string          `json:"wikipediaUrl,omitempty" doc:"Wikipedia article URL"`
	Watering           *WateringResult `json:"watering,omitempty" doc:"Watering interval, absent if unknown"`
	Synonyms           []string        `json:"synonyms" doc:"Scientific synonyms, may be empty"`
	EdibleParts        []string        `json:"edibleParts" doc:"Edible parts, may be empty"`
	PropagationMethods []string        `json:"propagationMethods" doc:"Propagation methods, may be empty"`
	GBIFID             int64           `json:"gbifId,omitempty" doc:"GBIF taxon id"`
	INaturalistID      int64           `json:"inaturalistId,omitempty" doc:"iNaturalist taxon id"`
	ScannedAt          string          `json:"scannedAt" doc:"RFC 3339 time the scan was recorded"`
}

func toPlantResult(p *domain.ScannedPlant) PlantResult {
	result := PlantResult{
		ID:                 p.ID,
		ScientificName:     p.ScientificName,
		CommonNames:        p.CommonNames,
		Probability:        p.Probability,
		Description:        p.Description,
		ImageURL:           p.ImageURL,
		CapturedImageURI:   p.CapturedImageURI,
		BlurHash:           p.BlurHash,
		Taxonomy:           TaxonomyResult(p.Taxonomy),
		WikipediaURL:       p.WikipediaURL,
		Synonyms:           p.Synonyms,
		EdibleParts:        p.EdibleParts,
		PropagationMethods: p.PropagationMethods,
		GBIFID:             p.GBIFID,
		INaturalistID:      p.INaturalistID,
		ScannedAt:          p.ScannedAt,
	}
	if p.Watering != nil {
		result.Watering = &WateringResult{
			Min:   p.Watering.Min,
			Max:   p.Watering.Max,
			Label: p.Watering.Label,
		}
	}
	return result
}

func toPlantResults(plants []domain.ScannedPlant) []PlantResult {
	results := make([]PlantResult, 0, len(plants))
	for i := range plants {
		results = append(results, toPlantResult(&plants[i]))
	}
	return results
}
