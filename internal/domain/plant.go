// Package domain contains the core types for the Verdant server.
package domain

import "fmt"

// UnknownValue is the fallback for optional text fields the identification
// service did not provide.
const UnknownValue = "Unknown"

// DefaultDescription is the placeholder used when the identification service
// returns no description for a suggestion.
const DefaultDescription = "No description available."

// PlantTaxonomy is the botanical classification of an identified plant.
// Fields fall back to "Unknown" rather than empty strings.
type PlantTaxonomy struct {
	Family string `json:"family"`
	Genus  string `json:"genus"`
	Order  string `json:"order"`
}

// WateringInfo describes the recommended watering interval in days.
// Label is always derived from Min/Max, never supplied independently.
type WateringInfo struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

// NewWateringInfo builds a WateringInfo with its display label.
func NewWateringInfo(minDays, maxDays int) *WateringInfo {
	return &WateringInfo{
		Min:   minDays,
		Max:   maxDays,
		Label: fmt.Sprintf("%d-%d days", minDays, maxDays),
	}
}

// PlantData is the normalized identification result for a single scan.
//
// ID is assigned by the identification service per submission; re-scanning
// the same physical plant yields a new ID unless the service returns an
// identical suggestion.
type PlantData struct {
	ID                 string        `json:"id"`
	ScientificName     string        `json:"scientificName"`
	CommonNames        []string      `json:"commonNames"`
	Probability        float64       `json:"probability"`
	Description        string        `json:"description"`
	ImageURL           string        `json:"imageUrl"`
	CapturedImageURI   string        `json:"capturedImageUri"`
	Taxonomy           PlantTaxonomy `json:"taxonomy"`
	WikipediaURL       string        `json:"wikipediaUrl"`
	Watering           *WateringInfo `json:"watering"`
	Synonyms           []string      `json:"synonyms"`
	EdibleParts        []string      `json:"edibleParts"`
	PropagationMethods []string      `json:"propagationMethods"`
	GBIFID             int64         `json:"gbifId,omitempty"`
	INaturalistID      int64         `json:"inaturalistId,omitempty"`

	// BlurHash is a compact placeholder for the captured photo. Like
	// CapturedImageURI it is populated by the caller after the photo is
	// saved, not by the normalizer.
	BlurHash string `json:"blurHash,omitempty"`
}

// DisplayName returns the first common name, falling back to the scientific
// name when the service provided none.
func (p *PlantData) DisplayName() string {
	if len(p.CommonNames) > 0 && p.CommonNames[0] != "" {
		return p.CommonNames[0]
	}
	return p.ScientificName
}

// ScannedPlant is a PlantData entry in scan history. ScannedAt is stamped by
// the store at insertion time (RFC 3339), never by the caller.
type ScannedPlant struct {
	PlantData
	ScannedAt string `json:"scannedAt"`
}
