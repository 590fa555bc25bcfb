package plantid

// Raw API response types (internal)

type rawIdentification struct {
	AccessToken string    `json:"access_token"`
	Status      string    `json:"status"`
	Result      rawResult `json:"result"`
}

type rawResult struct {
	IsPlant        rawIsPlant        `json:"is_plant"`
	Classification rawClassification `json:"classification"`
}

type rawIsPlant struct {
	Binary      bool    `json:"binary"`
	Probability float64 `json:"probability"`
}

type rawClassification struct {
	Suggestions []rawSuggestion `json:"suggestions"`
}

type rawSuggestion struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Probability   float64           `json:"probability"`
	SimilarImages []rawSimilarImage `json:"similar_images"`
	Details       *rawDetails       `json:"details"`
}

type rawSimilarImage struct {
	URL      string `json:"url"`
	URLSmall string `json:"url_small"`
}

type rawDetails struct {
	CommonNames        []string     `json:"common_names"`
	Taxonomy           *rawTaxonomy `json:"taxonomy"`
	URL                string       `json:"url"`
	Rank               string       `json:"rank"`
	Description        *rawValue    `json:"description"`
	Image              *rawValue    `json:"image"`
	Synonyms           []string     `json:"synonyms"`
	EdibleParts        []string     `json:"edible_parts"`
	PropagationMethods []string     `json:"propagation_methods"`
	Watering           *rawWatering `json:"watering"`
	GBIFID             int64        `json:"gbif_id"`
	INaturalistID      int64        `json:"inaturalist_id"`
}

// rawValue is the service's {value, citation} wrapper around text fields.
type rawValue struct {
	Value    string `json:"value"`
	Citation string `json:"citation"`
}

type rawTaxonomy struct {
	Kingdom string `json:"kingdom"`
	Phylum  string `json:"phylum"`
	Class   string `json:"class"`
	Order   string `json:"order"`
	Family  string `json:"family"`
	Genus   string `json:"genus"`
}

type rawWatering struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
