package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for plant documents.
//
// Scientific names use the simple analyzer: Latin binomials gain nothing
// from English stemming ("elastica" must not stem). Common names and
// descriptions are English text. Taxonomy fields are exact-match keywords.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// Scientific name - primary search target
	sciFieldMapping := bleve.NewTextFieldMapping()
	sciFieldMapping.Analyzer = simple.Name
	sciFieldMapping.Store = true
	sciFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("scientific_name", sciFieldMapping)

	// Common names - searchable text
	commonFieldMapping := bleve.NewTextFieldMapping()
	commonFieldMapping.Analyzer = en.AnalyzerName
	commonFieldMapping.Store = true
	commonFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("common_names", commonFieldMapping)

	// Description - searchable but not stored
	descFieldMapping := bleve.NewTextFieldMapping()
	descFieldMapping.Analyzer = en.AnalyzerName
	descFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("description", descFieldMapping)

	// ID - stored but not analyzed
	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	// Taxonomy - exact match filters
	for _, field := range []string{"family", "genus", "order"} {
		taxFieldMapping := bleve.NewTextFieldMapping()
		taxFieldMapping.Analyzer = keyword.Name
		taxFieldMapping.Store = true
		docMapping.AddFieldMappingsAt(field, taxFieldMapping)
	}

	// Scan time - for sorting by recency
	scannedAtFieldMapping := bleve.NewNumericFieldMapping()
	scannedAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("scanned_at", scannedAtFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
