// Package enhancement keeps the text enhancement settings shared by the
// technique panels of a session.
package enhancement

import (
	"errors"
	"fmt"
)

var ErrUnknownTechnique = errors.New("unknown enhancement technique")

type Technique string

const (
	SemanticEnrichment Technique = "semantic_enrichment"
	EntityExtraction   Technique = "entity_extraction"
	SentimentAnalysis  Technique = "sentiment_analysis"
	TopicClustering    Technique = "topic_clustering"
)

var Techniques = []Technique{
	SemanticEnrichment,
	EntityExtraction,
	SentimentAnalysis,
	TopicClustering,
}

type techniqueInfo struct {
	title       string
	description string
}

var techniqueInfos = map[Technique]techniqueInfo{
	SemanticEnrichment: {"Semantic Enrichment", "Add contextual information to text data"},
	EntityExtraction:   {"Entity Extraction", "Identify key entities in text"},
	SentimentAnalysis:  {"Sentiment Analysis", "Analyze emotional tone in text"},
	TopicClustering:    {"Topic Clustering", "Group similar text content"},
}

func ParseTechnique(s string) (Technique, error) {
	t := Technique(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTechnique, s)
	}
	return t, nil
}

func (t Technique) Valid() bool {
	_, ok := techniqueInfos[t]
	return ok
}

func (t Technique) Title() string       { return techniqueInfos[t].title }
func (t Technique) Description() string { return techniqueInfos[t].description }

func mustValid(t Technique) {
	if !t.Valid() {
		panic(fmt.Sprintf("enhancement: unknown technique %q", string(t)))
	}
}
