package enhancement

import (
	"fmt"
	"time"
)

type EnrichedText struct {
	Original string `json:"original"`
	Enhanced string `json:"enhanced"`
}

type Entity struct {
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

type EntityText struct {
	Original string   `json:"original"`
	Entities []Entity `json:"entities"`
}

type Sentiment struct {
	Label     string  `json:"label"`
	Score     float64 `json:"score"`
	Tone      string  `json:"tone,omitempty"`
	Intensity string  `json:"intensity,omitempty"`
}

type SentimentText struct {
	Text      string    `json:"text"`
	Sentiment Sentiment `json:"sentiment"`
}

type TopicCluster struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	KeyTerms      []string `json:"key_terms"`
	DocumentCount int      `json:"document_count"`
	SampleTexts   []string `json:"sample_texts"`
}

// EntityTypes are the entity kinds the extraction panel can toggle.
var EntityTypes = []string{"person", "organization", "location", "date", "product", "event"}

// StubResult returns the canned output of applying t with cfg.
func StubResult(t Technique, cfg Config, now time.Time) Result {
	mustValid(t)
	return Result{
		Samples:        stubSamples(t, cfg),
		PreviewStoreID: fmt.Sprintf("ks-%s-%d", t, now.UnixMilli()),
		AppliedAt:      now,
	}
}

func stubSamples(t Technique, cfg Config) []any {
	switch t {
	case SemanticEnrichment:
		return []any{
			EnrichedText{
				Original: "Apple released a new iPhone model.",
				Enhanced: "Apple Inc., a leading technology company founded by Steve Jobs, released their latest iPhone model, which continues their line of premium smartphones featuring cutting-edge hardware and iOS software.",
			},
			EnrichedText{
				Original: "The president will address the nation tomorrow.",
				Enhanced: "The President of the United States will deliver an official address to the nation tomorrow, continuing the traditional practice of executive communication with citizens on matters of national significance.",
			},
		}
	case EntityExtraction:
		return []any{
			EntityText{
				Original: "Apple is planning to open a new store in London next month, according to CEO Tim Cook.",
				Entities: []Entity{
					{Text: "Apple", Type: "organization", Confidence: 0.98},
					{Text: "London", Type: "location", Confidence: 0.96},
					{Text: "Tim Cook", Type: "person", Confidence: 0.95},
				},
			},
			EntityText{
				Original: "The European Union announced new climate regulations that will affect industries across France and Germany.",
				Entities: []Entity{
					{Text: "European Union", Type: "organization", Confidence: 0.97},
					{Text: "France", Type: "location", Confidence: 0.94},
					{Text: "Germany", Type: "location", Confidence: 0.94},
				},
			},
		}
	case SentimentAnalysis:
		tone := flag(cfg.CustomParams, "includeTone")
		intensity := flag(cfg.CustomParams, "includeIntensity")
		pick := func(on bool, v string) string {
			if on {
				return v
			}
			return ""
		}
		return []any{
			SentimentText{
				Text:      "I absolutely love this product! It has completely exceeded my expectations.",
				Sentiment: Sentiment{Label: "Positive", Score: 0.95, Tone: pick(tone, "Enthusiastic"), Intensity: pick(intensity, "High")},
			},
			SentimentText{
				Text:      "The service was okay, but it took longer than expected to arrive.",
				Sentiment: Sentiment{Label: "Neutral", Score: 0.60, Tone: pick(tone, "Disappointed"), Intensity: pick(intensity, "Medium")},
			},
			SentimentText{
				Text:      "This is the worst experience I've ever had. I will never use this service again.",
				Sentiment: Sentiment{Label: "Negative", Score: 0.92, Tone: pick(tone, "Angry"), Intensity: pick(intensity, "High")},
			},
		}
	case TopicClustering:
		return []any{
			TopicCluster{
				ID:            1,
				Name:          "Product Features",
				KeyTerms:      []string{"design", "functionality", "performance", "quality"},
				DocumentCount: 15,
				SampleTexts: []string{
					"The new design includes improved performance features",
					"Quality of the product exceeded our expectations",
				},
			},
			TopicCluster{
				ID:            2,
				Name:          "Customer Service",
				KeyTerms:      []string{"support", "response", "helpful", "resolution"},
				DocumentCount: 12,
				SampleTexts: []string{
					"Customer support was very helpful with my issue",
					"Fast response time from the support team",
				},
			},
			TopicCluster{
				ID:            3,
				Name:          "Pricing Concerns",
				KeyTerms:      []string{"cost", "expensive", "value", "price"},
				DocumentCount: 8,
				SampleTexts: []string{
					"The price point seems high compared to competitors",
					"Not sure if the cost provides enough value",
				},
			},
		}
	}
	return nil
}

func flag(params map[string]any, key string) bool {
	v, _ := params[key].(bool)
	return v
}
