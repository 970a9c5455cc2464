package enhancement

import (
	"slices"
	"time"
)

const (
	DefaultTemperature     = 0.7
	DefaultCreativityLevel = 50
)

type Config struct {
	Temperature     float64        `json:"temperature"`
	CreativityLevel float64        `json:"creativity_level"`
	CustomParams    map[string]any `json:"custom_params"`
}

func (c Config) clone() Config {
	params := make(map[string]any, len(c.CustomParams))
	for k, v := range c.CustomParams {
		params[k] = cloneParam(v)
	}
	c.CustomParams = params
	return c
}

// cloneParam copies the containers JSON decoding and the defaults produce,
// so a returned Config never aliases the stored one.
func cloneParam(v any) any {
	switch v := v.(type) {
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneParam(e)
		}
		return out
	case []string:
		return slices.Clone(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = cloneParam(e)
		}
		return out
	}
	return v
}

// Patch is a partial config update. Nil scalars are left unchanged;
// CustomParams keys are merged into the existing map.
type Patch struct {
	Temperature     *float64
	CreativityLevel *float64
	CustomParams    map[string]any
}

func defaultConfigs() map[Technique]Config {
	base := func(params map[string]any) Config {
		return Config{
			Temperature:     DefaultTemperature,
			CreativityLevel: DefaultCreativityLevel,
			CustomParams:    params,
		}
	}
	return map[Technique]Config{
		SemanticEnrichment: base(map[string]any{"contextDepth": 3}),
		EntityExtraction:   base(map[string]any{"entityTypes": []any{"person", "organization", "location"}}),
		SentimentAnalysis:  base(map[string]any{"includeTone": true}),
		TopicClustering:    base(map[string]any{"clusterCount": 5}),
	}
}

// Result is the outcome of the last simulated apply of a technique.
type Result struct {
	Samples        []any
	PreviewStoreID string
	AppliedAt      time.Time
}

// Store is not safe for concurrent use; callers serialize access.
type Store struct {
	active     *Technique
	enabled    bool
	configs    map[Technique]Config
	results    map[Technique]Result
	processing map[Technique]bool
}

func NewStore() *Store {
	return &Store{
		configs:    defaultConfigs(),
		results:    make(map[Technique]Result),
		processing: make(map[Technique]bool),
	}
}

// Active returns the selected technique; ok is false when none is selected.
func (s *Store) Active() (Technique, bool) {
	if s.active == nil {
		return "", false
	}
	return *s.active, true
}

// SetActive selects t, or clears the selection when t is nil. Selecting a
// technique turns enhancement on.
func (s *Store) SetActive(t *Technique) {
	if t == nil {
		s.active = nil
		return
	}
	mustValid(*t)
	selected := *t
	s.active = &selected
	s.enabled = true
}

func (s *Store) Enabled() bool { return s.enabled }

func (s *Store) SetEnabled(enabled bool) { s.enabled = enabled }

func (s *Store) Config(t Technique) Config {
	mustValid(t)
	return s.configs[t].clone()
}

// UpdateConfig applies p to the config of t and returns the merged result.
func (s *Store) UpdateConfig(t Technique, p Patch) Config {
	mustValid(t)
	cfg := s.configs[t].clone()

	if p.Temperature != nil {
		cfg.Temperature = *p.Temperature
	}
	if p.CreativityLevel != nil {
		cfg.CreativityLevel = *p.CreativityLevel
	}
	for k, v := range p.CustomParams {
		cfg.CustomParams[k] = cloneParam(v)
	}

	s.configs[t] = cfg
	return cfg.clone()
}

func (s *Store) Processing(t Technique) bool {
	mustValid(t)
	return s.processing[t]
}

func (s *Store) BeginApply(t Technique) {
	mustValid(t)
	s.processing[t] = true
}

func (s *Store) FinishApply(t Technique, r Result) {
	mustValid(t)
	s.processing[t] = false
	s.results[t] = r
}

// AbortApply clears the processing flag and keeps the previous result.
func (s *Store) AbortApply(t Technique) {
	mustValid(t)
	s.processing[t] = false
}

// Result returns the last apply outcome of t, if any.
func (s *Store) Result(t Technique) (Result, bool) {
	mustValid(t)
	r, ok := s.results[t]
	return r, ok
}
