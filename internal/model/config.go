package model

import (
	"runtime"
	"time"
)

// Config holds all tunable settings for semcheck
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" json:"analysis" mapstructure:"analysis"`
	Cache       CacheConfig       `yaml:"cache" json:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" json:"output" mapstructure:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency" mapstructure:"concurrency"`
}

// AnalysisConfig controls the semantic engine's thresholds
type AnalysisConfig struct {
	// SimilarityThreshold is the minimum normalized string similarity
	// for two terms to be grouped as variants of one concept.
	SimilarityThreshold float64 `yaml:"similarity_threshold" json:"similarity_threshold" mapstructure:"similarity_threshold"`

	// MinTermFrequency is the occurrence count below which a
	// non-technical term is dropped as noise.
	MinTermFrequency int `yaml:"min_term_frequency" json:"min_term_frequency" mapstructure:"min_term_frequency"`

	// ContextRadius is the number of characters kept on each side of an
	// occurrence when building display snippets.
	ContextRadius int `yaml:"context_radius" json:"context_radius" mapstructure:"context_radius"`

	// MaxKeyPhrases caps the key-phrase list in document signals.
	MaxKeyPhrases int `yaml:"max_key_phrases" json:"max_key_phrases" mapstructure:"max_key_phrases"`

	// ParagraphThreshold is the paragraph count a document must exceed
	// before the topic-shift detector runs.
	ParagraphThreshold int `yaml:"paragraph_threshold" json:"paragraph_threshold" mapstructure:"paragraph_threshold"`

	// TopicShiftThreshold is the word-overlap similarity below which two
	// adjacent paragraphs are flagged as an abrupt topic change.
	TopicShiftThreshold float64 `yaml:"topic_shift_threshold" json:"topic_shift_threshold" mapstructure:"topic_shift_threshold"`
}

// CacheConfig controls the extraction result cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" json:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer" mapstructure:"include_footer"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers" mapstructure:"workers"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			SimilarityThreshold: 0.8,
			MinTermFrequency:    2,
			ContextRadius:       20,
			MaxKeyPhrases:       10,
			ParagraphThreshold:  5,
			TopicShiftThreshold: 0.2,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             30 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
	}
}
