package types

import "time"

// DefaultUserAgent is a desktop browser string; the search engine serves its
// HTML results page only to browser-like clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Default endpoints for the two search backends.
const (
	DefaultWebEndpoint      = "https://html.duckduckgo.com/html/"
	DefaultAcademicEndpoint = "https://api.semanticscholar.org/graph/v1/paper/search"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout bounds one request, including redirects and reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for the search adapters.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// WebEndpoint is the search engine's HTML results page.
	WebEndpoint string `json:"web_endpoint" yaml:"web_endpoint" mapstructure:"web_endpoint"`

	// AcademicEndpoint is the scholarly metadata paper-search API.
	AcademicEndpoint string `json:"academic_endpoint" yaml:"academic_endpoint" mapstructure:"academic_endpoint"`
}

// ExtractConfig holds settings for following result links.
type ExtractConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxBodyChars is how much of a page body is parsed (default 100000).
	MaxBodyChars int `json:"max_body_chars" yaml:"max_body_chars" mapstructure:"max_body_chars"`
}

// ResearchConfig groups all settings for one research pipeline.
type ResearchConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	Extract ExtractConfig `json:"extract" yaml:"extract" mapstructure:"extract"`

	// MaxResults is the hard cap on URLs searched for and followed (default 3).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// MaxContentSize is the report budget in characters (default 8000).
	MaxContentSize int `json:"max_content_size" yaml:"max_content_size" mapstructure:"max_content_size"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// DefaultConfig returns the settings the research tool ships with.
func DefaultConfig() ResearchConfig {
	return ResearchConfig{
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   10 * time.Second,
				UserAgent: DefaultUserAgent,
			},
			WebEndpoint:      DefaultWebEndpoint,
			AcademicEndpoint: DefaultAcademicEndpoint,
		},
		Extract: ExtractConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   8 * time.Second,
				UserAgent: DefaultUserAgent,
			},
			MaxBodyChars: 100000,
		},
		MaxResults:     3,
		MaxContentSize: 8000,
		LogLevel:       "info",
	}
}
