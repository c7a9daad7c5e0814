package config

import "github.com/katalvlaran/radixsort/radix"

// Default values for optional configuration fields.
const (
	DefaultBase      = radix.DefaultBase
	DefaultNegatives = "reject"
	DefaultLogLevel  = "info"
)
