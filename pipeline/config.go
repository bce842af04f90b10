package pipeline

// Stage types understood by Build.
const (
	StageFilter      = "filter"
	StageReject      = "reject"
	StageTransform   = "transform"
	StageTake        = "take"
	StageDrop        = "drop"
	StageTakeWhile   = "take_while"
	StageDropWhile   = "drop_while"
	StageStride      = "stride"
	StageIntersperse = "intersperse"
	StageNumber      = "number"
	StageSplit       = "split"
	StageLog         = "log"
)

// Transform operations for StageTransform.
const (
	OpUpper   = "upper"
	OpLower   = "lower"
	OpTrim    = "trim"
	OpPrefix  = "prefix"
	OpSuffix  = "suffix"
	OpReplace = "replace"
)

// StageConfig describes one stage of a line pipeline. Which fields matter
// depends on Type:
//
//	filter, reject, take_while, drop_while: Pattern
//	transform:   Op, plus Value (prefix, suffix, replace) and Pattern (replace)
//	take, drop:  Count
//	stride:      Count (>= 1)
//	intersperse: Value
//	number:      Count is the first number, Value the separator (default " ")
//	split:       Pattern as separator, whitespace when empty
type StageConfig struct {
	Type    string `mapstructure:"type" validate:"required"`
	Pattern string `mapstructure:"pattern" validate:"omitempty,regexp"`
	Op      string `mapstructure:"op" validate:"omitempty,oneof=upper lower trim prefix suffix replace"`
	Value   string `mapstructure:"value"`
	Count   int    `mapstructure:"count" validate:"min=0"`
}

// Config describes a named line pipeline.
type Config struct {
	Name string `mapstructure:"name" validate:"required"`
	// RunID pins the run identifier; a fresh UUID is used when empty.
	RunID  string        `mapstructure:"run_id" validate:"omitempty,uuid"`
	Stages []StageConfig `mapstructure:"stages" validate:"min=1,dive"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "default"
	}
}
