// Package pipeline builds text-line pipelines from configuration.
//
// A Config lists stages by type; Build compiles them, in order, into a
// single xform transducer over lines, and New wraps that in a Runnable that
// adds run identifiers, logging, tracing and metrics.
//
// # Stages
//
//   - filter, reject: keep or drop lines matching pattern
//   - transform: upper, lower, trim, prefix, suffix, replace
//   - take, drop: the first count lines
//   - take_while, drop_while: while lines match pattern
//   - stride: every count-th line, starting with the first
//   - intersperse: value between lines
//   - number: prefix lines with their position, starting at count
//   - split: one line per word, or per pattern-separated field
//   - log: debug-log every line passing through
//
// # Usage
//
//	r, err := pipeline.New(pipeline.Config{
//	    Name: "errors",
//	    Stages: []pipeline.StageConfig{
//	        {Type: "filter", Pattern: "ERROR"},
//	        {Type: "transform", Op: "trim"},
//	        {Type: "take", Count: 100},
//	    },
//	}, pipeline.WithLogger(log))
//
//	lines, readErr := pipeline.Lines(os.Stdin)
//	out := pipeline.NewLineWriter(os.Stdout)
//	res, err := r.Run(ctx, lines, out)
package pipeline
