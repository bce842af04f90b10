package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/kbukum/xduce/errors"
	"github.com/kbukum/xduce/logger"
	"github.com/kbukum/xduce/observability"
	"github.com/kbukum/xduce/xform"
)

// Line is the transducer type every stage compiles to.
type Line = xform.Transducer[string, string]

type stageBuilder func(sc StageConfig, env buildEnv) (Line, error)

type buildEnv struct {
	name string
	log  *logger.Logger
}

var builders = map[string]stageBuilder{
	StageFilter:      buildFilter,
	StageReject:      buildReject,
	StageTransform:   buildTransform,
	StageTake:        buildTake,
	StageDrop:        buildDrop,
	StageTakeWhile:   buildTakeWhile,
	StageDropWhile:   buildDropWhile,
	StageStride:      buildStride,
	StageIntersperse: buildIntersperse,
	StageNumber:      buildNumber,
	StageSplit:       buildSplit,
	StageLog:         buildLog,
}

// StageTypes returns the stage types Build understands.
func StageTypes() []string {
	return []string{
		StageFilter, StageReject, StageTransform, StageTake, StageDrop, StageTakeWhile,
		StageDropWhile, StageStride, StageIntersperse, StageNumber, StageSplit, StageLog,
	}
}

func compileStage(sc StageConfig, env buildEnv) (Line, error) {
	build, ok := builders[sc.Type]
	if !ok {
		return Line{}, apperrors.UnknownStage(sc.Type)
	}
	return build(sc, env)
}

func pattern(sc StageConfig) (*regexp.Regexp, error) {
	if sc.Pattern == "" {
		return nil, apperrors.MissingField("pattern")
	}
	re, err := regexp.Compile(sc.Pattern)
	if err != nil {
		return nil, apperrors.InvalidFormat("pattern", "regular expression").WithCause(err)
	}
	return re, nil
}

func buildFilter(sc StageConfig, _ buildEnv) (Line, error) {
	re, err := pattern(sc)
	if err != nil {
		return Line{}, err
	}
	return xform.Filter(re.MatchString), nil
}

func buildReject(sc StageConfig, _ buildEnv) (Line, error) {
	re, err := pattern(sc)
	if err != nil {
		return Line{}, err
	}
	return xform.Filter(func(s string) bool { return !re.MatchString(s) }), nil
}

func buildTransform(sc StageConfig, _ buildEnv) (Line, error) {
	switch sc.Op {
	case OpUpper:
		return xform.Transform(strings.ToUpper), nil
	case OpLower:
		return xform.Transform(strings.ToLower), nil
	case OpTrim:
		return xform.Transform(strings.TrimSpace), nil
	case OpPrefix:
		return xform.Transform(func(s string) string { return sc.Value + s }), nil
	case OpSuffix:
		return xform.Transform(func(s string) string { return s + sc.Value }), nil
	case OpReplace:
		re, err := pattern(sc)
		if err != nil {
			return Line{}, err
		}
		return xform.Transform(func(s string) string { return re.ReplaceAllString(s, sc.Value) }), nil
	case "":
		return Line{}, apperrors.MissingField("op")
	default:
		return Line{}, apperrors.InvalidInput("op", fmt.Sprintf("unknown transform %q", sc.Op))
	}
}

func buildTake(sc StageConfig, _ buildEnv) (Line, error) {
	return xform.Take[string](sc.Count), nil
}

func buildDrop(sc StageConfig, _ buildEnv) (Line, error) {
	return xform.Drop[string](sc.Count), nil
}

func buildTakeWhile(sc StageConfig, _ buildEnv) (Line, error) {
	re, err := pattern(sc)
	if err != nil {
		return Line{}, err
	}
	return xform.TakeWhile(re.MatchString), nil
}

func buildDropWhile(sc StageConfig, _ buildEnv) (Line, error) {
	re, err := pattern(sc)
	if err != nil {
		return Line{}, err
	}
	return xform.DropWhile(re.MatchString), nil
}

func buildStride(sc StageConfig, _ buildEnv) (Line, error) {
	if sc.Count < 1 {
		return Line{}, apperrors.InvalidInput("count", "stride must be at least 1")
	}
	return xform.Stride[string](sc.Count), nil
}

func buildIntersperse(sc StageConfig, _ buildEnv) (Line, error) {
	return xform.Intersperse(sc.Value), nil
}

func buildNumber(sc StageConfig, _ buildEnv) (Line, error) {
	sep := sc.Value
	if sep == "" {
		sep = " "
	}
	start := sc.Count
	return xform.TransformI(func(i int, s string) string {
		return fmt.Sprintf("%d%s%s", start+i, sep, s)
	}), nil
}

func buildSplit(sc StageConfig, _ buildEnv) (Line, error) {
	split := strings.Fields
	if sc.Pattern != "" {
		re, err := pattern(sc)
		if err != nil {
			return Line{}, err
		}
		split = func(s string) []string {
			if s == "" {
				return nil
			}
			return re.Split(s, -1)
		}
	}
	return xform.Compose(xform.Transform(split), xform.Join[[]string]()), nil
}

func buildLog(_ StageConfig, env buildEnv) (Line, error) {
	return observability.Logged[string](env.log, env.name), nil
}
