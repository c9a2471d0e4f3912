package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers classifying which stage of the pipeline failed. Stages
// return plain errors; Run tags them so callers can branch on the failure
// class without string matching.
var (
	ErrLoad       = errors.New("load error")
	ErrVisualize  = errors.New("visualization error")
	ErrTableBuild = errors.New("table build error")
	ErrStorage    = errors.New("storage error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrStorage
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailedStage names the stage an error was classified against, or "" when
// the error carries no pipeline marker.
func FailedStage(err error) string {
	switch {
	case errors.Is(err, ErrLoad):
		return "load"
	case errors.Is(err, ErrVisualize):
		return "visualize"
	case errors.Is(err, ErrTableBuild):
		return "build"
	case errors.Is(err, ErrStorage):
		return "export"
	default:
		return ""
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
