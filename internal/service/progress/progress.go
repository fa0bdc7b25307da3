// Package progress derives stage statuses, the completion percentage and the
// coarse order bucket from the raw sub-step fields of one order. Everything
// here is a pure function over the record it is handed; nothing is cached or
// persisted.
package progress

import (
	"math"

	"damper-takip/internal/steps"
)

// StageStatus computes the status of one stage from the current field values.
// A stage wrapping an inspection dropdown is Completed exactly when the value
// equals the done sentinel; it is never InProgress. An empty member list is a
// broken definition and reads as NotStarted.
func StageStatus(rec steps.Record, def steps.StageDefinition) steps.Status {
	if def.EnumKey != "" {
		if rec.EnumValue(def.EnumKey) == steps.EnumDone {
			return steps.Completed
		}
		return steps.NotStarted
	}

	total := len(def.Steps)
	if total == 0 {
		return steps.NotStarted
	}

	done := 0
	for _, sub := range def.Steps {
		if rec.StepDone(sub.Key) {
			done++
		}
	}

	switch {
	case done == 0:
		return steps.NotStarted
	case done == total:
		return steps.Completed
	default:
		return steps.InProgress
	}
}

// StageStatusByKey looks the stage up in the product taxonomy. An unknown key
// yields NotStarted; that is a configuration bug the taxonomy tests catch.
func StageStatusByKey(rec steps.Record, p steps.Product, stageKey string) steps.Status {
	for _, def := range steps.Definitions(p) {
		if def.Key == stageKey {
			return StageStatus(rec, def)
		}
	}
	return steps.NotStarted
}

// StageStatuses computes every stage of the product type at once, keyed by
// stage key. Summary rows and the aggregators build on this.
func StageStatuses(rec steps.Record, p steps.Product) map[string]steps.Status {
	defs := steps.Definitions(p)
	statuses := make(map[string]steps.Status, len(defs))
	for _, def := range defs {
		statuses[def.Key] = StageStatus(rec, def)
	}
	return statuses
}

func completedCount(rec steps.Record, tax steps.Taxonomy) int {
	done := 0
	for _, key := range tax.ProgressSteps {
		if rec.StepDone(key) {
			done++
		}
	}
	for _, key := range tax.ProgressEnums {
		if rec.EnumValue(key) == steps.EnumDone {
			done++
		}
	}
	return done
}

// Percent is the overall completion percentage over the flattened field list
// of the product type, stage boundaries ignored, rounded half up.
func Percent(rec steps.Record, p steps.Product) int {
	tax := steps.ForProduct(p)
	total := tax.Denominator()
	if total == 0 {
		return 0
	}
	done := completedCount(rec, tax)
	return int(math.Round(100 * float64(done) / float64(total)))
}

// Classify puts the whole order in one of three buckets using the same
// flattened field list as Percent, so progress 0 and 100 line up with
// BucketNotStarted and BucketCompleted exactly.
func Classify(rec steps.Record, p steps.Product) steps.Bucket {
	tax := steps.ForProduct(p)
	total := tax.Denominator()
	done := completedCount(rec, tax)

	switch {
	case total > 0 && done == total:
		return steps.BucketCompleted
	case done == 0:
		return steps.BucketNotStarted
	default:
		return steps.BucketInProgress
	}
}
