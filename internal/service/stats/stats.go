// Package stats rolls per-order statuses up into fleet-level and
// company-level figures for the dashboard charts and summary pages. Like the
// progress package it is pure: callers hand it a snapshot of the orders and
// get fresh numbers back.
package stats

import (
	"strconv"

	"damper-takip/internal/service/progress"
	"damper-takip/internal/steps"
)

// Order is what the aggregators need from one record, regardless of
// product type.
type Order interface {
	steps.Record
	OrderID() int64
	SerialNo() *int64
	CustomerName() string
	Capacity() *float64
}

// StepStat is the status distribution of one stage across a set of orders.
type StepStat struct {
	Baslamadi   int `json:"baslamadi"`
	DevamEdiyor int `json:"devamEdiyor"`
	Tamamlandi  int `json:"tamamlandi"`
	Total       int `json:"total"`
}

func (s *StepStat) add(status steps.Status) {
	s.Total++
	switch status {
	case steps.Completed:
		s.Tamamlandi++
	case steps.InProgress:
		s.DevamEdiyor++
	default:
		s.Baslamadi++
	}
}

// StepStatsMap maps stage key to its distribution.
type StepStatsMap map[string]*StepStat

func newStepStatsMap(defs []steps.StageDefinition) StepStatsMap {
	m := make(StepStatsMap, len(defs))
	for _, def := range defs {
		m[def.Key] = &StepStat{}
	}
	return m
}

// Summary counts the classifier buckets across a set of orders; it backs the
// stat cards on every list page.
type Summary struct {
	Total      int `json:"total"`
	Tamamlanan int `json:"tamamlanan"`
	DevamEden  int `json:"devamEden"`
	Baslamayan int `json:"baslamayan"`
}

func (s *Summary) add(b steps.Bucket) {
	s.Total++
	switch b {
	case steps.BucketCompleted:
		s.Tamamlanan++
	case steps.BucketInProgress:
		s.DevamEden++
	default:
		s.Baslamayan++
	}
}

// Buckets classifies every order and counts the buckets.
func Buckets[T Order](orders []T, p steps.Product) Summary {
	var sum Summary
	for _, o := range orders {
		sum.add(progress.Classify(o, p))
	}
	return sum
}

// StepStats computes the per-stage status distribution across the whole
// fleet, plus the same distribution sliced by exact M³ value. Orders without
// an M³ value appear only in the overall map. M³ values are discrete buckets;
// no range grouping happens here.
func StepStats[T Order](orders []T, p steps.Product) (StepStatsMap, map[string]StepStatsMap) {
	defs := steps.Definitions(p)
	total := newStepStatsMap(defs)
	byM3 := make(map[string]StepStatsMap)

	for _, o := range orders {
		var m3Stats StepStatsMap
		if m3 := o.Capacity(); m3 != nil {
			key := m3Key(*m3)
			m3Stats = byM3[key]
			if m3Stats == nil {
				m3Stats = newStepStatsMap(defs)
				byM3[key] = m3Stats
			}
		}

		for _, def := range defs {
			status := progress.StageStatus(o, def)
			total[def.Key].add(status)
			if m3Stats != nil {
				m3Stats[def.Key].add(status)
			}
		}
	}

	return total, byM3
}

func m3Key(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Rows flattens a fleet into per-order rows for the summary tables, keeping
// the storage order.
func Rows[T Order](orders []T, p steps.Product) []OrderSummary {
	rows := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, OrderSummary{
			ID:           o.OrderID(),
			ImalatNo:     o.SerialNo(),
			Musteri:      o.CustomerName(),
			M3:           o.Capacity(),
			Progress:     progress.Percent(o, p),
			Status:       progress.Classify(o, p),
			StepStatuses: progress.StageStatuses(o, p),
		})
	}
	return rows
}
