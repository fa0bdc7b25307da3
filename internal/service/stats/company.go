package stats

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"damper-takip/internal/service/progress"
	"damper-takip/internal/steps"
)

var (
	trailingNumber = regexp.MustCompile(`\s*\d+\s*$`)
	trailingDash   = regexp.MustCompile(`\s*[-_]\s*\d*\s*$`)

	upperTR = cases.Upper(language.Turkish)
)

// NormalizeCompany reduces a raw customer name to its grouping key: numbered
// sibling orders like "Acme 1" / "Acme-2" collapse onto "ACME". Stock units
// ("Stok 3") collapse onto "STOK", which stays a group of its own rather
// than merging into any real company. Casing is Turkish-aware so "imalat"
// and "İMALAT" meet on the same key.
func NormalizeCompany(name string) string {
	base := upperTR.String(strings.TrimSpace(name))
	base = trailingNumber.ReplaceAllString(base, "")
	base = trailingDash.ReplaceAllString(base, "")
	return strings.TrimSpace(base)
}

type CompanyVariant struct {
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	TotalM3    float64 `json:"totalM3"`
	Tamamlanan int     `json:"tamamlanan"`
	DevamEden  int     `json:"devamEden"`
	Baslamayan int     `json:"baslamayan"`
}

type M3Group struct {
	M3         float64      `json:"m3"`
	Count      int          `json:"count"`
	Tamamlanan int          `json:"tamamlanan"`
	DevamEden  int          `json:"devamEden"`
	Baslamayan int          `json:"baslamayan"`
	StepStats  StepStatsMap `json:"stepStats"`
}

// OrderSummary is the per-order row inside a company group.
type OrderSummary struct {
	ID           int64                   `json:"id"`
	ImalatNo     *int64                  `json:"imalatNo"`
	Musteri      string                  `json:"musteri"`
	M3           *float64                `json:"m3"`
	Progress     int                     `json:"progress"`
	Status       steps.Bucket            `json:"status"`
	StepStatuses map[string]steps.Status `json:"stepStatuses"`
}

// CompanyGroup is the full per-company rollup behind the company summary
// page: bucket counts, per-raw-name variants, per-M³ breakdowns and the
// stage distribution scoped to this company's orders.
type CompanyGroup struct {
	BaseCompany string           `json:"baseCompany"`
	TotalOrders int              `json:"totalOrders"`
	TotalM3     float64          `json:"totalM3"`
	Tamamlanan  int              `json:"tamamlanan"`
	DevamEden   int              `json:"devamEden"`
	Baslamayan  int              `json:"baslamayan"`
	Variants    []CompanyVariant `json:"variants"`
	M3Groups    []M3Group        `json:"m3Groups"`
	Orders      []OrderSummary   `json:"orders"`
	StepStats   StepStatsMap     `json:"stepStats"`
}

// ByCompany groups the orders by normalized company key. The result is a
// partition of the input: every order lands in exactly one group, including
// orders whose name normalizes to the empty key. Groups come back ordered by
// total order count descending, ties by Turkish collation of the key.
func ByCompany[T Order](orders []T, p steps.Product) []CompanyGroup {
	defs := steps.Definitions(p)

	type companyAcc struct {
		group      *CompanyGroup
		variantIdx map[string]int
		m3Idx      map[string]int
	}

	byKey := make(map[string]*companyAcc)
	var keys []string

	for _, o := range orders {
		key := NormalizeCompany(o.CustomerName())

		acc := byKey[key]
		if acc == nil {
			acc = &companyAcc{
				group: &CompanyGroup{
					BaseCompany: key,
					StepStats:   newStepStatsMap(defs),
				},
				variantIdx: make(map[string]int),
				m3Idx:      make(map[string]int),
			}
			byKey[key] = acc
			keys = append(keys, key)
		}
		g := acc.group

		bucket := progress.Classify(o, p)
		pct := progress.Percent(o, p)
		statuses := progress.StageStatuses(o, p)

		g.TotalOrders++
		switch bucket {
		case steps.BucketCompleted:
			g.Tamamlanan++
		case steps.BucketInProgress:
			g.DevamEden++
		default:
			g.Baslamayan++
		}

		var m3 float64
		if c := o.Capacity(); c != nil {
			m3 = *c
		}
		g.TotalM3 += m3

		for _, def := range defs {
			g.StepStats[def.Key].add(statuses[def.Key])
		}

		// Variants keep first-seen order of the raw names.
		vi, ok := acc.variantIdx[o.CustomerName()]
		if !ok {
			vi = len(g.Variants)
			acc.variantIdx[o.CustomerName()] = vi
			g.Variants = append(g.Variants, CompanyVariant{Name: o.CustomerName()})
		}
		v := &g.Variants[vi]
		v.Total++
		v.TotalM3 += m3
		switch bucket {
		case steps.BucketCompleted:
			v.Tamamlanan++
		case steps.BucketInProgress:
			v.DevamEden++
		default:
			v.Baslamayan++
		}

		if c := o.Capacity(); c != nil {
			mKey := m3Key(*c)
			mi, ok := acc.m3Idx[mKey]
			if !ok {
				mi = len(g.M3Groups)
				acc.m3Idx[mKey] = mi
				g.M3Groups = append(g.M3Groups, M3Group{M3: *c, StepStats: newStepStatsMap(defs)})
			}
			mg := &g.M3Groups[mi]
			mg.Count++
			switch bucket {
			case steps.BucketCompleted:
				mg.Tamamlanan++
			case steps.BucketInProgress:
				mg.DevamEden++
			default:
				mg.Baslamayan++
			}
			for _, def := range defs {
				mg.StepStats[def.Key].add(statuses[def.Key])
			}
		}

		g.Orders = append(g.Orders, OrderSummary{
			ID:           o.OrderID(),
			ImalatNo:     o.SerialNo(),
			Musteri:      o.CustomerName(),
			M3:           o.Capacity(),
			Progress:     pct,
			Status:       bucket,
			StepStatuses: statuses,
		})
	}

	result := make([]CompanyGroup, 0, len(keys))
	for _, key := range keys {
		g := byKey[key].group
		sort.Slice(g.M3Groups, func(i, j int) bool {
			return g.M3Groups[i].M3 > g.M3Groups[j].M3
		})
		result = append(result, *g)
	}

	coll := collate.New(language.Turkish)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalOrders != result[j].TotalOrders {
			return result[i].TotalOrders > result[j].TotalOrders
		}
		return coll.CompareString(result[i].BaseCompany, result[j].BaseCompany) < 0
	})

	return result
}

// CompanyCount is one slice of the company distribution pie chart.
type CompanyCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CompanyDistribution counts orders per normalized company and returns the
// top limit companies, largest first.
func CompanyDistribution[T Order](orders []T, limit int) []CompanyCount {
	counts := make(map[string]int)
	for _, o := range orders {
		if key := NormalizeCompany(o.CustomerName()); key != "" {
			counts[key]++
		}
	}

	dist := make([]CompanyCount, 0, len(counts))
	for name, count := range counts {
		dist = append(dist, CompanyCount{Name: name, Count: count})
	}

	coll := collate.New(language.Turkish)
	sort.SliceStable(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return coll.CompareString(dist[i].Name, dist[j].Name) < 0
	})

	if limit > 0 && len(dist) > limit {
		dist = dist[:limit]
	}
	return dist
}
