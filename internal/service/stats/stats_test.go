package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"damper-takip/internal/steps"
	"damper-takip/internal/storage"
)

func m3Ptr(v float64) *float64 { return &v }

func completeDamper(musteri string, m3 *float64) *storage.Damper {
	return &storage.Damper{
		Musteri: musteri, M3: m3,
		PlazmaProgrami: true, SacMalzemeKontrolu: true, PlazmaKesim: true,
		DamperSasiPlazmaKesim: true, PresBukum: true,
		AracBraket: true, DamperSasi: true, SasiYukleme: true,
		MilAltKutuk: true, Taban: true, Yan: true, OnGogus: true,
		ArkaKapak: true, YuklemeMalzemesi: true,
		DamperKurulmasi: true, DamperKaynak: true, SasiKapakSiperlik: true, Yukleme: true,
		Hidrolik:     true,
		BoyaHazirlik: true, Boya: true,
		Elektrik: true, Hava: true, Tamamlama: true,
		SonKontrol: true, Teslimat: true,
	}
}

func TestBuckets(t *testing.T) {
	dampers := []*storage.Damper{
		completeDamper("A", nil),
		completeDamper("B", nil),
		{Musteri: "C", PlazmaProgrami: true},
		{Musteri: "D"},
	}

	sum := Buckets(dampers, steps.Damper)

	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 2, sum.Tamamlanan)
	assert.Equal(t, 1, sum.DevamEden)
	assert.Equal(t, 1, sum.Baslamayan)
	// Kovalar her zaman toplamı verir.
	assert.Equal(t, sum.Total, sum.Tamamlanan+sum.DevamEden+sum.Baslamayan)
}

func TestStepStats_HidrolikFleet(t *testing.T) {
	dampers := []*storage.Damper{
		{Musteri: "A", Hidrolik: true},
		{Musteri: "B", Hidrolik: true},
		{Musteri: "C"},
	}

	total, _ := StepStats(dampers, steps.Damper)

	hidrolik := total["hidrolik"]
	require.NotNil(t, hidrolik)
	assert.Equal(t, 2, hidrolik.Tamamlandi)
	assert.Equal(t, 0, hidrolik.DevamEdiyor)
	assert.Equal(t, 1, hidrolik.Baslamadi)
	assert.Equal(t, 3, hidrolik.Total)
}

func TestStepStats_ByM3ExcludesNil(t *testing.T) {
	dampers := []*storage.Damper{
		{Musteri: "A", M3: m3Ptr(14)},
		{Musteri: "B", M3: m3Ptr(14), PlazmaProgrami: true},
		{Musteri: "C", M3: m3Ptr(16.5)},
		{Musteri: "D"}, // M³ girilmemiş
	}

	total, byM3 := StepStats(dampers, steps.Damper)

	assert.Equal(t, 4, total["kesimBukum"].Total)

	require.Len(t, byM3, 2)
	require.Contains(t, byM3, "14")
	require.Contains(t, byM3, "16.5")
	assert.Equal(t, 2, byM3["14"]["kesimBukum"].Total)
	assert.Equal(t, 1, byM3["14"]["kesimBukum"].DevamEdiyor)
	assert.Equal(t, 1, byM3["16.5"]["kesimBukum"].Total)
}

func TestStepStats_EveryStageKeyed(t *testing.T) {
	total, _ := StepStats([]*storage.Dorse{{Musteri: "A"}}, steps.Dorse)

	for _, def := range steps.Definitions(steps.Dorse) {
		assert.Contains(t, total, def.Key)
	}
}

func TestRows(t *testing.T) {
	dampers := []*storage.Damper{
		completeDamper("Acme", m3Ptr(14)),
		{Musteri: "Beta", ID: 2},
	}
	dampers[0].ID = 1

	rows := Rows(dampers, steps.Damper)

	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, 100, rows[0].Progress)
	assert.Equal(t, steps.BucketCompleted, rows[0].Status)
	assert.Equal(t, 0, rows[1].Progress)
	assert.Len(t, rows[1].StepStatuses, len(steps.Definitions(steps.Damper)))
}
