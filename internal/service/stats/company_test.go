package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"damper-takip/internal/steps"
	"damper-takip/internal/storage"
)

func TestNormalizeCompany(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme 1", "ACME"},
		{"Acme 2", "ACME"},
		{"acme-3", "ACME"},
		{"Acme_4", "ACME"},
		{"  Acme  ", "ACME"},
		{"Koç Holding 12", "KOÇ HOLDİNG"},
		{"şahin nakliyat", "ŞAHİN NAKLİYAT"},
		{"Stok 3", "STOK"},
		{"Acme - ", "ACME"},
		{"42", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCompany(tt.in), "girdi %q", tt.in)
	}
}

func TestByCompany_NumberedSiblingsCollapse(t *testing.T) {
	dampers := []*storage.Damper{
		{ID: 1, Musteri: "Acme 1", M3: m3Ptr(14), PlazmaProgrami: true},
		{ID: 2, Musteri: "Acme 2", M3: m3Ptr(14)},
		{ID: 3, Musteri: "Beta", M3: m3Ptr(16.5)},
	}

	groups := ByCompany(dampers, steps.Damper)
	require.Len(t, groups, 2)

	// ACME iki siparişle önde gelir.
	acme := groups[0]
	assert.Equal(t, "ACME", acme.BaseCompany)
	assert.Equal(t, 2, acme.TotalOrders)
	assert.Equal(t, 28.0, acme.TotalM3)
	assert.Equal(t, 1, acme.DevamEden)
	assert.Equal(t, 1, acme.Baslamayan)

	require.Len(t, acme.Variants, 2)
	assert.Equal(t, "Acme 1", acme.Variants[0].Name)
	assert.Equal(t, "Acme 2", acme.Variants[1].Name)

	require.Len(t, acme.M3Groups, 1)
	assert.Equal(t, 14.0, acme.M3Groups[0].M3)
	assert.Equal(t, 2, acme.M3Groups[0].Count)

	require.Len(t, acme.Orders, 2)
	assert.Equal(t, int64(1), acme.Orders[0].ID)

	assert.Equal(t, "BETA", groups[1].BaseCompany)
}

func TestByCompany_IsPartition(t *testing.T) {
	dampers := []*storage.Damper{
		{ID: 1, Musteri: "Acme 1"},
		{ID: 2, Musteri: "Beta"},
		{ID: 3, Musteri: ""},
		{ID: 4, Musteri: "7"},
	}

	groups := ByCompany(dampers, steps.Damper)

	total := 0
	seen := make(map[int64]bool)
	for _, g := range groups {
		total += g.TotalOrders
		for _, o := range g.Orders {
			assert.False(t, seen[o.ID], "sipariş iki grupta: %d", o.ID)
			seen[o.ID] = true
		}
	}
	// Adı boş anahtara inen siparişler de bir grupta yer alır.
	assert.Equal(t, len(dampers), total)
	assert.Len(t, seen, len(dampers))
}

func TestByCompany_M3GroupsDescending(t *testing.T) {
	dampers := []*storage.Damper{
		{ID: 1, Musteri: "Acme", M3: m3Ptr(12)},
		{ID: 2, Musteri: "Acme", M3: m3Ptr(18)},
		{ID: 3, Musteri: "Acme", M3: m3Ptr(14)},
	}

	groups := ByCompany(dampers, steps.Damper)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].M3Groups, 3)
	assert.Equal(t, 18.0, groups[0].M3Groups[0].M3)
	assert.Equal(t, 14.0, groups[0].M3Groups[1].M3)
	assert.Equal(t, 12.0, groups[0].M3Groups[2].M3)
}

func TestCompanyDistribution(t *testing.T) {
	dampers := []*storage.Damper{
		{ID: 1, Musteri: "Acme 1"},
		{ID: 2, Musteri: "Acme 2"},
		{ID: 3, Musteri: "Acme 3"},
		{ID: 4, Musteri: "Beta"},
		{ID: 5, Musteri: "Beta 2"},
		{ID: 6, Musteri: "Çelik"},
		{ID: 7, Musteri: ""}, // boş anahtar dağılıma girmez
	}

	dist := CompanyDistribution(dampers, 2)

	require.Len(t, dist, 2)
	assert.Equal(t, CompanyCount{Name: "ACME", Count: 3}, dist[0])
	assert.Equal(t, CompanyCount{Name: "BETA", Count: 2}, dist[1])
}
