package steps

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"damper-takip/internal/storage"
)

// Her taksonomideki anahtarın kayıt tipinde bir karşılığı olmalı; kopuk bir
// anahtar ilerleme yüzdesini sessizce düşürür.
func TestTaxonomyKeysResolve(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		record  Record
	}{
		{"damper", Damper, &storage.Damper{}},
		{"dorse", Dorse, &storage.Dorse{}},
		{"sasi", Sasi, &storage.Sasi{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setAllBools(t, tt.record)

			tax := ForProduct(tt.product)

			for _, def := range tax.Stages {
				if def.EnumKey != "" {
					setEnumField(t, tt.record, def.EnumKey, EnumDone)
					assert.Equal(t, EnumDone, tt.record.EnumValue(def.EnumKey),
						"enum anahtarı çözülmüyor: %s", def.EnumKey)
					continue
				}
				for _, s := range def.Steps {
					assert.True(t, tt.record.StepDone(s.Key), "aşama anahtarı çözülmüyor: %s", s.Key)
				}
			}

			for _, key := range tax.ProgressSteps {
				assert.True(t, tt.record.StepDone(key), "ilerleme anahtarı çözülmüyor: %s", key)
			}
			for _, key := range tax.ProgressEnums {
				setEnumField(t, tt.record, key, EnumDone)
				assert.Equal(t, EnumDone, tt.record.EnumValue(key), "ilerleme enum anahtarı çözülmüyor: %s", key)
			}
		})
	}
}

func TestDenominators(t *testing.T) {
	assert.Equal(t, 26, ForProduct(Damper).Denominator())
	assert.Equal(t, 31, ForProduct(Dorse).Denominator())
	assert.Equal(t, 14, ForProduct(Sasi).Denominator())
}

func TestProgressKeysUnique(t *testing.T) {
	for _, p := range []Product{Damper, Dorse, Sasi} {
		tax := ForProduct(p)
		seen := make(map[string]bool)
		for _, key := range tax.ProgressSteps {
			assert.False(t, seen[key], "%s: tekrar eden anahtar %s", p, key)
			seen[key] = true
		}
		for _, key := range tax.ProgressEnums {
			assert.False(t, seen[key], "%s: tekrar eden anahtar %s", p, key)
			seen[key] = true
		}
	}
}

func TestStatusLiterals(t *testing.T) {
	assert.Equal(t, "BAŞLAMADI", NotStarted.String())
	assert.Equal(t, "DEVAM EDİYOR", InProgress.String())
	assert.Equal(t, "TAMAMLANDI", Completed.String())
}

func TestParseProduct(t *testing.T) {
	tests := []struct {
		in   string
		want Product
		ok   bool
	}{
		{"damper", Damper, true},
		{"DAMPER", Damper, true},
		{"dorse", Dorse, true},
		{"sasi", Sasi, true},
		{"", "", false},
		{"kamyon", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseProduct(tt.in)
		assert.Equal(t, tt.ok, ok, "girdi %q", tt.in)
		assert.Equal(t, tt.want, got, "girdi %q", tt.in)
	}
}

func TestUnknownProductEmptyTaxonomy(t *testing.T) {
	tax := ForProduct(Product("KAMYON"))
	assert.Empty(t, tax.Stages)
	assert.Zero(t, tax.Denominator())
}

func setAllBools(t *testing.T, rec Record) {
	t.Helper()
	v := reflect.ValueOf(rec).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.Bool {
			f.SetBool(true)
		}
	}
}

func setEnumField(t *testing.T, rec Record, key, value string) {
	t.Helper()
	fieldName := strings.ToUpper(key[:1]) + key[1:]
	f := reflect.ValueOf(rec).Elem().FieldByName(fieldName)
	require.True(t, f.IsValid(), "kayıt tipinde alan yok: %s", fieldName)
	f.SetString(value)
}
