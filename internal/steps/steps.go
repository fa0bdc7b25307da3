package steps

// Product selects one of the three taxonomies. The values double as the
// ?type= query parameter of the stats and analytics endpoints.
type Product string

const (
	Damper Product = "DAMPER"
	Dorse  Product = "DORSE"
	Sasi   Product = "SASI"
)

// ParseProduct maps a ?type= query value to a product type, accepting the
// lower-case spellings the frontend sends.
func ParseProduct(s string) (Product, bool) {
	switch s {
	case "damper", "DAMPER":
		return Damper, true
	case "dorse", "DORSE":
		return Dorse, true
	case "sasi", "SASI":
		return Sasi, true
	default:
		return "", false
	}
}

// Record is the view of one order the calculators need: sub-step booleans and
// inspection dropdowns addressed by taxonomy key. Missing keys read as
// false / empty, never as an error.
type Record interface {
	StepDone(key string) bool
	EnumValue(key string) string
}

type SubStep struct {
	Key   string
	Label string
}

// StageDefinition is one named group of sub-steps. A stage with EnumKey set
// wraps a single inspection dropdown instead of booleans; its status is
// Completed exactly when the value equals EnumDone.
type StageDefinition struct {
	Key     string
	Name    string
	Steps   []SubStep
	EnumKey string
}

// Taxonomy holds everything derived state is computed from for one product
// type: the ordered stage groups plus the flattened field list behind the
// progress percentage and the order classifier. ProgressSteps and
// ProgressEnums may cover fields that belong to no stage (Dorse terminal
// paperwork) and deliberately skip enum stages that do not block completion
// (Damper inspections).
type Taxonomy struct {
	Product       Product
	Stages        []StageDefinition
	ProgressSteps []string
	ProgressEnums []string
}

// Denominator is the fixed progress denominator of the product type.
func (t Taxonomy) Denominator() int {
	return len(t.ProgressSteps) + len(t.ProgressEnums)
}

// ForProduct returns the taxonomy of the given product type. Unknown product
// types get an empty taxonomy; callers treat that as a configuration bug
// caught by tests, not a runtime fault.
func ForProduct(p Product) Taxonomy {
	switch p {
	case Damper:
		return damperTaxonomy
	case Dorse:
		return dorseTaxonomy
	case Sasi:
		return sasiTaxonomy
	default:
		return Taxonomy{Product: p}
	}
}

// Definitions returns the ordered stage definitions of the product type.
func Definitions(p Product) []StageDefinition {
	return ForProduct(p).Stages
}

var damperTaxonomy = Taxonomy{
	Product: Damper,
	Stages: []StageDefinition{
		{Key: "kesimBukum", Name: "KESİM - BÜKÜM", Steps: []SubStep{
			{Key: "plazmaProgrami", Label: "Plazma Programı"},
			{Key: "sacMalzemeKontrolu", Label: "Sac Malzeme Kontrolü"},
			{Key: "plazmaKesim", Label: "Plazma Kesim"},
			{Key: "damperSasiPlazmaKesim", Label: "Damper Şasi Plazma Kesim"},
			{Key: "presBukum", Label: "Pres Büküm"},
		}},
		{Key: "sasiBitis", Name: "ŞASİ BİTİŞ", Steps: []SubStep{
			{Key: "aracBraket", Label: "Araç Braket"},
			{Key: "damperSasi", Label: "Damper Şasi"},
			{Key: "sasiYukleme", Label: "Şasi Yükleme"},
		}},
		{Key: "onHazirlik", Name: "ÖN HAZIRLIK", Steps: []SubStep{
			{Key: "milAltKutuk", Label: "Mil Alt Kütük"},
			{Key: "taban", Label: "Taban"},
			{Key: "yan", Label: "Yan"},
			{Key: "onGogus", Label: "Ön Göğüs"},
			{Key: "arkaKapak", Label: "Arka Kapak"},
			{Key: "yuklemeMalzemesi", Label: "Yükleme Malzemesi"},
		}},
		{Key: "montaj", Name: "MONTAJ", Steps: []SubStep{
			{Key: "damperKurulmasi", Label: "Damper Kurulması"},
			{Key: "damperKaynak", Label: "Damper Kaynak"},
			{Key: "sasiKapakSiperlik", Label: "Şasi Kapak-Siperlik"},
			{Key: "yukleme", Label: "Yükleme"},
		}},
		{Key: "hidrolik", Name: "HİDROLİK", Steps: []SubStep{
			{Key: "hidrolik", Label: "Hidrolik"},
		}},
		{Key: "boyaBitis", Name: "BOYA BİTİŞ", Steps: []SubStep{
			{Key: "boyaHazirlik", Label: "Boya Hazırlık"},
			{Key: "boya", Label: "Boya"},
		}},
		{Key: "tamamlamaBitis", Name: "TAMAMLAMA BİTİŞ", Steps: []SubStep{
			{Key: "elektrik", Label: "Elektrik"},
			{Key: "hava", Label: "Hava"},
			{Key: "tamamlama", Label: "Tamamlama"},
		}},
		{Key: "sonKontrol", Name: "SON KONTROL", Steps: []SubStep{
			{Key: "sonKontrol", Label: "Son Kontrol"},
		}},
		{Key: "kurumMuayenesi", Name: "KURUM MUAYENESİ", EnumKey: "kurumMuayenesi"},
		{Key: "dmoMuayenesi", Name: "DMO MUAYENESİ", EnumKey: "dmoMuayenesi"},
		{Key: "teslimat", Name: "TESLİMAT", Steps: []SubStep{
			{Key: "teslimat", Label: "Teslimat"},
		}},
	},
	ProgressSteps: []string{
		"plazmaProgrami", "sacMalzemeKontrolu", "plazmaKesim", "damperSasiPlazmaKesim", "presBukum",
		"aracBraket", "damperSasi", "sasiYukleme",
		"milAltKutuk", "taban", "yan", "onGogus", "arkaKapak", "yuklemeMalzemesi",
		"damperKurulmasi", "damperKaynak", "sasiKapakSiperlik", "yukleme",
		"hidrolik", "boyaHazirlik", "boya",
		"elektrik", "hava", "tamamlama", "sonKontrol", "teslimat",
	},
}

var dorseTaxonomy = Taxonomy{
	Product: Dorse,
	Stages: []StageDefinition{
		{Key: "kesimBukum", Name: "KESİM - BÜKÜM", Steps: []SubStep{
			{Key: "plazmaProgrami", Label: "Plazma Programı"},
			{Key: "sacMalzemeKontrolu", Label: "Sac Malzeme Kontrolü"},
			{Key: "plazmaKesim", Label: "Plazma Kesim"},
			{Key: "presBukum", Label: "Pres Büküm"},
			{Key: "dorseSasi", Label: "Dorse Şasi"},
		}},
		{Key: "onHazirlik", Name: "ÖN HAZIRLIK", Steps: []SubStep{
			{Key: "milAltKutuk", Label: "Mil Alt Kütük"},
			{Key: "taban", Label: "Taban"},
			{Key: "yan", Label: "Yan"},
			{Key: "onGogus", Label: "Ön Göğüs"},
			{Key: "arkaKapak", Label: "Arka Kapak"},
			{Key: "yuklemeMalzemesi", Label: "Yükleme Malzemesi"},
		}},
		{Key: "montaj", Name: "MONTAJ", Steps: []SubStep{
			{Key: "dorseKurulmasi", Label: "Dorse Kurulması"},
			{Key: "dorseKaynak", Label: "Dorse Kaynak"},
			{Key: "kapakSiperlik", Label: "Kapak-Siperlik"},
			{Key: "yukleme", Label: "Yükleme"},
			{Key: "hidrolik", Label: "Hidrolik"},
		}},
		{Key: "boya", Name: "BOYA", Steps: []SubStep{
			{Key: "boyaHazirlik", Label: "Boya Hazırlık"},
			{Key: "dorseSasiBoyama", Label: "Dorse Şasi Boyama"},
		}},
		{Key: "tamamlama", Name: "TAMAMLAMA", Steps: []SubStep{
			{Key: "fren", Label: "Fren"},
			{Key: "dorseElektrik", Label: "Dorse Elektrik"},
			{Key: "tamamlama", Label: "Tamamlama"},
			{Key: "cekiciElektrik", Label: "Çekici Elektrik"},
			{Key: "cekiciHidrolik", Label: "Çekici Hidrolik"},
			{Key: "aracKontrolBypassAyari", Label: "Araç Kontrol Bypass Ayarı"},
		}},
	},
	ProgressSteps: []string{
		"plazmaProgrami", "sacMalzemeKontrolu", "plazmaKesim", "presBukum", "dorseSasi",
		"milAltKutuk", "taban", "yan", "onGogus", "arkaKapak", "yuklemeMalzemesi",
		"dorseKurulmasi", "dorseKaynak", "kapakSiperlik", "yukleme", "hidrolik",
		"boyaHazirlik", "dorseSasiBoyama",
		"cekiciElektrik", "cekiciHidrolik",
		"fren", "dorseElektrik", "tamamlama", "aracKontrolBypassAyari",
		"sonKontrol", "tipOnay", "fatura", "tahsilat", "teslimat",
	},
	ProgressEnums: []string{"akmTseMuayenesi", "dmoMuayenesi"},
}

var sasiTaxonomy = Taxonomy{
	Product: Sasi,
	Stages: []StageDefinition{
		{Key: "kesimBukum", Name: "KESİM - BÜKÜM", Steps: []SubStep{
			{Key: "plazmaProgrami", Label: "Plazma Programı"},
			{Key: "sacMalzemeKontrolu", Label: "Sac Malzeme Kontrolü"},
			{Key: "plazmaKesim", Label: "Plazma Kesim"},
			{Key: "presBukum", Label: "Pres Büküm"},
		}},
		{Key: "onHazirlik", Name: "ÖN HAZIRLIK", Steps: []SubStep{
			{Key: "boyunHazirlik", Label: "Boyun Hazırlık"},
			{Key: "traversHazirlik", Label: "Travers Hazırlık"},
		}},
		{Key: "montaj", Name: "MONTAJ", Steps: []SubStep{
			{Key: "sasiKaynak", Label: "Şasi Kaynak"},
			{Key: "dingilMontaj", Label: "Dingil Montaj"},
			{Key: "tamponMontaj", Label: "Tampon Montaj"},
			{Key: "havaTesisati", Label: "Hava Tesisatı"},
			{Key: "elektrikTesisati", Label: "Elektrik Tesisatı"},
			{Key: "fren", Label: "Fren"},
			{Key: "boya", Label: "Boya"},
			{Key: "sonKontrol", Label: "Son Kontrol"},
		}},
	},
	ProgressSteps: []string{
		"plazmaProgrami", "sacMalzemeKontrolu", "plazmaKesim", "presBukum",
		"boyunHazirlik", "traversHazirlik",
		"sasiKaynak", "dingilMontaj", "tamponMontaj", "havaTesisati",
		"elektrikTesisati", "fren", "boya", "sonKontrol",
	},
}
