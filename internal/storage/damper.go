package storage

import "time"

// Damper is one dump-truck body order. Sub-step booleans are independent:
// the shop floor may complete them in any sequence, so nothing here enforces
// an ordering. Stage statuses are never stored, always computed on read.
type Damper struct {
	ID           int64    `json:"id"`
	ImalatNo     *int64   `json:"imalatNo"`
	Musteri      string   `json:"musteri"`
	SasiNo       *string  `json:"sasiNo"`
	AracGeldiMi  bool     `json:"aracGeldiMi"`
	AracMarka    *string  `json:"aracMarka"`
	Model        *string  `json:"model"`
	Tip          string   `json:"tip"`
	MalzemeCinsi string   `json:"malzemeCinsi"`
	M3           *float64 `json:"m3"`
	Adet         int      `json:"adet"`

	PlazmaProgrami        bool `json:"plazmaProgrami"`
	SacMalzemeKontrolu    bool `json:"sacMalzemeKontrolu"`
	PlazmaKesim           bool `json:"plazmaKesim"`
	DamperSasiPlazmaKesim bool `json:"damperSasiPlazmaKesim"`
	PresBukum             bool `json:"presBukum"`
	AracBraket            bool `json:"aracBraket"`
	DamperSasi            bool `json:"damperSasi"`
	SasiYukleme           bool `json:"sasiYukleme"`
	MilAltKutuk           bool `json:"milAltKutuk"`
	Taban                 bool `json:"taban"`
	Yan                   bool `json:"yan"`
	OnGogus               bool `json:"onGogus"`
	ArkaKapak             bool `json:"arkaKapak"`
	YuklemeMalzemesi      bool `json:"yuklemeMalzemesi"`
	DamperKurulmasi       bool `json:"damperKurulmasi"`
	DamperKaynak          bool `json:"damperKaynak"`
	SasiKapakSiperlik     bool `json:"sasiKapakSiperlik"`
	Yukleme               bool `json:"yukleme"`
	Hidrolik              bool `json:"hidrolik"`
	BoyaHazirlik          bool `json:"boyaHazirlik"`
	Boya                  bool `json:"boya"`
	Elektrik              bool `json:"elektrik"`
	Hava                  bool `json:"hava"`
	Tamamlama             bool `json:"tamamlama"`
	SonKontrol            bool `json:"sonKontrol"`
	Teslimat              bool `json:"teslimat"`

	KurumMuayenesi string `json:"kurumMuayenesi"`
	DmoMuayenesi   string `json:"dmoMuayenesi"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *Damper) StepDone(key string) bool {
	switch key {
	case "plazmaProgrami":
		return d.PlazmaProgrami
	case "sacMalzemeKontrolu":
		return d.SacMalzemeKontrolu
	case "plazmaKesim":
		return d.PlazmaKesim
	case "damperSasiPlazmaKesim":
		return d.DamperSasiPlazmaKesim
	case "presBukum":
		return d.PresBukum
	case "aracBraket":
		return d.AracBraket
	case "damperSasi":
		return d.DamperSasi
	case "sasiYukleme":
		return d.SasiYukleme
	case "milAltKutuk":
		return d.MilAltKutuk
	case "taban":
		return d.Taban
	case "yan":
		return d.Yan
	case "onGogus":
		return d.OnGogus
	case "arkaKapak":
		return d.ArkaKapak
	case "yuklemeMalzemesi":
		return d.YuklemeMalzemesi
	case "damperKurulmasi":
		return d.DamperKurulmasi
	case "damperKaynak":
		return d.DamperKaynak
	case "sasiKapakSiperlik":
		return d.SasiKapakSiperlik
	case "yukleme":
		return d.Yukleme
	case "hidrolik":
		return d.Hidrolik
	case "boyaHazirlik":
		return d.BoyaHazirlik
	case "boya":
		return d.Boya
	case "elektrik":
		return d.Elektrik
	case "hava":
		return d.Hava
	case "tamamlama":
		return d.Tamamlama
	case "sonKontrol":
		return d.SonKontrol
	case "teslimat":
		return d.Teslimat
	default:
		return false
	}
}

func (d *Damper) EnumValue(key string) string {
	switch key {
	case "kurumMuayenesi":
		return d.KurumMuayenesi
	case "dmoMuayenesi":
		return d.DmoMuayenesi
	default:
		return ""
	}
}

func (d *Damper) OrderID() int64       { return d.ID }
func (d *Damper) SerialNo() *int64     { return d.ImalatNo }
func (d *Damper) CustomerName() string { return d.Musteri }
func (d *Damper) Capacity() *float64   { return d.M3 }

// DamperUpdate is a partial update: nil fields keep their stored value. One
// request may flip a single sub-step, change metadata, or both.
type DamperUpdate struct {
	ImalatNo     *int64   `json:"imalatNo"`
	Musteri      *string  `json:"musteri"`
	SasiNo       *string  `json:"sasiNo"`
	AracGeldiMi  *bool    `json:"aracGeldiMi"`
	AracMarka    *string  `json:"aracMarka"`
	Model        *string  `json:"model"`
	Tip          *string  `json:"tip"`
	MalzemeCinsi *string  `json:"malzemeCinsi"`
	M3           *float64 `json:"m3"`

	PlazmaProgrami        *bool `json:"plazmaProgrami"`
	SacMalzemeKontrolu    *bool `json:"sacMalzemeKontrolu"`
	PlazmaKesim           *bool `json:"plazmaKesim"`
	DamperSasiPlazmaKesim *bool `json:"damperSasiPlazmaKesim"`
	PresBukum             *bool `json:"presBukum"`
	AracBraket            *bool `json:"aracBraket"`
	DamperSasi            *bool `json:"damperSasi"`
	SasiYukleme           *bool `json:"sasiYukleme"`
	MilAltKutuk           *bool `json:"milAltKutuk"`
	Taban                 *bool `json:"taban"`
	Yan                   *bool `json:"yan"`
	OnGogus               *bool `json:"onGogus"`
	ArkaKapak             *bool `json:"arkaKapak"`
	YuklemeMalzemesi      *bool `json:"yuklemeMalzemesi"`
	DamperKurulmasi       *bool `json:"damperKurulmasi"`
	DamperKaynak          *bool `json:"damperKaynak"`
	SasiKapakSiperlik     *bool `json:"sasiKapakSiperlik"`
	Yukleme               *bool `json:"yukleme"`
	Hidrolik              *bool `json:"hidrolik"`
	BoyaHazirlik          *bool `json:"boyaHazirlik"`
	Boya                  *bool `json:"boya"`
	Elektrik              *bool `json:"elektrik"`
	Hava                  *bool `json:"hava"`
	Tamamlama             *bool `json:"tamamlama"`
	SonKontrol            *bool `json:"sonKontrol"`
	Teslimat              *bool `json:"teslimat"`

	KurumMuayenesi *string `json:"kurumMuayenesi"`
	DmoMuayenesi   *string `json:"dmoMuayenesi"`
}
