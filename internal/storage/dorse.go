package storage

import "time"

// Dorse is one tipping-trailer order. A dorse may be linked to a stock şasi
// (SasiID) once one is assigned to it on the floor.
type Dorse struct {
	ID            int64    `json:"id"`
	ImalatNo      *int64   `json:"imalatNo"`
	Musteri       string   `json:"musteri"`
	SasiNo        *string  `json:"sasiNo"`
	CekiciGeldiMi bool     `json:"cekiciGeldiMi"`
	Dingil        *string  `json:"dingil"`
	Lastik        *string  `json:"lastik"`
	Tampon        *string  `json:"tampon"`
	Kalinlik      *string  `json:"kalinlik"`
	Silindir      *string  `json:"silindir"`
	MalzemeCinsi  *string  `json:"malzemeCinsi"`
	M3            *float64 `json:"m3"`
	Adet          int      `json:"adet"`
	SasiID        *int64   `json:"sasiId"`

	PlazmaProgrami         bool `json:"plazmaProgrami"`
	SacMalzemeKontrolu     bool `json:"sacMalzemeKontrolu"`
	PlazmaKesim            bool `json:"plazmaKesim"`
	PresBukum              bool `json:"presBukum"`
	DorseSasi              bool `json:"dorseSasi"`
	MilAltKutuk            bool `json:"milAltKutuk"`
	Taban                  bool `json:"taban"`
	Yan                    bool `json:"yan"`
	OnGogus                bool `json:"onGogus"`
	ArkaKapak              bool `json:"arkaKapak"`
	YuklemeMalzemesi       bool `json:"yuklemeMalzemesi"`
	DorseKurulmasi         bool `json:"dorseKurulmasi"`
	DorseKaynak            bool `json:"dorseKaynak"`
	KapakSiperlik          bool `json:"kapakSiperlik"`
	Yukleme                bool `json:"yukleme"`
	Hidrolik               bool `json:"hidrolik"`
	BoyaHazirlik           bool `json:"boyaHazirlik"`
	DorseSasiBoyama        bool `json:"dorseSasiBoyama"`
	CekiciElektrik         bool `json:"cekiciElektrik"`
	CekiciHidrolik         bool `json:"cekiciHidrolik"`
	Fren                   bool `json:"fren"`
	DorseElektrik          bool `json:"dorseElektrik"`
	Tamamlama              bool `json:"tamamlama"`
	AracKontrolBypassAyari bool `json:"aracKontrolBypassAyari"`
	SonKontrol             bool `json:"sonKontrol"`
	TipOnay                bool `json:"tipOnay"`
	Fatura                 bool `json:"fatura"`
	Tahsilat               bool `json:"tahsilat"`
	Teslimat               bool `json:"teslimat"`

	AkmTseMuayenesi string `json:"akmTseMuayenesi"`
	DmoMuayenesi    string `json:"dmoMuayenesi"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *Dorse) StepDone(key string) bool {
	switch key {
	case "plazmaProgrami":
		return d.PlazmaProgrami
	case "sacMalzemeKontrolu":
		return d.SacMalzemeKontrolu
	case "plazmaKesim":
		return d.PlazmaKesim
	case "presBukum":
		return d.PresBukum
	case "dorseSasi":
		return d.DorseSasi
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
	case "dorseKurulmasi":
		return d.DorseKurulmasi
	case "dorseKaynak":
		return d.DorseKaynak
	case "kapakSiperlik":
		return d.KapakSiperlik
	case "yukleme":
		return d.Yukleme
	case "hidrolik":
		return d.Hidrolik
	case "boyaHazirlik":
		return d.BoyaHazirlik
	case "dorseSasiBoyama":
		return d.DorseSasiBoyama
	case "cekiciElektrik":
		return d.CekiciElektrik
	case "cekiciHidrolik":
		return d.CekiciHidrolik
	case "fren":
		return d.Fren
	case "dorseElektrik":
		return d.DorseElektrik
	case "tamamlama":
		return d.Tamamlama
	case "aracKontrolBypassAyari":
		return d.AracKontrolBypassAyari
	case "sonKontrol":
		return d.SonKontrol
	case "tipOnay":
		return d.TipOnay
	case "fatura":
		return d.Fatura
	case "tahsilat":
		return d.Tahsilat
	case "teslimat":
		return d.Teslimat
	default:
		return false
	}
}

func (d *Dorse) EnumValue(key string) string {
	switch key {
	case "akmTseMuayenesi":
		return d.AkmTseMuayenesi
	case "dmoMuayenesi":
		return d.DmoMuayenesi
	default:
		return ""
	}
}

func (d *Dorse) OrderID() int64       { return d.ID }
func (d *Dorse) SerialNo() *int64     { return d.ImalatNo }
func (d *Dorse) CustomerName() string { return d.Musteri }
func (d *Dorse) Capacity() *float64   { return d.M3 }

type DorseUpdate struct {
	ImalatNo      *int64   `json:"imalatNo"`
	Musteri       *string  `json:"musteri"`
	SasiNo        *string  `json:"sasiNo"`
	CekiciGeldiMi *bool    `json:"cekiciGeldiMi"`
	Dingil        *string  `json:"dingil"`
	Lastik        *string  `json:"lastik"`
	Tampon        *string  `json:"tampon"`
	Kalinlik      *string  `json:"kalinlik"`
	Silindir      *string  `json:"silindir"`
	MalzemeCinsi  *string  `json:"malzemeCinsi"`
	M3            *float64 `json:"m3"`

	PlazmaProgrami         *bool `json:"plazmaProgrami"`
	SacMalzemeKontrolu     *bool `json:"sacMalzemeKontrolu"`
	PlazmaKesim            *bool `json:"plazmaKesim"`
	PresBukum              *bool `json:"presBukum"`
	DorseSasi              *bool `json:"dorseSasi"`
	MilAltKutuk            *bool `json:"milAltKutuk"`
	Taban                  *bool `json:"taban"`
	Yan                    *bool `json:"yan"`
	OnGogus                *bool `json:"onGogus"`
	ArkaKapak              *bool `json:"arkaKapak"`
	YuklemeMalzemesi       *bool `json:"yuklemeMalzemesi"`
	DorseKurulmasi         *bool `json:"dorseKurulmasi"`
	DorseKaynak            *bool `json:"dorseKaynak"`
	KapakSiperlik          *bool `json:"kapakSiperlik"`
	Yukleme                *bool `json:"yukleme"`
	Hidrolik               *bool `json:"hidrolik"`
	BoyaHazirlik           *bool `json:"boyaHazirlik"`
	DorseSasiBoyama        *bool `json:"dorseSasiBoyama"`
	CekiciElektrik         *bool `json:"cekiciElektrik"`
	CekiciHidrolik         *bool `json:"cekiciHidrolik"`
	Fren                   *bool `json:"fren"`
	DorseElektrik          *bool `json:"dorseElektrik"`
	Tamamlama              *bool `json:"tamamlama"`
	AracKontrolBypassAyari *bool `json:"aracKontrolBypassAyari"`
	SonKontrol             *bool `json:"sonKontrol"`
	TipOnay                *bool `json:"tipOnay"`
	Fatura                 *bool `json:"fatura"`
	Tahsilat               *bool `json:"tahsilat"`
	Teslimat               *bool `json:"teslimat"`

	AkmTseMuayenesi *string `json:"akmTseMuayenesi"`
	DmoMuayenesi    *string `json:"dmoMuayenesi"`
}
