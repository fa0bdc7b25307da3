package storage

import "time"

// Sasi is one bare chassis. Units built for stock carry a "Stok N" customer
// name until they are linked to a dorse order.
type Sasi struct {
	ID       int64   `json:"id"`
	ImalatNo *int64  `json:"imalatNo"`
	Musteri  string  `json:"musteri"`
	SasiNo   *string `json:"sasiNo"`
	Tampon   *string `json:"tampon"`
	Dingil   *string `json:"dingil"`
	Adet     int     `json:"adet"`
	IsLinked bool    `json:"isLinked"`

	PlazmaProgrami     bool `json:"plazmaProgrami"`
	SacMalzemeKontrolu bool `json:"sacMalzemeKontrolu"`
	PlazmaKesim        bool `json:"plazmaKesim"`
	PresBukum          bool `json:"presBukum"`
	BoyunHazirlik      bool `json:"boyunHazirlik"`
	TraversHazirlik    bool `json:"traversHazirlik"`
	SasiKaynak         bool `json:"sasiKaynak"`
	DingilMontaj       bool `json:"dingilMontaj"`
	TamponMontaj       bool `json:"tamponMontaj"`
	HavaTesisati       bool `json:"havaTesisati"`
	ElektrikTesisati   bool `json:"elektrikTesisati"`
	Fren               bool `json:"fren"`
	Boya               bool `json:"boya"`
	SonKontrol         bool `json:"sonKontrol"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Sasi) StepDone(key string) bool {
	switch key {
	case "plazmaProgrami":
		return s.PlazmaProgrami
	case "sacMalzemeKontrolu":
		return s.SacMalzemeKontrolu
	case "plazmaKesim":
		return s.PlazmaKesim
	case "presBukum":
		return s.PresBukum
	case "boyunHazirlik":
		return s.BoyunHazirlik
	case "traversHazirlik":
		return s.TraversHazirlik
	case "sasiKaynak":
		return s.SasiKaynak
	case "dingilMontaj":
		return s.DingilMontaj
	case "tamponMontaj":
		return s.TamponMontaj
	case "havaTesisati":
		return s.HavaTesisati
	case "elektrikTesisati":
		return s.ElektrikTesisati
	case "fren":
		return s.Fren
	case "boya":
		return s.Boya
	case "sonKontrol":
		return s.SonKontrol
	default:
		return false
	}
}

// Şasi has no inspection dropdowns.
func (s *Sasi) EnumValue(string) string { return "" }

func (s *Sasi) OrderID() int64       { return s.ID }
func (s *Sasi) SerialNo() *int64     { return s.ImalatNo }
func (s *Sasi) CustomerName() string { return s.Musteri }
func (s *Sasi) Capacity() *float64   { return nil }

type SasiUpdate struct {
	ImalatNo *int64  `json:"imalatNo"`
	Musteri  *string `json:"musteri"`
	SasiNo   *string `json:"sasiNo"`
	Tampon   *string `json:"tampon"`
	Dingil   *string `json:"dingil"`

	PlazmaProgrami     *bool `json:"plazmaProgrami"`
	SacMalzemeKontrolu *bool `json:"sacMalzemeKontrolu"`
	PlazmaKesim        *bool `json:"plazmaKesim"`
	PresBukum          *bool `json:"presBukum"`
	BoyunHazirlik      *bool `json:"boyunHazirlik"`
	TraversHazirlik    *bool `json:"traversHazirlik"`
	SasiKaynak         *bool `json:"sasiKaynak"`
	DingilMontaj       *bool `json:"dingilMontaj"`
	TamponMontaj       *bool `json:"tamponMontaj"`
	HavaTesisati       *bool `json:"havaTesisati"`
	ElektrikTesisati   *bool `json:"elektrikTesisati"`
	Fren               *bool `json:"fren"`
	Boya               *bool `json:"boya"`
	SonKontrol         *bool `json:"sonKontrol"`
}
