package constants

// Closed option sets of the order forms. The frontend renders these as
// dropdowns; the update handlers accept any string so new options only need
// to be added here.
var (
	AracGeldiMi = []string{"EVET", "HAYIR"}

	DamperTip = []string{"HAVUZ DAMPER", "HAVUZ DAMPER + HİDROLİK KAPAK", "KÖŞELİ DAMPER"}

	MalzemeCinsi = []string{"HARDOX", "ST52"}

	AracMarka = []string{"FORD", "MERCEDES", "MAN", "MBT 3342"}

	Model = []string{"3545 D", "3345 K", "1833", "2533 D", "4145 D", "41440"}

	KurumMuayenesi = []string{"YOK", "YAPILDI"}

	DmoMuayenesi = []string{"MUAYENE YOK", "YAPILDI"}

	Dingil = []string{"2 DİNGİL", "3 DİNGİL"}

	Tampon = []string{"Katlanır Tampon", "Sabit Tampon"}
)

// Dropdowns is the payload of GET /api/dropdowns.
var Dropdowns = map[string][]string{
	"aracGeldiMi":    AracGeldiMi,
	"tip":            DamperTip,
	"malzemeCinsi":   MalzemeCinsi,
	"aracMarka":      AracMarka,
	"model":          Model,
	"kurumMuayenesi": KurumMuayenesi,
	"dmoMuayenesi":   DmoMuayenesi,
	"dingil":         Dingil,
	"tampon":         Tampon,
}
