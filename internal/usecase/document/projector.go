package document

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"lexcase-backend/internal/domain/casefile"
	"lexcase-backend/pkg/placeholder"
)

const dateFormat = "02.01.2006"

var trPrinter = message.NewPrinter(language.Turkish)

// formatCurrency renders an amount the Turkish way: dot-grouped, comma
// decimals, two digits, TL suffix. Zero (the value absent amounts carry)
// comes out as "0,00 TL".
func formatCurrency(amount float64) string {
	return trPrinter.Sprintf("%v TL",
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func formatDate(t *time.Time) string {
	if t == nil {
		return placeholder.Missing
	}
	return t.Format(dateFormat)
}

func textOrMissing(s string) string {
	if s == "" {
		return placeholder.Missing
	}
	return s
}

// BuildTemplateData projects a case file into the flat token map both
// renderers consume. Pure except for the caller-supplied now, which feeds the
// bugunTarih token. The token set is fixed: templates refer to these names.
func BuildTemplateData(f *casefile.CaseFile, now time.Time) map[string]string {
	vekil := ""
	if f.Vekil != nil {
		vekil = *f.Vekil
	}
	gun := placeholder.Missing
	if f.Gun != nil {
		gun = strconv.Itoa(*f.Gun)
	}
	bakiye := f.KazaBasiTeminat - f.AsilOdemeTutari

	return map[string]string{
		"hukukNo":     textOrMissing(f.HukukNo),
		"bugunTarih":  now.Format(dateFormat),
		"dosyaEsasNo": textOrMissing(f.EsasNo),
		"asilAdi":     textOrMissing(f.Basvuran),
		"vekilAdi":    textOrMissing(vekil),

		"kazaTarihi":     formatDate(f.KazaTarihi),
		"karsiAracPlaka": textOrMissing(f.KarsiPlaka),
		"sigortaliPlaka": textOrMissing(f.SigortaliPlaka),

		"aracHasariTalep": formatCurrency(f.TahminiAracHasari),
		"degerKaybiTalep": formatCurrency(f.TahminiDegerKaybi),
		"ekspertizTalep":  formatCurrency(f.TahminiEkspertizUcreti),

		"policeBaslangic": formatDate(f.PoliceBaslangicTarihi),
		"policeBitis":     formatDate(f.PoliceBitisTarihi),
		"gecenGunPolice":  gun,
		"aracBasiTeminat": formatCurrency(f.AracBasiTeminat),
		"kazaBasiTeminat": formatCurrency(f.KazaBasiTeminat),

		"aracHasarOdemeTarih": formatDate(f.AsilOdemeTarihi),
		"aracHasarOdemeTutar": formatCurrency(f.AsilOdemeTutari),
		// same source amount as aracHasarOdemeTutar; templates expect both names
		"degerKaybiOdemeTutar": formatCurrency(f.AsilOdemeTutari),
		"bakiyeLimit":          formatCurrency(bakiye),

		"bagliHukukDosya": textOrMissing(f.BagliHukuk),
	}
}
