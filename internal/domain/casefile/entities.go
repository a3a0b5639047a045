package casefile

import (
	"errors"
	"time"
)

// ErrAlreadyExists is returned when a create collides with an existing foy no.
var ErrAlreadyExists = errors.New("case file already exists")

// CaseFile is one legal case file. FoyNo is the business key and is immutable
// once created; everything else is optional data filled in over the life of
// the case. Date columns carry no time component.
type CaseFile struct {
	FoyNo int `gorm:"primaryKey;column:foy_no" json:"foyNo"`

	EsasNo   string  `gorm:"size:100;column:esas_no" json:"esasNo"`
	HukukNo  string  `gorm:"size:100;column:hukuk_no" json:"hukukNo"`
	Basvuran string  `gorm:"size:255;column:basvuran" json:"basvuran"`
	Vekil    *string `gorm:"size:255;column:vekil" json:"vekil"`

	BagliHukuk string `gorm:"size:100;column:bagli_hukuk" json:"bagliHukuk"`
	BagliHasar string `gorm:"size:100;column:bagli_hasar" json:"bagliHasar"`

	PoliceBaslangicTarihi *time.Time `gorm:"type:date;column:police_baslangic_tarihi" json:"policeBaslangicTarihi"`
	PoliceBitisTarihi     *time.Time `gorm:"type:date;column:police_bitis_tarihi" json:"policeBitisTarihi"`
	KazaTarihi            *time.Time `gorm:"type:date;column:kaza_tarihi" json:"kazaTarihi"`
	Gun                   *int       `gorm:"column:gun" json:"gun"`
	PoliceKontrol         *bool      `gorm:"column:police_kontrol" json:"policeKontrol"`

	SigortaliPlaka string `gorm:"size:50;column:sigortali_plaka" json:"sigortaliPlaka"`
	KarsiPlaka     string `gorm:"size:50;column:karsi_plaka" json:"karsiPlaka"`

	AracBasiTeminat float64 `gorm:"type:decimal(19,2);column:arac_basi_teminat" json:"aracBasiTeminat"`
	KazaBasiTeminat float64 `gorm:"type:decimal(19,2);column:kaza_basi_teminat" json:"kazaBasiTeminat"`

	AsilOdemeTuru       string     `gorm:"size:255;column:asil_odeme_turu" json:"asilOdemeTuru"`
	AsilOdemeTarihi     *time.Time `gorm:"type:date;column:asil_odeme_tarihi" json:"asilOdemeTarihi"`
	AsilOdemeTutari     float64    `gorm:"type:decimal(19,2);column:asil_odeme_tutari" json:"asilOdemeTutari"`
	DogrudanOdemeTarihi *time.Time `gorm:"type:date;column:dogrudan_odeme_tarihi" json:"dogrudanOdemeTarihi"`
	DogrudanOdemeTutari float64    `gorm:"type:decimal(19,2);column:dogrudan_odeme_tutari" json:"dogrudanOdemeTutari"`

	TaslakAdi string `gorm:"size:255;column:taslak_adi" json:"taslakAdi"`

	TahminiAracHasari      float64 `gorm:"type:decimal(19,2);column:tahmini_arac_hasari" json:"tahminiAracHasari"`
	TahminiDegerKaybi      float64 `gorm:"type:decimal(19,2);column:tahmini_deger_kaybi" json:"tahminiDegerKaybi"`
	TahminiEkspertizUcreti float64 `gorm:"type:decimal(19,2);column:tahmini_ekspertiz_ucreti" json:"tahminiEkspertizUcreti"`
}

func (CaseFile) TableName() string { return "files" }

// Statistics is the aggregate reported by GET /files/statistics.
type Statistics struct {
	Total            int64   `json:"total"`
	WithVekil        int64   `json:"withVekil"`
	WithoutVekil     int64   `json:"withoutVekil"`
	AverageAsilOdeme float64 `json:"averageAsilOdeme"`
	AverageDogrudan  float64 `json:"averageDogrudan"`
}

// ListParams drives the paginated listing. SortBy is a json field name and is
// whitelisted by the repository.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string // "ASC" or "DESC"
}
