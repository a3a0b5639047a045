package casefile

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"lexcase-backend/internal/domain/casefile"
)

type Usecase struct{ repo casefile.Repository }

func NewUsecase(r casefile.Repository) *Usecase { return &Usecase{repo: r} }

const dateLayout = "2006-01-02"

// CreateInput carries the POST /files payload. Dates are ISO yyyy-mm-dd
// strings, monetary amounts must be non-negative with at most two decimals.
type CreateInput struct {
	FoyNo int `json:"foyNo" validate:"required,gt=0"`

	EsasNo   string  `json:"esasNo"`
	HukukNo  string  `json:"hukukNo"`
	Basvuran string  `json:"basvuran"`
	Vekil    *string `json:"vekil"`

	BagliHukuk string `json:"bagliHukuk"`
	BagliHasar string `json:"bagliHasar"`

	PoliceBaslangicTarihi string `json:"policeBaslangicTarihi" validate:"omitempty,datetime=2006-01-02"`
	PoliceBitisTarihi     string `json:"policeBitisTarihi" validate:"omitempty,datetime=2006-01-02"`
	KazaTarihi            string `json:"kazaTarihi" validate:"omitempty,datetime=2006-01-02"`
	Gun                   *int   `json:"gun" validate:"omitempty,gte=0"`
	PoliceKontrol         *bool  `json:"policeKontrol"`

	SigortaliPlaka string `json:"sigortaliPlaka"`
	KarsiPlaka     string `json:"karsiPlaka"`

	AracBasiTeminat float64 `json:"aracBasiTeminat" validate:"omitempty,gte=0,dec2"`
	KazaBasiTeminat float64 `json:"kazaBasiTeminat" validate:"omitempty,gte=0,dec2"`

	AsilOdemeTuru       string  `json:"asilOdemeTuru"`
	AsilOdemeTarihi     string  `json:"asilOdemeTarihi" validate:"omitempty,datetime=2006-01-02"`
	AsilOdemeTutari     float64 `json:"asilOdemeTutari" validate:"omitempty,gte=0,dec2"`
	DogrudanOdemeTarihi string  `json:"dogrudanOdemeTarihi" validate:"omitempty,datetime=2006-01-02"`
	DogrudanOdemeTutari float64 `json:"dogrudanOdemeTutari" validate:"omitempty,gte=0,dec2"`

	TaslakAdi string `json:"taslakAdi"`

	TahminiAracHasari      float64 `json:"tahminiAracHasari" validate:"omitempty,gte=0,dec2"`
	TahminiDegerKaybi      float64 `json:"tahminiDegerKaybi" validate:"omitempty,gte=0,dec2"`
	TahminiEkspertizUcreti float64 `json:"tahminiEkspertizUcreti" validate:"omitempty,gte=0,dec2"`
}

// UpdateInput is the PATCH payload: every field optional, absent fields keep
// their stored values.
type UpdateInput struct {
	EsasNo   *string `json:"esasNo"`
	HukukNo  *string `json:"hukukNo"`
	Basvuran *string `json:"basvuran"`
	Vekil    *string `json:"vekil"`

	BagliHukuk *string `json:"bagliHukuk"`
	BagliHasar *string `json:"bagliHasar"`

	PoliceBaslangicTarihi *string `json:"policeBaslangicTarihi" validate:"omitempty,datetime=2006-01-02"`
	PoliceBitisTarihi     *string `json:"policeBitisTarihi" validate:"omitempty,datetime=2006-01-02"`
	KazaTarihi            *string `json:"kazaTarihi" validate:"omitempty,datetime=2006-01-02"`
	Gun                   *int    `json:"gun" validate:"omitempty,gte=0"`
	PoliceKontrol         *bool   `json:"policeKontrol"`

	SigortaliPlaka *string `json:"sigortaliPlaka"`
	KarsiPlaka     *string `json:"karsiPlaka"`

	AracBasiTeminat *float64 `json:"aracBasiTeminat" validate:"omitempty,gte=0,dec2"`
	KazaBasiTeminat *float64 `json:"kazaBasiTeminat" validate:"omitempty,gte=0,dec2"`

	AsilOdemeTuru       *string  `json:"asilOdemeTuru"`
	AsilOdemeTarihi     *string  `json:"asilOdemeTarihi" validate:"omitempty,datetime=2006-01-02"`
	AsilOdemeTutari     *float64 `json:"asilOdemeTutari" validate:"omitempty,gte=0,dec2"`
	DogrudanOdemeTarihi *string  `json:"dogrudanOdemeTarihi" validate:"omitempty,datetime=2006-01-02"`
	DogrudanOdemeTutari *float64 `json:"dogrudanOdemeTutari" validate:"omitempty,gte=0,dec2"`

	TaslakAdi *string `json:"taslakAdi"`

	TahminiAracHasari      *float64 `json:"tahminiAracHasari" validate:"omitempty,gte=0,dec2"`
	TahminiDegerKaybi      *float64 `json:"tahminiDegerKaybi" validate:"omitempty,gte=0,dec2"`
	TahminiEkspertizUcreti *float64 `json:"tahminiEkspertizUcreti" validate:"omitempty,gte=0,dec2"`
}

// ListResult mirrors the paginated envelope of GET /files.
type ListResult struct {
	Data       []casefile.CaseFile `json:"data"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"totalPages"`
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*casefile.CaseFile, error) {
	// foyNo is immutable and unique; reject collisions up front.
	_, err := u.repo.GetByFoyNo(ctx, in.FoyNo)
	switch {
	case err == nil:
		return nil, fmt.Errorf("file with foyNo %d: %w", in.FoyNo, casefile.ErrAlreadyExists)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	f := &casefile.CaseFile{
		FoyNo:                  in.FoyNo,
		EsasNo:                 in.EsasNo,
		HukukNo:                in.HukukNo,
		Basvuran:               in.Basvuran,
		Vekil:                  in.Vekil,
		BagliHukuk:             in.BagliHukuk,
		BagliHasar:             in.BagliHasar,
		Gun:                    in.Gun,
		PoliceKontrol:          in.PoliceKontrol,
		SigortaliPlaka:         in.SigortaliPlaka,
		KarsiPlaka:             in.KarsiPlaka,
		AracBasiTeminat:        in.AracBasiTeminat,
		KazaBasiTeminat:        in.KazaBasiTeminat,
		AsilOdemeTuru:          in.AsilOdemeTuru,
		AsilOdemeTutari:        in.AsilOdemeTutari,
		DogrudanOdemeTutari:    in.DogrudanOdemeTutari,
		TaslakAdi:              in.TaslakAdi,
		TahminiAracHasari:      in.TahminiAracHasari,
		TahminiDegerKaybi:      in.TahminiDegerKaybi,
		TahminiEkspertizUcreti: in.TahminiEkspertizUcreti,
	}
	for _, d := range []struct {
		src string
		dst **time.Time
	}{
		{in.PoliceBaslangicTarihi, &f.PoliceBaslangicTarihi},
		{in.PoliceBitisTarihi, &f.PoliceBitisTarihi},
		{in.KazaTarihi, &f.KazaTarihi},
		{in.AsilOdemeTarihi, &f.AsilOdemeTarihi},
		{in.DogrudanOdemeTarihi, &f.DogrudanOdemeTarihi},
	} {
		t, err := parseDate(d.src)
		if err != nil {
			return nil, err
		}
		*d.dst = t
	}

	if err := u.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (u *Usecase) Get(ctx context.Context, foyNo int) (*casefile.CaseFile, error) {
	return u.repo.GetByFoyNo(ctx, foyNo)
}

func (u *Usecase) Update(ctx context.Context, foyNo int, in UpdateInput) (*casefile.CaseFile, error) {
	f, err := u.repo.GetByFoyNo(ctx, foyNo)
	if err != nil {
		return nil, err
	}

	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setF64 := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setDate := func(dst **time.Time, src *string) error {
		if src == nil {
			return nil
		}
		t, err := parseDate(*src)
		if err != nil {
			return err
		}
		*dst = t
		return nil
	}

	setStr(&f.EsasNo, in.EsasNo)
	setStr(&f.HukukNo, in.HukukNo)
	setStr(&f.Basvuran, in.Basvuran)
	if in.Vekil != nil {
		f.Vekil = in.Vekil
	}
	setStr(&f.BagliHukuk, in.BagliHukuk)
	setStr(&f.BagliHasar, in.BagliHasar)
	if in.Gun != nil {
		f.Gun = in.Gun
	}
	if in.PoliceKontrol != nil {
		f.PoliceKontrol = in.PoliceKontrol
	}
	setStr(&f.SigortaliPlaka, in.SigortaliPlaka)
	setStr(&f.KarsiPlaka, in.KarsiPlaka)
	setF64(&f.AracBasiTeminat, in.AracBasiTeminat)
	setF64(&f.KazaBasiTeminat, in.KazaBasiTeminat)
	setStr(&f.AsilOdemeTuru, in.AsilOdemeTuru)
	setF64(&f.AsilOdemeTutari, in.AsilOdemeTutari)
	setF64(&f.DogrudanOdemeTutari, in.DogrudanOdemeTutari)
	setStr(&f.TaslakAdi, in.TaslakAdi)
	setF64(&f.TahminiAracHasari, in.TahminiAracHasari)
	setF64(&f.TahminiDegerKaybi, in.TahminiDegerKaybi)
	setF64(&f.TahminiEkspertizUcreti, in.TahminiEkspertizUcreti)

	for _, d := range []struct {
		src *string
		dst **time.Time
	}{
		{in.PoliceBaslangicTarihi, &f.PoliceBaslangicTarihi},
		{in.PoliceBitisTarihi, &f.PoliceBitisTarihi},
		{in.KazaTarihi, &f.KazaTarihi},
		{in.AsilOdemeTarihi, &f.AsilOdemeTarihi},
		{in.DogrudanOdemeTarihi, &f.DogrudanOdemeTarihi},
	} {
		if err := setDate(d.dst, d.src); err != nil {
			return nil, err
		}
	}

	if err := u.repo.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (u *Usecase) Delete(ctx context.Context, foyNo int) error {
	// match the single-row read-then-delete of the original service
	if _, err := u.repo.GetByFoyNo(ctx, foyNo); err != nil {
		return err
	}
	return u.repo.Delete(ctx, foyNo)
}

func (u *Usecase) List(ctx context.Context, p casefile.ListParams) (*ListResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.SortBy == "" {
		p.SortBy = "foyNo"
	}
	if p.SortOrder != "ASC" {
		p.SortOrder = "DESC"
	}

	data, total, err := u.repo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []casefile.CaseFile{}
	}
	return &ListResult{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}, nil
}

func (u *Usecase) FindByEsasNo(ctx context.Context, esasNo string) ([]casefile.CaseFile, error) {
	return u.repo.FindByEsasNo(ctx, esasNo)
}

func (u *Usecase) FindByHukukNo(ctx context.Context, hukukNo string) ([]casefile.CaseFile, error) {
	return u.repo.FindByHukukNo(ctx, hukukNo)
}

func (u *Usecase) FindByPlaka(ctx context.Context, plaka string) ([]casefile.CaseFile, error) {
	return u.repo.FindByPlaka(ctx, plaka)
}

func (u *Usecase) Statistics(ctx context.Context) (*casefile.Statistics, error) {
	return u.repo.Statistics(ctx)
}
