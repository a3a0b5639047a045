package sqldb

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	caseDomain "lexcase-backend/internal/domain/casefile"
)

type CaseFileRepository struct{ db *gorm.DB }

func NewCaseFileRepository(db *gorm.DB) *CaseFileRepository { return &CaseFileRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *CaseFileRepository) Tx(ctx context.Context, fn func(repo caseDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CaseFileRepository{db: tx})
	})
}

func (r *CaseFileRepository) Create(ctx context.Context, f *caseDomain.CaseFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *CaseFileRepository) Save(ctx context.Context, f *caseDomain.CaseFile) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *CaseFileRepository) GetByFoyNo(ctx context.Context, foyNo int) (*caseDomain.CaseFile, error) {
	var out caseDomain.CaseFile
	res := r.db.WithContext(ctx).Where("foy_no = ?", foyNo).First(&out)
	return &out, res.Error
}

func (r *CaseFileRepository) Delete(ctx context.Context, foyNo int) error {
	return r.db.WithContext(ctx).Delete(&caseDomain.CaseFile{}, "foy_no = ?", foyNo).Error
}

// sortColumns whitelists List sort keys (json field name -> column).
var sortColumns = map[string]string{
	"foyNo":      "foy_no",
	"esasNo":     "esas_no",
	"hukukNo":    "hukuk_no",
	"basvuran":   "basvuran",
	"vekil":      "vekil",
	"kazaTarihi": "kaza_tarihi",
}

const searchClause = "esas_no LIKE ? OR hukuk_no LIKE ? OR basvuran LIKE ? OR vekil LIKE ? OR sigortali_plaka LIKE ? OR karsi_plaka LIKE ?"

func (r *CaseFileRepository) List(ctx context.Context, p caseDomain.ListParams) ([]caseDomain.CaseFile, int64, error) {
	q := r.db.WithContext(ctx).Model(&caseDomain.CaseFile{})
	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where(searchClause, like, like, like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := sortColumns[p.SortBy]
	if !ok {
		col = "foy_no"
	}
	dir := "DESC"
	if p.SortOrder == "ASC" {
		dir = "ASC"
	}

	var out []caseDomain.CaseFile
	err := q.Order(col + " " + dir).
		Limit(p.Limit).
		Offset((p.Page - 1) * p.Limit).
		Find(&out).Error
	return out, total, err
}

func (r *CaseFileRepository) FindByEsasNo(ctx context.Context, esasNo string) ([]caseDomain.CaseFile, error) {
	var out []caseDomain.CaseFile
	err := r.db.WithContext(ctx).Where("esas_no LIKE ?", "%"+esasNo+"%").Find(&out).Error
	return out, err
}

func (r *CaseFileRepository) FindByHukukNo(ctx context.Context, hukukNo string) ([]caseDomain.CaseFile, error) {
	var out []caseDomain.CaseFile
	err := r.db.WithContext(ctx).Where("hukuk_no LIKE ?", "%"+hukukNo+"%").Find(&out).Error
	return out, err
}

func (r *CaseFileRepository) FindByPlaka(ctx context.Context, plaka string) ([]caseDomain.CaseFile, error) {
	var out []caseDomain.CaseFile
	like := "%" + plaka + "%"
	err := r.db.WithContext(ctx).
		Where("sigortali_plaka LIKE ? OR karsi_plaka LIKE ?", like, like).
		Find(&out).Error
	return out, err
}

func (r *CaseFileRepository) Statistics(ctx context.Context) (*caseDomain.Statistics, error) {
	db := r.db.WithContext(ctx)
	s := &caseDomain.Statistics{}

	if err := db.Model(&caseDomain.CaseFile{}).Count(&s.Total).Error; err != nil {
		return nil, err
	}
	// LIKE '%' matches any non-null vekil, including the empty string
	if err := db.Model(&caseDomain.CaseFile{}).Where("vekil LIKE ?", "%").Count(&s.WithVekil).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&caseDomain.CaseFile{}).Where("vekil IS NULL").Count(&s.WithoutVekil).Error; err != nil {
		return nil, err
	}

	var avg sql.NullFloat64
	if err := db.Model(&caseDomain.CaseFile{}).Select("AVG(asil_odeme_tutari)").Scan(&avg).Error; err != nil {
		return nil, err
	}
	s.AverageAsilOdeme = avg.Float64

	avg = sql.NullFloat64{}
	if err := db.Model(&caseDomain.CaseFile{}).Select("AVG(dogrudan_odeme_tutari)").Scan(&avg).Error; err != nil {
		return nil, err
	}
	s.AverageDogrudan = avg.Float64

	return s, nil
}
