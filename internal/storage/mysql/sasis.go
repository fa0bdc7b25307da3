package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"damper-takip/internal/storage"
)

const sasiColumns = `id, imalat_no, musteri, sasi_no, tampon, dingil, adet, is_linked,
	plazma_programi, sac_malzeme_kontrolu, plazma_kesim, pres_bukum,
	boyun_hazirlik, travers_hazirlik,
	sasi_kaynak, dingil_montaj, tampon_montaj, hava_tesisati, elektrik_tesisati, fren, boya, son_kontrol,
	created_at, updated_at`

func scanSasi(row interface{ Scan(...interface{}) error }) (*storage.Sasi, error) {
	var s storage.Sasi
	err := row.Scan(
		&s.ID, &s.ImalatNo, &s.Musteri, &s.SasiNo, &s.Tampon, &s.Dingil, &s.Adet, &s.IsLinked,
		&s.PlazmaProgrami, &s.SacMalzemeKontrolu, &s.PlazmaKesim, &s.PresBukum,
		&s.BoyunHazirlik, &s.TraversHazirlik,
		&s.SasiKaynak, &s.DingilMontaj, &s.TamponMontaj, &s.HavaTesisati, &s.ElektrikTesisati, &s.Fren, &s.Boya, &s.SonKontrol,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Storage) GetSasis(ctx context.Context, search string) ([]*storage.Sasi, error) {
	const op = "storage.mysql.GetSasis"

	stmt := `SELECT ` + sasiColumns + ` FROM sasis`
	var args []interface{}
	if search != "" {
		stmt += ` WHERE musteri LIKE ? OR CAST(imalat_no AS CHAR) = ?`
		args = append(args, "%"+search+"%", search)
	}
	stmt += ` ORDER BY imalat_no DESC`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sasis []*storage.Sasi
	for rows.Next() {
		sa, err := scanSasi(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		sasis = append(sasis, sa)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sasis, nil
}

func (s *Storage) GetSasi(ctx context.Context, id int64) (*storage.Sasi, error) {
	const op = "storage.mysql.GetSasi"

	row := s.db.QueryRowContext(ctx, `SELECT `+sasiColumns+` FROM sasis WHERE id = ?`, id)
	sa, err := scanSasi(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sa, nil
}

// GetUnlinkedSasis lists şasis still waiting to be assigned to a dorse.
func (s *Storage) GetUnlinkedSasis(ctx context.Context) ([]*storage.Sasi, error) {
	const op = "storage.mysql.GetUnlinkedSasis"

	rows, err := s.db.QueryContext(ctx, `SELECT `+sasiColumns+` FROM sasis WHERE is_linked = FALSE ORDER BY imalat_no DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sasis []*storage.Sasi
	for rows.Next() {
		sa, err := scanSasi(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		sasis = append(sasis, sa)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sasis, nil
}

func (s *Storage) SaveSasi(ctx context.Context, sa *storage.Sasi) (int64, error) {
	const op = "storage.mysql.SaveSasi"

	stmt := `INSERT INTO sasis (imalat_no, musteri, sasi_no, tampon, dingil, adet, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`

	res, err := s.db.ExecContext(ctx, stmt, sa.ImalatNo, sa.Musteri, sa.SasiNo, sa.Tampon, sa.Dingil, 1)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *Storage) UpdateSasi(ctx context.Context, id int64, u storage.SasiUpdate) error {
	const op = "storage.mysql.UpdateSasi"

	var c setClause
	if u.ImalatNo != nil {
		c.set("imalat_no", *u.ImalatNo)
	}
	if u.Musteri != nil {
		c.set("musteri", *u.Musteri)
	}
	if u.SasiNo != nil {
		c.set("sasi_no", *u.SasiNo)
	}
	if u.Tampon != nil {
		c.set("tampon", *u.Tampon)
	}
	if u.Dingil != nil {
		c.set("dingil", *u.Dingil)
	}
	if u.PlazmaProgrami != nil {
		c.set("plazma_programi", *u.PlazmaProgrami)
	}
	if u.SacMalzemeKontrolu != nil {
		c.set("sac_malzeme_kontrolu", *u.SacMalzemeKontrolu)
	}
	if u.PlazmaKesim != nil {
		c.set("plazma_kesim", *u.PlazmaKesim)
	}
	if u.PresBukum != nil {
		c.set("pres_bukum", *u.PresBukum)
	}
	if u.BoyunHazirlik != nil {
		c.set("boyun_hazirlik", *u.BoyunHazirlik)
	}
	if u.TraversHazirlik != nil {
		c.set("travers_hazirlik", *u.TraversHazirlik)
	}
	if u.SasiKaynak != nil {
		c.set("sasi_kaynak", *u.SasiKaynak)
	}
	if u.DingilMontaj != nil {
		c.set("dingil_montaj", *u.DingilMontaj)
	}
	if u.TamponMontaj != nil {
		c.set("tampon_montaj", *u.TamponMontaj)
	}
	if u.HavaTesisati != nil {
		c.set("hava_tesisati", *u.HavaTesisati)
	}
	if u.ElektrikTesisati != nil {
		c.set("elektrik_tesisati", *u.ElektrikTesisati)
	}
	if u.Fren != nil {
		c.set("fren", *u.Fren)
	}
	if u.Boya != nil {
		c.set("boya", *u.Boya)
	}
	if u.SonKontrol != nil {
		c.set("son_kontrol", *u.SonKontrol)
	}

	if c.empty() {
		return nil
	}
	c.set("updated_at", time.Now())

	stmt := `UPDATE sasis SET ` + strings.Join(c.cols, ", ") + ` WHERE id = ?`
	args := append(c.args, id)

	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func (s *Storage) DeleteSasi(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteSasi"

	res, err := s.db.ExecContext(ctx, `DELETE FROM sasis WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
