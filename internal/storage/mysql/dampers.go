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

var ErrNotFound = errors.New("kayıt bulunamadı")

const damperColumns = `id, imalat_no, musteri, sasi_no, arac_geldi_mi, arac_marka, model, tip, malzeme_cinsi, m3, adet,
	plazma_programi, sac_malzeme_kontrolu, plazma_kesim, damper_sasi_plazma_kesim, pres_bukum,
	arac_braket, damper_sasi, sasi_yukleme,
	mil_alt_kutuk, taban, yan, on_gogus, arka_kapak, yukleme_malzemesi,
	damper_kurulmasi, damper_kaynak, sasi_kapak_siperlik, yukleme,
	hidrolik, boya_hazirlik, boya,
	elektrik, hava, tamamlama, son_kontrol, teslimat,
	kurum_muayenesi, dmo_muayenesi,
	created_at, updated_at`

func scanDamper(row interface{ Scan(...interface{}) error }) (*storage.Damper, error) {
	var d storage.Damper
	err := row.Scan(
		&d.ID, &d.ImalatNo, &d.Musteri, &d.SasiNo, &d.AracGeldiMi, &d.AracMarka, &d.Model, &d.Tip, &d.MalzemeCinsi, &d.M3, &d.Adet,
		&d.PlazmaProgrami, &d.SacMalzemeKontrolu, &d.PlazmaKesim, &d.DamperSasiPlazmaKesim, &d.PresBukum,
		&d.AracBraket, &d.DamperSasi, &d.SasiYukleme,
		&d.MilAltKutuk, &d.Taban, &d.Yan, &d.OnGogus, &d.ArkaKapak, &d.YuklemeMalzemesi,
		&d.DamperKurulmasi, &d.DamperKaynak, &d.SasiKapakSiperlik, &d.Yukleme,
		&d.Hidrolik, &d.BoyaHazirlik, &d.Boya,
		&d.Elektrik, &d.Hava, &d.Tamamlama, &d.SonKontrol, &d.Teslimat,
		&d.KurumMuayenesi, &d.DmoMuayenesi,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type DamperFilter struct {
	Search       string
	Tip          string
	MalzemeCinsi string
}

func (s *Storage) GetDampers(ctx context.Context, filter DamperFilter) ([]*storage.Damper, error) {
	const op = "storage.mysql.GetDampers"

	stmt := `SELECT ` + damperColumns + ` FROM dampers`
	var conds []string
	var args []interface{}

	if filter.Search != "" {
		conds = append(conds, "(musteri LIKE ? OR CAST(imalat_no AS CHAR) = ?)")
		args = append(args, "%"+filter.Search+"%", filter.Search)
	}
	if filter.Tip != "" {
		conds = append(conds, "tip = ?")
		args = append(args, filter.Tip)
	}
	if filter.MalzemeCinsi != "" {
		conds = append(conds, "malzeme_cinsi = ?")
		args = append(args, filter.MalzemeCinsi)
	}
	if len(conds) > 0 {
		stmt += " WHERE " + strings.Join(conds, " AND ")
	}
	stmt += " ORDER BY imalat_no DESC"

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var dampers []*storage.Damper
	for rows.Next() {
		d, err := scanDamper(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		dampers = append(dampers, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return dampers, nil
}

func (s *Storage) GetDamper(ctx context.Context, id int64) (*storage.Damper, error) {
	const op = "storage.mysql.GetDamper"

	row := s.db.QueryRowContext(ctx, `SELECT `+damperColumns+` FROM dampers WHERE id = ?`, id)
	d, err := scanDamper(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

func (s *Storage) SaveDamper(ctx context.Context, d *storage.Damper) (int64, error) {
	const op = "storage.mysql.SaveDamper"

	stmt := `INSERT INTO dampers (imalat_no, musteri, sasi_no, arac_geldi_mi, arac_marka, model, tip, malzeme_cinsi, m3, adet,
		kurum_muayenesi, dmo_muayenesi, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	kurum := d.KurumMuayenesi
	if kurum == "" {
		kurum = "YOK"
	}
	dmo := d.DmoMuayenesi
	if dmo == "" {
		dmo = "MUAYENE YOK"
	}

	res, err := s.db.ExecContext(ctx, stmt,
		d.ImalatNo, d.Musteri, d.SasiNo, d.AracGeldiMi, d.AracMarka, d.Model, d.Tip, d.MalzemeCinsi, d.M3, 1,
		kurum, dmo,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *Storage) UpdateDamper(ctx context.Context, id int64, u storage.DamperUpdate) error {
	const op = "storage.mysql.UpdateDamper"

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
	if u.AracGeldiMi != nil {
		c.set("arac_geldi_mi", *u.AracGeldiMi)
	}
	if u.AracMarka != nil {
		c.set("arac_marka", *u.AracMarka)
	}
	if u.Model != nil {
		c.set("model", *u.Model)
	}
	if u.Tip != nil {
		c.set("tip", *u.Tip)
	}
	if u.MalzemeCinsi != nil {
		c.set("malzeme_cinsi", *u.MalzemeCinsi)
	}
	if u.M3 != nil {
		c.set("m3", *u.M3)
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
	if u.DamperSasiPlazmaKesim != nil {
		c.set("damper_sasi_plazma_kesim", *u.DamperSasiPlazmaKesim)
	}
	if u.PresBukum != nil {
		c.set("pres_bukum", *u.PresBukum)
	}
	if u.AracBraket != nil {
		c.set("arac_braket", *u.AracBraket)
	}
	if u.DamperSasi != nil {
		c.set("damper_sasi", *u.DamperSasi)
	}
	if u.SasiYukleme != nil {
		c.set("sasi_yukleme", *u.SasiYukleme)
	}
	if u.MilAltKutuk != nil {
		c.set("mil_alt_kutuk", *u.MilAltKutuk)
	}
	if u.Taban != nil {
		c.set("taban", *u.Taban)
	}
	if u.Yan != nil {
		c.set("yan", *u.Yan)
	}
	if u.OnGogus != nil {
		c.set("on_gogus", *u.OnGogus)
	}
	if u.ArkaKapak != nil {
		c.set("arka_kapak", *u.ArkaKapak)
	}
	if u.YuklemeMalzemesi != nil {
		c.set("yukleme_malzemesi", *u.YuklemeMalzemesi)
	}
	if u.DamperKurulmasi != nil {
		c.set("damper_kurulmasi", *u.DamperKurulmasi)
	}
	if u.DamperKaynak != nil {
		c.set("damper_kaynak", *u.DamperKaynak)
	}
	if u.SasiKapakSiperlik != nil {
		c.set("sasi_kapak_siperlik", *u.SasiKapakSiperlik)
	}
	if u.Yukleme != nil {
		c.set("yukleme", *u.Yukleme)
	}
	if u.Hidrolik != nil {
		c.set("hidrolik", *u.Hidrolik)
	}
	if u.BoyaHazirlik != nil {
		c.set("boya_hazirlik", *u.BoyaHazirlik)
	}
	if u.Boya != nil {
		c.set("boya", *u.Boya)
	}
	if u.Elektrik != nil {
		c.set("elektrik", *u.Elektrik)
	}
	if u.Hava != nil {
		c.set("hava", *u.Hava)
	}
	if u.Tamamlama != nil {
		c.set("tamamlama", *u.Tamamlama)
	}
	if u.SonKontrol != nil {
		c.set("son_kontrol", *u.SonKontrol)
	}
	if u.Teslimat != nil {
		c.set("teslimat", *u.Teslimat)
	}
	if u.KurumMuayenesi != nil {
		c.set("kurum_muayenesi", *u.KurumMuayenesi)
	}
	if u.DmoMuayenesi != nil {
		c.set("dmo_muayenesi", *u.DmoMuayenesi)
	}

	if c.empty() {
		return nil
	}
	c.set("updated_at", time.Now())

	stmt := `UPDATE dampers SET ` + strings.Join(c.cols, ", ") + ` WHERE id = ?`
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

func (s *Storage) DeleteDamper(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteDamper"

	res, err := s.db.ExecContext(ctx, `DELETE FROM dampers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// GetRecentDampers returns dampers touched since the given moment, newest
// first. Backs the recent-activity feed.
func (s *Storage) GetRecentDampers(ctx context.Context, since time.Time, limit int) ([]*storage.Damper, error) {
	const op = "storage.mysql.GetRecentDampers"

	stmt := `SELECT ` + damperColumns + ` FROM dampers WHERE updated_at >= ? ORDER BY updated_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, stmt, since, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var dampers []*storage.Damper
	for rows.Next() {
		d, err := scanDamper(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		dampers = append(dampers, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return dampers, nil
}

// GetDampersByM3 returns the candidates for a company+M³ bulk delete; the
// caller narrows them down with the company normalization rule.
func (s *Storage) GetDampersByM3(ctx context.Context, m3 float64) ([]*storage.Damper, error) {
	const op = "storage.mysql.GetDampersByM3"

	rows, err := s.db.QueryContext(ctx, `SELECT `+damperColumns+` FROM dampers WHERE m3 = ?`, m3)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var dampers []*storage.Damper
	for rows.Next() {
		d, err := scanDamper(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		dampers = append(dampers, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return dampers, nil
}

func (s *Storage) DeleteDampersByID(ctx context.Context, ids []int64) (int64, error) {
	const op = "storage.mysql.DeleteDampersByID"

	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM dampers WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
