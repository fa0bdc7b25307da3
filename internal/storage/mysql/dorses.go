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

const dorseColumns = `id, imalat_no, musteri, sasi_no, cekici_geldi_mi, dingil, lastik, tampon, kalinlik, silindir, malzeme_cinsi, m3, adet, sasi_id,
	plazma_programi, sac_malzeme_kontrolu, plazma_kesim, pres_bukum, dorse_sasi,
	mil_alt_kutuk, taban, yan, on_gogus, arka_kapak, yukleme_malzemesi,
	dorse_kurulmasi, dorse_kaynak, kapak_siperlik, yukleme, hidrolik,
	boya_hazirlik, dorse_sasi_boyama,
	cekici_elektrik, cekici_hidrolik, fren, dorse_elektrik, tamamlama, arac_kontrol_bypass_ayari,
	son_kontrol, tip_onay, fatura, tahsilat, teslimat,
	akm_tse_muayenesi, dmo_muayenesi,
	created_at, updated_at`

func scanDorse(row interface{ Scan(...interface{}) error }) (*storage.Dorse, error) {
	var d storage.Dorse
	err := row.Scan(
		&d.ID, &d.ImalatNo, &d.Musteri, &d.SasiNo, &d.CekiciGeldiMi, &d.Dingil, &d.Lastik, &d.Tampon, &d.Kalinlik, &d.Silindir, &d.MalzemeCinsi, &d.M3, &d.Adet, &d.SasiID,
		&d.PlazmaProgrami, &d.SacMalzemeKontrolu, &d.PlazmaKesim, &d.PresBukum, &d.DorseSasi,
		&d.MilAltKutuk, &d.Taban, &d.Yan, &d.OnGogus, &d.ArkaKapak, &d.YuklemeMalzemesi,
		&d.DorseKurulmasi, &d.DorseKaynak, &d.KapakSiperlik, &d.Yukleme, &d.Hidrolik,
		&d.BoyaHazirlik, &d.DorseSasiBoyama,
		&d.CekiciElektrik, &d.CekiciHidrolik, &d.Fren, &d.DorseElektrik, &d.Tamamlama, &d.AracKontrolBypassAyari,
		&d.SonKontrol, &d.TipOnay, &d.Fatura, &d.Tahsilat, &d.Teslimat,
		&d.AkmTseMuayenesi, &d.DmoMuayenesi,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Storage) GetDorses(ctx context.Context, search string) ([]*storage.Dorse, error) {
	const op = "storage.mysql.GetDorses"

	stmt := `SELECT ` + dorseColumns + ` FROM dorses`
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

	var dorses []*storage.Dorse
	for rows.Next() {
		d, err := scanDorse(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		dorses = append(dorses, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return dorses, nil
}

func (s *Storage) GetDorse(ctx context.Context, id int64) (*storage.Dorse, error) {
	const op = "storage.mysql.GetDorse"

	row := s.db.QueryRowContext(ctx, `SELECT `+dorseColumns+` FROM dorses WHERE id = ?`, id)
	d, err := scanDorse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

func (s *Storage) SaveDorse(ctx context.Context, d *storage.Dorse) (int64, error) {
	const op = "storage.mysql.SaveDorse"

	stmt := `INSERT INTO dorses (imalat_no, musteri, sasi_no, cekici_geldi_mi, dingil, lastik, tampon, kalinlik, silindir, malzeme_cinsi, m3, adet,
		akm_tse_muayenesi, dmo_muayenesi, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	akm := d.AkmTseMuayenesi
	if akm == "" {
		akm = "YOK"
	}
	dmo := d.DmoMuayenesi
	if dmo == "" {
		dmo = "MUAYENE YOK"
	}

	res, err := s.db.ExecContext(ctx, stmt,
		d.ImalatNo, d.Musteri, d.SasiNo, d.CekiciGeldiMi, d.Dingil, d.Lastik, d.Tampon, d.Kalinlik, d.Silindir, d.MalzemeCinsi, d.M3, 1,
		akm, dmo,
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

func (s *Storage) UpdateDorse(ctx context.Context, id int64, u storage.DorseUpdate) error {
	const op = "storage.mysql.UpdateDorse"

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
	if u.CekiciGeldiMi != nil {
		c.set("cekici_geldi_mi", *u.CekiciGeldiMi)
	}
	if u.Dingil != nil {
		c.set("dingil", *u.Dingil)
	}
	if u.Lastik != nil {
		c.set("lastik", *u.Lastik)
	}
	if u.Tampon != nil {
		c.set("tampon", *u.Tampon)
	}
	if u.Kalinlik != nil {
		c.set("kalinlik", *u.Kalinlik)
	}
	if u.Silindir != nil {
		c.set("silindir", *u.Silindir)
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
	if u.PresBukum != nil {
		c.set("pres_bukum", *u.PresBukum)
	}
	if u.DorseSasi != nil {
		c.set("dorse_sasi", *u.DorseSasi)
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
	if u.DorseKurulmasi != nil {
		c.set("dorse_kurulmasi", *u.DorseKurulmasi)
	}
	if u.DorseKaynak != nil {
		c.set("dorse_kaynak", *u.DorseKaynak)
	}
	if u.KapakSiperlik != nil {
		c.set("kapak_siperlik", *u.KapakSiperlik)
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
	if u.DorseSasiBoyama != nil {
		c.set("dorse_sasi_boyama", *u.DorseSasiBoyama)
	}
	if u.CekiciElektrik != nil {
		c.set("cekici_elektrik", *u.CekiciElektrik)
	}
	if u.CekiciHidrolik != nil {
		c.set("cekici_hidrolik", *u.CekiciHidrolik)
	}
	if u.Fren != nil {
		c.set("fren", *u.Fren)
	}
	if u.DorseElektrik != nil {
		c.set("dorse_elektrik", *u.DorseElektrik)
	}
	if u.Tamamlama != nil {
		c.set("tamamlama", *u.Tamamlama)
	}
	if u.AracKontrolBypassAyari != nil {
		c.set("arac_kontrol_bypass_ayari", *u.AracKontrolBypassAyari)
	}
	if u.SonKontrol != nil {
		c.set("son_kontrol", *u.SonKontrol)
	}
	if u.TipOnay != nil {
		c.set("tip_onay", *u.TipOnay)
	}
	if u.Fatura != nil {
		c.set("fatura", *u.Fatura)
	}
	if u.Tahsilat != nil {
		c.set("tahsilat", *u.Tahsilat)
	}
	if u.Teslimat != nil {
		c.set("teslimat", *u.Teslimat)
	}
	if u.AkmTseMuayenesi != nil {
		c.set("akm_tse_muayenesi", *u.AkmTseMuayenesi)
	}
	if u.DmoMuayenesi != nil {
		c.set("dmo_muayenesi", *u.DmoMuayenesi)
	}

	if c.empty() {
		return nil
	}
	c.set("updated_at", time.Now())

	stmt := `UPDATE dorses SET ` + strings.Join(c.cols, ", ") + ` WHERE id = ?`
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

func (s *Storage) DeleteDorse(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteDorse"

	res, err := s.db.ExecContext(ctx, `DELETE FROM dorses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// LinkSasi assigns a stock şasi to a dorse and marks the şasi as linked, in
// one transaction so a şasi cannot end up on two dorses.
func (s *Storage) LinkSasi(ctx context.Context, dorseID, sasiID int64) error {
	const op = "storage.mysql.LinkSasi"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE sasis SET is_linked = TRUE, updated_at = NOW() WHERE id = ? AND is_linked = FALSE`, sasiID)
	if err != nil {
		return fmt.Errorf("%s: şasi güncellenemedi: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: şasi zaten bağlı: %w", op, ErrNotFound)
	}

	res, err = tx.ExecContext(ctx, `UPDATE dorses SET sasi_id = ?, updated_at = NOW() WHERE id = ?`, sasiID, dorseID)
	if err != nil {
		return fmt.Errorf("%s: dorse güncellenemedi: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: dorse bulunamadı: %w", op, ErrNotFound)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}
