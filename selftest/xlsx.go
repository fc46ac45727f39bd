package selftest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/hesscov/matrix"
)

const defaultSheet = "Sheet1"

// SaveXLSX writes one worksheet per matrix (true_cov, meas_cov, frac_diff)
// to path, overwriting any existing file.
func (r *Report) SaveXLSX(path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	for i, sec := range r.sections() {
		if i == 0 {
			if err = f.SetSheetName(defaultSheet, sec.sheet); err != nil {
				return fmt.Errorf("selftest: xlsx: %w", err)
			}
		} else if _, err = f.NewSheet(sec.sheet); err != nil {
			return fmt.Errorf("selftest: xlsx: %w", err)
		}
		if err = writeSheet(f, sec.sheet, sec.m); err != nil {
			return fmt.Errorf("selftest: xlsx %s: %w", sec.sheet, err)
		}
	}

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("selftest: xlsx: %w", err)
	}

	return nil
}

func writeSheet(f *excelize.File, sheet string, m *matrix.Dense) error {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}

	return nil
}
