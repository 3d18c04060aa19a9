package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	suspension "Fulcrum/internal/calc/suspension"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type SuspensionImportResult struct {
	Count   int                 `json:"count"`
	Results []suspension.Result `json:"results"`
}

func (h *Handler) Suspension(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []suspension.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		input, err := parseSetupRow(row)
		if err != nil {
			continue
		}
		res, err := suspension.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuspensionImportResult{Count: len(results), Results: results})
}

// expected columns: swingarm, lower_mount, upper_x, upper_y, free_length,
// stroke, rate(optional), load(optional), preload(optional)
func parseSetupRow(row []string) (suspension.Params, error) {
	if len(row) < 6 {
		return suspension.Params{}, fmt.Errorf("bad row")
	}
	var p suspension.Params
	var err error
	if p.SwingarmMM, err = toFloat(row[0]); err != nil {
		return suspension.Params{}, err
	}
	if p.LowerMountMM, err = toFloat(row[1]); err != nil {
		return suspension.Params{}, err
	}
	if p.UpperXMM, err = toFloat(row[2]); err != nil {
		return suspension.Params{}, err
	}
	if p.UpperYMM, err = toFloat(row[3]); err != nil {
		return suspension.Params{}, err
	}
	if p.FreeLengthMM, err = toFloat(row[4]); err != nil {
		return suspension.Params{}, err
	}
	if p.StrokeMM, err = toFloat(row[5]); err != nil {
		return suspension.Params{}, err
	}
	if len(row) > 6 && row[6] != "" {
		p.RateLbsIn, _ = toFloat(row[6])
	}
	if len(row) > 7 && row[7] != "" {
		p.LoadLbs, _ = toFloat(row[7])
	}
	if len(row) > 8 && row[8] != "" {
		p.PreloadMM, _ = toFloat(row[8])
	}
	return p, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
