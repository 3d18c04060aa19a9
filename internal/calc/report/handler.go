package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	suspension "Fulcrum/internal/calc/suspension"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string            `json:"project"`
	Author  string            `json:"author"`
	Title   string            `json:"title"`
	Notes   string            `json:"notes"`
	Setup   suspension.Params `json:"setup"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Suspension Datasheet"
	}

	res, err := suspension.Calculate(input.Setup)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	sweep, err := suspension.Sweep(suspension.SweepInput{Setup: input.Setup, Points: 11})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Setup")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	p := input.Setup
	pdf.Cell(0, 5, fmt.Sprintf("Swingarm %.0f mm, lower mount %.0f mm, upper mount (%.0f, %.0f) mm",
		p.SwingarmMM, p.LowerMountMM, p.UpperXMM, p.UpperYMM))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Shock: free length %.0f mm, stroke %.0f mm, preload %.1f mm",
		p.FreeLengthMM, p.StrokeMM, p.PreloadMM))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Spring rate %.0f lbs/in, load %.0f lbs", p.RateLbsIn, p.LoadLbs))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Static analysis")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Wheel travel %.1f mm, sag %.1f mm at %.4f rad",
		res.WheelTravelMM, res.SagMM, res.SagAngleRad))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Motion ratio at sag %.3f, wheel rate %.1f lbs/in, spring force %.1f lbs",
		res.MotionRatioAtSag, res.WheelRateAtSagLbsIn, res.SpringForceAtSagLbs))
	pdf.Ln(5)
	if res.BottomedOut {
		pdf.Cell(0, 5, "WARNING: suspension bottoms out under the given load.")
		pdf.Ln(5)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Travel sweep")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Cell(30, 5, "Angle (rad)")
	pdf.Cell(30, 5, "Travel (mm)")
	pdf.Cell(35, 5, "Compression (mm)")
	pdf.Cell(25, 5, "MR")
	pdf.Cell(40, 5, "Wheel rate (lbs/in)")
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 9)
	for _, pt := range sweep.Points {
		pdf.Cell(30, 5, fmt.Sprintf("%.4f", pt.AngleRad))
		pdf.Cell(30, 5, fmt.Sprintf("%.1f", pt.WheelTravelMM))
		pdf.Cell(35, 5, fmt.Sprintf("%.1f", pt.CompressionMM))
		pdf.Cell(25, 5, fmt.Sprintf("%.3f", pt.MotionRatio))
		pdf.Cell(40, 5, fmt.Sprintf("%.1f", pt.WheelRateLbsIn))
		pdf.Ln(5)
	}

	if input.Notes != "" {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"suspension-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
