package suspension

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}

	body, _ := json.Marshal(Defaults())
	req := httptest.NewRequest(http.MethodPost, "/tools/suspension/calc", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.SagMM <= 0 {
		t.Errorf("sag = %v, want > 0", res.SagMM)
	}
}

func TestHandlerCalcBadPayload(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name string
		body string
	}{
		{"Malformed", "{not json"},
		{"InvalidSetup", `{"swingarm_mm": 0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/tools/suspension/calc", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()
			h.Calc(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandlerSweep(t *testing.T) {
	h := &Handler{}

	body, _ := json.Marshal(SweepInput{Setup: Defaults(), Points: 11})
	req := httptest.NewRequest(http.MethodPost, "/tools/suspension/sweep", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Sweep(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res SweepResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Points) != 11 {
		t.Errorf("sweep has %d points, want 11", len(res.Points))
	}
}
