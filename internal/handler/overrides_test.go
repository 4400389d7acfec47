package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/horas-centros/backend/internal/config"
)

func testHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := NewHandler(&config.Config{}, nil, nil)
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}
	return h
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	var res Response
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return res
}

func TestSaveOverrideRejectsBadDate(t *testing.T) {
	h := testHandler(t)

	res := postJSON(t, h.SaveOverride, `{"fecha":"04/03/2026","centroId":"A","horas":2}`)
	if res.Success {
		t.Fatalf("expected rejection for malformed date")
	}
	if res.Message == "" {
		t.Fatalf("expected a user-visible message")
	}
}

func TestSaveOverrideRejectsNegativeHours(t *testing.T) {
	h := testHandler(t)

	res := postJSON(t, h.SaveOverride, `{"fecha":"2026-03-04","centroId":"A","horas":-2}`)
	if res.Success {
		t.Fatalf("expected rejection for negative hours")
	}
}

func TestSaveOverrideRejectsMissingCenter(t *testing.T) {
	h := testHandler(t)

	res := postJSON(t, h.SaveOverride, `{"fecha":"2026-03-04","horas":2}`)
	if res.Success {
		t.Fatalf("expected rejection when centroId is missing")
	}
}

func TestDeleteOverrideRejectsBadBody(t *testing.T) {
	h := testHandler(t)

	res := postJSON(t, h.DeleteOverride, `{`)
	if res.Success {
		t.Fatalf("expected rejection for malformed JSON")
	}
}

func TestSaveBaseRejectsBadDow(t *testing.T) {
	h := testHandler(t)

	res := postJSON(t, h.SaveBase, `{"rows":[{"centroId":"A","dow":9,"horas":2}]}`)
	if res.Success {
		t.Fatalf("expected rejection for dow out of range")
	}
}
