package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/horas-centros/backend/internal/domain"
)

func TestScheduleDecodesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/schedule" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("from"); got != "2026-03-01" {
			t.Fatalf("from = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"ok","data":{"items":[{"fecha":"2026-03-04","centroId":"A","horas":4,"fuente":"base"}]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	items, err := c.Schedule(context.Background(), "2026-03-01", "2026-03-08", "")
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if len(items) != 1 || items[0].Horas != 4 || items[0].Fuente != "base" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestRejectedResponseBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"message":"el centro no existe","data":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	err := c.SaveOverride(context.Background(), domain.Override{
		Fecha: "2026-03-04", CentroID: "nope", Horas: 2,
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "el centro no existe" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, time.Second)
	_, err := c.Config(context.Background())
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not surface as APIError")
	}
}

func TestDeleteOverrideSendsKey(t *testing.T) {
	var gotMethod, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"success":true,"message":"ajuste eliminado","data":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	if err := c.DeleteOverride(context.Background(), "2026-03-04", "A"); err != nil {
		t.Fatalf("DeleteOverride failed: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("method = %s", gotMethod)
	}
	if gotBody != `{"centroId":"A","fecha":"2026-03-04"}` {
		t.Fatalf("body = %s", gotBody)
	}
}
