package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

func TestTemplateCatalogClient_FetchTemplatesByType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/v1/templates" || q.Get("type") != "individual" || q.Get("status") != "active" || q.Get("latest_only") != "true" {
			t.Fatalf("unexpected request %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"items": []entities.BenefitTemplate{{ID: 3, TemplateID: "tpl", Version: "1.1", Status: entities.TemplateStatusActive}},
			"total": 1,
		})
	}))
	defer srv.Close()
	c := NewTemplateCatalogClient(srv.URL, "secret", time.Second, zap.NewNop())

	got, err := c.FetchTemplatesByType(context.Background(), entities.TemplateTypeIndividual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 3 || got[0].Version != "1.1" {
		t.Fatalf("unexpected templates: %+v", got)
	}
}

func TestTemplateCatalogClient_FetchTemplate(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    any
		wantID  int64
		wantErr error
	}{
		{name: "found", status: http.StatusOK, body: entities.BenefitTemplate{ID: 3, Name: "Health"}, wantID: 3},
		{name: "not found", status: http.StatusNotFound, body: map[string]string{"code": "TEMPLATE_NOT_FOUND"}},
		{name: "designer down", status: http.StatusServiceUnavailable, wantErr: interfaces.ErrUpstreamUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get(ServiceKeyHeader) != "secret" {
					t.Fatalf("expected service key header")
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				if tc.body != nil {
					json.NewEncoder(w).Encode(tc.body)
				}
			}))
			defer srv.Close()
			c := NewTemplateCatalogClient(srv.URL, "secret", time.Second, zap.NewNop())

			got, err := c.FetchTemplate(context.Background(), 3)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil || got.ID != tc.wantID {
				t.Fatalf("expected id %d, got %+v err=%v", tc.wantID, got, err)
			}
		})
	}
}
