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

func newQuotingServer(t *testing.T, handler http.HandlerFunc) *QuotingClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewQuotingClient(srv.URL, "secret", 2*time.Second, zap.NewNop())
}

func TestQuotingClient_FetchQuoteDetail(t *testing.T) {
	t.Run("decodes the detail and sends the service key", func(t *testing.T) {
		c := newQuotingServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/quotes/7" || r.Method != http.MethodGet {
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			if r.Header.Get(ServiceKeyHeader) != "secret" {
				t.Fatalf("expected service key header")
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(entities.QuoteDetail{
				Quote:     entities.Quote{ID: 7, Type: entities.QuoteTypeIndividual, Status: entities.QuoteStatusReadyForSale},
				Coverages: []entities.Coverage{{ID: 1, ProductType: "Health"}},
			})
		})

		got, err := c.FetchQuoteDetail(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Quote.ID != 7 || got.Quote.Status != entities.QuoteStatusReadyForSale || len(got.Coverages) != 1 {
			t.Fatalf("unexpected detail: %+v", got)
		}
	})

	t.Run("404 is a zero detail", func(t *testing.T) {
		c := newQuotingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		got, err := c.FetchQuoteDetail(context.Background(), 7)
		if err != nil || got.Quote.ID != 0 {
			t.Fatalf("expected zero detail, got %+v err=%v", got, err)
		}
	})

	t.Run("500 is upstream unavailable", func(t *testing.T) {
		c := newQuotingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		if _, err := c.FetchQuoteDetail(context.Background(), 7); !errors.Is(err, interfaces.ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}

func TestQuotingClient_ClaimQuote(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		wantClaimed bool
		wantErr     error
	}{
		{name: "claimed", status: http.StatusOK, wantClaimed: true},
		{name: "someone else won", status: http.StatusConflict},
		{name: "quoting down", status: http.StatusBadGateway, wantErr: interfaces.ErrUpstreamUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			c := newQuotingServer(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				if r.URL.Path != "/v1/quotes/7/claim" || r.Method != http.MethodPatch {
					t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				w.WriteHeader(tc.status)
			})

			claimed, err := c.ClaimQuote(context.Background(), 7)
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claimed != tc.wantClaimed {
				t.Fatalf("expected claimed=%v, got %v", tc.wantClaimed, claimed)
			}
			if calls != 1 {
				t.Fatalf("expected exactly one call, got %d", calls)
			}
		})
	}
}

func TestQuotingClient_ReleaseQuote(t *testing.T) {
	c := newQuotingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/quotes/7/release" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusConflict)
	})

	if err := c.ReleaseQuote(context.Background(), 7); !errors.Is(err, interfaces.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestQuotingClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	c := NewQuotingClient(url, "secret", time.Second, zap.NewNop())

	if _, err := c.ClaimQuote(context.Background(), 7); !errors.Is(err, interfaces.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
