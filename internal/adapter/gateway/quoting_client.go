package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"insurance_portal/internal/domain/entities"
	"insurance_portal/internal/infrastructure/metrics"
	"insurance_portal/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ServiceKeyHeader authenticates calls between services.
const ServiceKeyHeader = "X-Service-Key"

const targetQuoting = "quoting"

// QuotingClient calls the quoting service on behalf of the policy service.
// Requests are never retried: a claim that times out may have succeeded.
type QuotingClient struct {
	http   *resty.Client
	logger *zap.Logger
}

var _ interfaces.IQuoteGateway = (*QuotingClient)(nil)

func NewQuotingClient(baseURL, serviceKey string, timeout time.Duration, logger *zap.Logger) *QuotingClient {
	return &QuotingClient{http: newRestClient(baseURL, serviceKey, timeout), logger: logger}
}

func newRestClient(baseURL, serviceKey string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader(ServiceKeyHeader, serviceKey)
}

func (c *QuotingClient) FetchQuoteDetail(ctx context.Context, quoteID int64) (entities.QuoteDetail, error) {
	var detail entities.QuoteDetail
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&detail).
		Get(fmt.Sprintf("/v1/quotes/%d", quoteID))
	if err != nil {
		return entities.QuoteDetail{}, c.fail("fetch quote", quoteID, err)
	}
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		metrics.UpstreamRequests.WithLabelValues(targetQuoting, "not_found").Inc()
		return entities.QuoteDetail{}, nil
	case !resp.IsSuccess():
		return entities.QuoteDetail{}, c.fail("fetch quote", quoteID, statusError(resp))
	}
	metrics.UpstreamRequests.WithLabelValues(targetQuoting, "success").Inc()
	return detail, nil
}

func (c *QuotingClient) ClaimQuote(ctx context.Context, quoteID int64) (bool, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Patch(fmt.Sprintf("/v1/quotes/%d/claim", quoteID))
	if err != nil {
		return false, c.fail("claim quote", quoteID, err)
	}
	switch {
	case resp.StatusCode() == http.StatusConflict:
		metrics.UpstreamRequests.WithLabelValues(targetQuoting, "conflict").Inc()
		return false, nil
	case !resp.IsSuccess():
		return false, c.fail("claim quote", quoteID, statusError(resp))
	}
	metrics.UpstreamRequests.WithLabelValues(targetQuoting, "success").Inc()
	return true, nil
}

func (c *QuotingClient) ReleaseQuote(ctx context.Context, quoteID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Patch(fmt.Sprintf("/v1/quotes/%d/release", quoteID))
	if err != nil {
		return c.fail("release quote", quoteID, err)
	}
	if !resp.IsSuccess() {
		return c.fail("release quote", quoteID, statusError(resp))
	}
	metrics.UpstreamRequests.WithLabelValues(targetQuoting, "success").Inc()
	return nil
}

func (c *QuotingClient) fail(op string, quoteID int64, err error) error {
	metrics.UpstreamRequests.WithLabelValues(targetQuoting, "error").Inc()
	c.logger.Error("[conversion][gateway] quoting call failed",
		zap.String("op", op), zap.Int64("quote_id", quoteID), zap.Error(err))
	return fmt.Errorf("%w: %s: %v", interfaces.ErrUpstreamUnavailable, op, err)
}

func statusError(resp *resty.Response) error {
	return fmt.Errorf("unexpected status %d", resp.StatusCode())
}
