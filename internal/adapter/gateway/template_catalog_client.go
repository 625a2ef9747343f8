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

const targetDesigner = "benefit-designer"

// TemplateCatalogClient reads the benefit designer catalog for the quoting
// service.
type TemplateCatalogClient struct {
	http   *resty.Client
	logger *zap.Logger
}

var _ interfaces.ITemplateCatalog = (*TemplateCatalogClient)(nil)

type templateList struct {
	Items []entities.BenefitTemplate `json:"items"`
}

func NewTemplateCatalogClient(baseURL, serviceKey string, timeout time.Duration, logger *zap.Logger) *TemplateCatalogClient {
	return &TemplateCatalogClient{http: newRestClient(baseURL, serviceKey, timeout), logger: logger}
}

func (c *TemplateCatalogClient) FetchTemplatesByType(ctx context.Context, templateType entities.TemplateType) ([]entities.BenefitTemplate, error) {
	var list templateList
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"type":        string(templateType),
			"status":      string(entities.TemplateStatusActive),
			"latest_only": "true",
		}).
		SetResult(&list).
		Get("/v1/templates")
	if err != nil {
		return nil, c.fail("list templates", err)
	}
	if !resp.IsSuccess() {
		return nil, c.fail("list templates", statusError(resp))
	}
	metrics.UpstreamRequests.WithLabelValues(targetDesigner, "success").Inc()
	if list.Items == nil {
		return []entities.BenefitTemplate{}, nil
	}
	return list.Items, nil
}

func (c *TemplateCatalogClient) FetchTemplate(ctx context.Context, id int64) (entities.BenefitTemplate, error) {
	var tpl entities.BenefitTemplate
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&tpl).
		Get(fmt.Sprintf("/v1/templates/%d", id))
	if err != nil {
		return entities.BenefitTemplate{}, c.fail("get template", err)
	}
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		metrics.UpstreamRequests.WithLabelValues(targetDesigner, "not_found").Inc()
		return entities.BenefitTemplate{}, nil
	case !resp.IsSuccess():
		return entities.BenefitTemplate{}, c.fail("get template", statusError(resp))
	}
	metrics.UpstreamRequests.WithLabelValues(targetDesigner, "success").Inc()
	return tpl, nil
}

func (c *TemplateCatalogClient) fail(op string, err error) error {
	metrics.UpstreamRequests.WithLabelValues(targetDesigner, "error").Inc()
	c.logger.Error("[benefit][gateway] designer call failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %s: %v", interfaces.ErrUpstreamUnavailable, op, err)
}
