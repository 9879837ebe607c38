package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// batchTestDataRequest is the wire shape of a measurement submission.
type batchTestDataRequest struct {
	CertNumber string          `json:"certNumber"`
	Data       []TestDataPoint `json:"data"`
}

// AddTestData attaches a batch of measurements to an existing certificate.
// Points without a timestamp are stamped with the submission time.
func (c *Client) AddTestData(ctx context.Context, certNumber string, points []TestDataPoint) error {
	if certNumber == "" {
		return &ValidationError{Message: "certificate number is required"}
	}
	if len(points) == 0 {
		return &ValidationError{Message: "at least one test data point is required"}
	}

	now := time.Now().UTC()
	stamped := make([]TestDataPoint, len(points))
	for i, p := range points {
		if p.TestTimestamp.IsZero() {
			p.TestTimestamp = now
		}
		stamped[i] = p
	}

	body := batchTestDataRequest{CertNumber: certNumber, Data: stamped}
	_, err := c.do(ctx, http.MethodPost, "/test-data", nil, body, nil)
	return err
}

// ListTestData fetches every measurement recorded for a certificate. A
// certificate with no measurements yields an empty slice.
func (c *Client) ListTestData(ctx context.Context, certNumber string) ([]TestDataPoint, error) {
	if certNumber == "" {
		return nil, &ValidationError{Message: "certificate number is required"}
	}
	points := []TestDataPoint{}
	if _, err := c.do(ctx, http.MethodGet, "/test-data/certificate/"+url.PathEscape(certNumber), nil, nil, &points); err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, &NotFoundError{CertNumber: certNumber}
		}
		return nil, err
	}
	return points, nil
}
