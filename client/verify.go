package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Verify checks a certificate through the public, unauthenticated endpoint.
// An unknown certificate number is not an error: it comes back as a result
// with IsValid false.
func (c *Client) Verify(ctx context.Context, certNumber string) (*VerifyResult, error) {
	if certNumber == "" {
		return nil, &ValidationError{Message: "certificate number is required"}
	}

	result := &VerifyResult{}
	if _, err := c.do(ctx, http.MethodGet, "/public/verify/"+url.PathEscape(certNumber), nil, nil, result); err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return &VerifyResult{
				CertNumber: certNumber,
				IsValid:    false,
				Message:    "certificate not found",
			}, nil
		}
		return nil, err
	}
	if result.CertNumber == "" {
		result.CertNumber = certNumber
	}
	return result, nil
}

// VerifyWithTestData verifies a certificate and, when the verdict is valid
// and a session exists, additionally fetches its measurements for display.
// The secondary fetch is best-effort: its failure never changes the
// verification result, it only leaves the measurement list empty.
func (c *Client) VerifyWithTestData(ctx context.Context, certNumber string) (*VerifyResult, []TestDataPoint, error) {
	result, err := c.Verify(ctx, certNumber)
	if err != nil {
		return nil, nil, err
	}
	if !result.IsValid || !c.HasSession() {
		return result, nil, nil
	}

	points, err := c.ListTestData(ctx, certNumber)
	if err != nil {
		c.log.WithError(err).WithField("certNumber", certNumber).
			Debug("test data lookup after verification failed")
		return result, nil, nil
	}
	return result, points, nil
}
