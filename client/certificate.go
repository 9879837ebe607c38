package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/tracecert/certctl/workflow"
)

var validate = validator.New()

// SuggestCertNumber proposes a unique default certificate number for a new
// certificate, in the backend's customary CERT-<millis> shape.
func SuggestCertNumber() string {
	return fmt.Sprintf("CERT-%d", time.Now().UnixNano()/int64(time.Millisecond))
}

// ListCertificates fetches one page of the directory. Filters ride along as
// query parameters; the backend may ignore the ones it does not index.
func (c *Client) ListCertificates(ctx context.Context, page, pageSize int, filter CertificateFilter) (*CertificatePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	items := []Certificate{}
	env, err := c.do(ctx, http.MethodGet, "/certificates", query, nil, &items)
	if err != nil {
		return nil, err
	}

	result := &CertificatePage{
		Items:      items,
		Total:      env.Total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: env.TotalPages,
	}
	if result.Total == 0 {
		result.Total = len(items)
	}
	if result.TotalPages == 0 {
		result.TotalPages = 1
	}
	return result, nil
}

// certificateDetail matches the lookup endpoint, which returns either a
// bare certificate or {certificate, blockchain}.
type certificateDetail struct {
	Certificate *Certificate    `json:"certificate"`
	Blockchain  *BlockchainInfo `json:"blockchain"`
}

// GetCertificate fetches one certificate, plus anchoring detail when the
// backend includes it.
func (c *Client) GetCertificate(ctx context.Context, certNumber string) (*Certificate, *BlockchainInfo, error) {
	if certNumber == "" {
		return nil, nil, &ValidationError{Message: "certificate number is required"}
	}

	detail := certificateDetail{}
	env, err := c.do(ctx, http.MethodGet, "/certificates/"+url.PathEscape(certNumber), nil, nil, &detail)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, nil, &NotFoundError{CertNumber: certNumber}
		}
		return nil, nil, err
	}

	if detail.Certificate != nil {
		return detail.Certificate, detail.Blockchain, nil
	}

	// Older deployments return the certificate without the wrapper.
	cert := &Certificate{}
	if err := codec.Unmarshal(env.Data, cert); err != nil {
		return nil, nil, errors.Wrap(err, "decoding certificate")
	}
	if cert.CertNumber == "" {
		return nil, nil, &NotFoundError{CertNumber: certNumber}
	}
	return cert, nil, nil
}

// Validate runs the local pre-flight checks a create payload must pass
// before it is worth a round trip.
func (r *CreateCertificateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return checkDateOrder(r.TestDate, r.ExpireDate)
}

// Validate runs the local pre-flight checks for an update payload.
func (r *UpdateCertificateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return checkDateOrder(r.TestDate, r.ExpireDate)
}

func checkDateOrder(testDate, expireDate string) error {
	if expireDate == "" {
		return nil
	}
	td, err := time.Parse(DateFormat, testDate)
	if err != nil {
		return &ValidationError{Message: "testDate must look like " + DateFormat}
	}
	ed, err := time.Parse(DateFormat, expireDate)
	if err != nil {
		return &ValidationError{Message: "expireDate must look like " + DateFormat}
	}
	if !ed.After(td) {
		return &ValidationError{Message: "expireDate must be after testDate"}
	}
	return nil
}

// CreateCertificate submits a new certificate and returns the stored record.
func (c *Client) CreateCertificate(ctx context.Context, req CreateCertificateRequest) (*Certificate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	cert := &Certificate{}
	if _, err := c.do(ctx, http.MethodPost, "/certificates", nil, req, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

// CreateWithTestData creates a certificate and, only on success, submits
// its first batch of measurements. The two steps are not atomic: when the
// certificate lands but the batch does not, the returned error is a
// PartialCreateError carrying the created certificate.
func (c *Client) CreateWithTestData(ctx context.Context, req CreateCertificateRequest, points []TestDataPoint) (*Certificate, error) {
	cert, err := c.CreateCertificate(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return cert, nil
	}
	if err := c.AddTestData(ctx, cert.CertNumber, points); err != nil {
		return cert, &PartialCreateError{Certificate: cert, Err: err}
	}
	return cert, nil
}

// UpdateCertificate rewrites the mutable fields of a certificate. The
// certificate number in the path is authoritative; it is never changed.
func (c *Client) UpdateCertificate(ctx context.Context, certNumber string, req UpdateCertificateRequest) (*Certificate, error) {
	if certNumber == "" {
		return nil, &ValidationError{Message: "certificate number is required"}
	}
	req.CertNumber = certNumber
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cert := &Certificate{}
	if _, err := c.do(ctx, http.MethodPut, "/certificates/"+url.PathEscape(certNumber), nil, req, cert); err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, &NotFoundError{CertNumber: certNumber}
		}
		return nil, err
	}
	return cert, nil
}

// RevokeCertificate transitions a certificate to revoked. The REST surface
// has no dedicated revoke verb, so this reads the current record, flips the
// status, and writes it back. A concurrent edit between the read and the
// write can be overwritten; closing that window needs a server-side
// transition endpoint.
func (c *Client) RevokeCertificate(ctx context.Context, certNumber string) (*Certificate, error) {
	cert, _, err := c.GetCertificate(ctx, certNumber)
	if err != nil {
		return nil, err
	}
	if cert.Status == workflow.StatusRevoked {
		return nil, &ValidationError{Message: fmt.Sprintf("certificate %s is already revoked", certNumber)}
	}

	req := UpdateRequestFor(cert)
	req.Status = workflow.StatusRevoked
	return c.UpdateCertificate(ctx, certNumber, req)
}

// CertificateHistory fetches the on-chain change log of a certificate.
func (c *Client) CertificateHistory(ctx context.Context, certNumber string) ([]HistoryRecord, error) {
	if certNumber == "" {
		return nil, &ValidationError{Message: "certificate number is required"}
	}
	records := []HistoryRecord{}
	if _, err := c.do(ctx, http.MethodGet, "/certificates/"+url.PathEscape(certNumber)+"/history", nil, nil, &records); err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, &NotFoundError{CertNumber: certNumber}
		}
		return nil, err
	}
	return records, nil
}
