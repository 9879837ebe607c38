package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracecert/certctl/workflow"
)

func validCreateRequest() CreateCertificateRequest {
	return CreateCertificateRequest{
		CertNumber:     "CERT-100",
		CustomerID:     3,
		InstrumentName: "Current transformer",
		TestDate:       "2026-01-10",
		ExpireDate:     "2027-01-10",
		TestResult:     "qualified",
	}
}

func TestListCertificatesPaging(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("GET", testEndpoint+"/certificates",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": [
				{"certNumber": "CERT-1", "status": "issued"},
				{"certNumber": "CERT-2", "status": "draft"}
			],
			"total": 42, "page": 3, "pageSize": 2, "totalPages": 21
		}`))

	page, err := c.ListCertificates(context.Background(), 3, 2, CertificateFilter{Search: "CERT"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 42, page.Total)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 21, page.TotalPages)
	assert.Equal(t, "CERT-1", page.Items[0].CertNumber)
}

func TestCreateCertificateRoundTrip(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("POST", testEndpoint+"/certificates",
		func(req *http.Request) (*http.Response, error) {
			sent := CreateCertificateRequest{}
			if err := codec.NewDecoder(req.Body).Decode(&sent); err != nil {
				return nil, err
			}
			assert.Equal(t, "CERT-100", sent.CertNumber)
			assert.Equal(t, "2026-01-10", sent.TestDate)
			return httpmock.NewStringResponse(201, `{
				"code": 201,
				"data": {"id": 9, "certNumber": "CERT-100", "status": "draft",
					"testDate": "2026-01-10T00:00:00Z"}
			}`), nil
		})

	cert, err := c.CreateCertificate(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "CERT-100", cert.CertNumber)
	assert.Equal(t, workflow.StatusDraft, cert.Status)
}

func TestCreateCertificateRejectsBadDates(t *testing.T) {
	req := validCreateRequest()
	req.ExpireDate = "2025-01-10" // before the test date

	c := newTestClient(t)
	_, err := c.CreateCertificate(context.Background(), req)
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestCreateWithTestDataPartialFailure(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("POST", testEndpoint+"/certificates",
		httpmock.NewStringResponder(201, `{
			"code": 201,
			"data": {"certNumber": "CERT-100", "status": "draft"}
		}`))
	httpmock.RegisterResponder("POST", testEndpoint+"/test-data",
		httpmock.NewStringResponder(500, `{"code": 500, "message": "ledger unavailable"}`))

	points := []TestDataPoint{{DeviceAddr: "DEV-01", TestPoint: "100%", TestTimestamp: time.Now()}}
	cert, err := c.CreateWithTestData(context.Background(), validCreateRequest(), points)
	require.Error(t, err)

	partial, ok := IsPartialCreate(err)
	require.True(t, ok, "expected a partial create error, got %v", err)
	assert.Equal(t, "CERT-100", partial.Certificate.CertNumber)
	require.NotNil(t, cert)
	assert.Equal(t, "CERT-100", cert.CertNumber)
}

func TestGetCertificateWrappedShape(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("GET", testEndpoint+"/certificates/CERT-100",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": {
				"certificate": {"certNumber": "CERT-100", "status": "issued"},
				"blockchain": {"txId": "0xabc", "blockNumber": 12}
			}
		}`))

	cert, chain, err := c.GetCertificate(context.Background(), "CERT-100")
	require.NoError(t, err)
	assert.Equal(t, "CERT-100", cert.CertNumber)
	require.NotNil(t, chain)
	assert.Equal(t, "0xabc", chain.TxID)
}

func TestGetCertificateBareShape(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("GET", testEndpoint+"/certificates/CERT-100",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": {"certNumber": "CERT-100", "status": "testing"}
		}`))

	cert, chain, err := c.GetCertificate(context.Background(), "CERT-100")
	require.NoError(t, err)
	assert.Equal(t, "testing", cert.Status)
	assert.Nil(t, chain)
}

func TestGetCertificateNotFound(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("GET", testEndpoint+"/certificates/CERT-404",
		httpmock.NewStringResponder(404, `{"code": 404, "message": "not found"}`))

	_, _, err := c.GetCertificate(context.Background(), "CERT-404")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRevokeCertificateWritesRevokedStatus(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("GET", testEndpoint+"/certificates/CERT-100",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": {"certNumber": "CERT-100", "customerId": 3,
				"instrumentName": "Current transformer",
				"testDate": "2026-01-10T00:00:00Z",
				"expireDate": "2027-01-10T00:00:00Z",
				"testResult": "qualified", "status": "issued"}
		}`))
	httpmock.RegisterResponder("PUT", testEndpoint+"/certificates/CERT-100",
		func(req *http.Request) (*http.Response, error) {
			sent := UpdateCertificateRequest{}
			if err := codec.NewDecoder(req.Body).Decode(&sent); err != nil {
				return nil, err
			}
			assert.Equal(t, workflow.StatusRevoked, sent.Status)
			assert.Equal(t, "Current transformer", sent.InstrumentName)
			return httpmock.NewStringResponse(200, `{
				"code": 200,
				"data": {"certNumber": "CERT-100", "status": "revoked"}
			}`), nil
		})

	cert, err := c.RevokeCertificate(context.Background(), "CERT-100")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusRevoked, cert.Status)
}

func TestRevokeCertificateAlreadyRevoked(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("GET", testEndpoint+"/certificates/CERT-100",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": {"certNumber": "CERT-100", "status": "revoked"}
		}`))

	_, err := c.RevokeCertificate(context.Background(), "CERT-100")
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	// Only the lookup went out; no write happened.
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestCertificateHistory(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("GET", testEndpoint+"/certificates/CERT-100/history",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": [
				{"txId": "0x1", "timestamp": "2026-01-10T09:00:00Z", "isDelete": false},
				{"txId": "0x2", "timestamp": "2026-02-01T09:00:00Z", "isDelete": false}
			]
		}`))

	records, err := c.CertificateHistory(context.Background(), "CERT-100")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "0x1", records[0].TxID)
}

func TestAddTestDataStampsMissingTimestamp(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("POST", testEndpoint+"/test-data",
		func(req *http.Request) (*http.Response, error) {
			sent := struct {
				CertNumber string          `json:"certNumber"`
				Data       []TestDataPoint `json:"data"`
			}{}
			if err := codec.NewDecoder(req.Body).Decode(&sent); err != nil {
				return nil, err
			}
			assert.Equal(t, "CERT-100", sent.CertNumber)
			require.Len(t, sent.Data, 1)
			assert.False(t, sent.Data[0].TestTimestamp.IsZero())
			return httpmock.NewStringResponse(201, `{"code": 201}`), nil
		})

	err := c.AddTestData(context.Background(), "CERT-100", []TestDataPoint{
		{DeviceAddr: "DEV-01", TestPoint: "100%", ActualPercentage: 99.8},
	})
	require.NoError(t, err)
}

func TestAddTestDataRequiresPoints(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))

	err := c.AddTestData(context.Background(), "CERT-100", nil)
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
