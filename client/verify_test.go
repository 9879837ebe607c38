package client

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyValidCertificate(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("GET", testEndpoint+"/public/verify/CERT-100",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": {
				"certNumber": "CERT-100",
				"isValid": true,
				"message": "certificate is valid",
				"certificate": {"certNumber": "CERT-100", "status": "issued"},
				"blockchainTxId": "0xabc"
			}
		}`))

	result, err := c.Verify(context.Background(), "CERT-100")
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Equal(t, "0xabc", result.BlockchainTxID)
	require.NotNil(t, result.Certificate)
	assert.Equal(t, "issued", result.Certificate.Status)
}

func TestVerifyUnknownCertificateIsNotAnError(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("GET", testEndpoint+"/public/verify/CERT-404",
		httpmock.NewStringResponder(404, `{"code": 404, "message": "not found"}`))

	result, err := c.Verify(context.Background(), "CERT-404")
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Equal(t, "CERT-404", result.CertNumber)
	assert.NotEmpty(t, result.Message)
}

func TestVerifyWithTestDataAnonymousSkipsMeasurements(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder("GET", testEndpoint+"/public/verify/CERT-100",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": {"certNumber": "CERT-100", "isValid": true}
		}`))

	result, points, err := c.VerifyWithTestData(context.Background(), "CERT-100")
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Nil(t, points)
	// The authenticated measurement endpoint was never touched.
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestVerifyWithTestDataLoadsMeasurements(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("GET", testEndpoint+"/public/verify/CERT-100",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": {"certNumber": "CERT-100", "isValid": true}
		}`))
	httpmock.RegisterResponder("GET", testEndpoint+"/test-data/certificate/CERT-100",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": [{"deviceAddr": "DEV-01", "testPoint": "100%", "ratioError": 0.02}]
		}`))

	result, points, err := c.VerifyWithTestData(context.Background(), "CERT-100")
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	require.Len(t, points, 1)
	assert.Equal(t, "DEV-01", points[0].DeviceAddr)
}

func TestVerifyWithTestDataMeasurementFailureKeepsVerdict(t *testing.T) {
	c := newTestClient(t, WithToken("tok"))
	httpmock.RegisterResponder("GET", testEndpoint+"/public/verify/CERT-100",
		httpmock.NewStringResponder(200, `{
			"code": 200,
			"data": {"certNumber": "CERT-100", "isValid": true}
		}`))
	httpmock.RegisterResponder("GET", testEndpoint+"/test-data/certificate/CERT-100",
		httpmock.NewStringResponder(500, `{"code": 500, "message": "ledger unavailable"}`))

	result, points, err := c.VerifyWithTestData(context.Background(), "CERT-100")
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Nil(t, points)
}
