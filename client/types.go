package client

import (
	"time"
)

// Certificate is a calibration/test record for an instrument. Field names
// mirror the backend's JSON contract; CertNumber is immutable once created.
type Certificate struct {
	ID                 int64     `json:"id,omitempty"`
	CertNumber         string    `json:"certNumber"`
	CustomerID         int64     `json:"customerId"`
	InstrumentName     string    `json:"instrumentName"`
	InstrumentNumber   string    `json:"instrumentNumber,omitempty"`
	Manufacturer       string    `json:"manufacturer,omitempty"`
	ModelSpec          string    `json:"modelSpec,omitempty"`
	InstrumentAccuracy string    `json:"instrumentAccuracy,omitempty"`
	TestDate           time.Time `json:"testDate"`
	ExpireDate         time.Time `json:"expireDate"`
	TestResult         string    `json:"testResult"`
	Status             string    `json:"status"`
	BlockchainTxID     string    `json:"blockchainTxId,omitempty"`
	BlockchainHash     string    `json:"blockchainHash,omitempty"`
	CreatedBy          int64     `json:"createdBy,omitempty"`
	CreatedAt          time.Time `json:"createdAt,omitempty"`
	UpdatedAt          time.Time `json:"updatedAt,omitempty"`
}

// Anchored reports whether the backend has recorded this certificate on
// chain. Presence of a transaction id is the sole signal.
func (c *Certificate) Anchored() bool {
	return c.BlockchainTxID != ""
}

// TestDataPoint is one measurement reading attached to a certificate.
type TestDataPoint struct {
	DeviceAddr       string    `json:"deviceAddr"`
	TestPoint        string    `json:"testPoint"`
	ActualPercentage float64   `json:"actualPercentage"`
	RatioError       float64   `json:"ratioError"`
	AngleError       float64   `json:"angleError"`
	TestTimestamp    time.Time `json:"testTimestamp"`
}

// BlockchainInfo is the read-only anchoring detail some certificate lookups
// return alongside the certificate.
type BlockchainInfo struct {
	TxID            string `json:"txId,omitempty"`
	BlockNumber     int64  `json:"blockNumber,omitempty"`
	TransactionHash string `json:"transactionHash,omitempty"`
	Status          string `json:"status,omitempty"`
}

// User is the identity attached to a session.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// VerifyResult is the outcome of a public verification.
type VerifyResult struct {
	CertNumber     string       `json:"certNumber"`
	IsValid        bool         `json:"isValid"`
	Message        string       `json:"message"`
	VerifiedAt     time.Time    `json:"verifiedAt,omitempty"`
	Certificate    *Certificate `json:"certificate,omitempty"`
	BlockchainTxID string       `json:"blockchainTxId,omitempty"`
	BlockchainHash string       `json:"blockchainHash,omitempty"`
}

// HistoryRecord is one entry of a certificate's on-chain change history.
type HistoryRecord struct {
	TxID      string      `json:"txId"`
	Value     interface{} `json:"value"`
	Timestamp string      `json:"timestamp"`
	IsDelete  bool        `json:"isDelete"`
}

// CertificatePage is one page of the certificate directory.
type CertificatePage struct {
	Items      []Certificate
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// CertificateFilter narrows a directory listing.
type CertificateFilter struct {
	Search string
	Status string
}

// DateFormat is the wire format for the date fields of create/update
// requests. Responses carry full RFC 3339 timestamps instead.
const DateFormat = "2006-01-02"

// CreateCertificateRequest carries the client-supplied fields of a new
// certificate. Status is assigned server-side (new certificates start as
// drafts); ExpireDate may be empty, the backend then defaults it.
type CreateCertificateRequest struct {
	CertNumber         string `json:"certNumber" validate:"required"`
	CustomerID         int64  `json:"customerId" validate:"required,gt=0"`
	InstrumentName     string `json:"instrumentName" validate:"required"`
	InstrumentNumber   string `json:"instrumentNumber,omitempty"`
	Manufacturer       string `json:"manufacturer,omitempty"`
	ModelSpec          string `json:"modelSpec,omitempty"`
	InstrumentAccuracy string `json:"instrumentAccuracy,omitempty"`
	TestDate           string `json:"testDate" validate:"required,datetime=2006-01-02"`
	ExpireDate         string `json:"expireDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TestResult         string `json:"testResult" validate:"required,oneof=qualified unqualified"`
}

// UpdateCertificateRequest carries the mutable fields of a certificate.
// CertNumber identifies the target and is never changed by an update.
type UpdateCertificateRequest struct {
	CertNumber         string `json:"certNumber" validate:"required"`
	CustomerID         int64  `json:"customerId" validate:"required,gt=0"`
	InstrumentName     string `json:"instrumentName" validate:"required"`
	InstrumentNumber   string `json:"instrumentNumber,omitempty"`
	Manufacturer       string `json:"manufacturer,omitempty"`
	ModelSpec          string `json:"modelSpec,omitempty"`
	InstrumentAccuracy string `json:"instrumentAccuracy,omitempty"`
	TestDate           string `json:"testDate" validate:"required,datetime=2006-01-02"`
	ExpireDate         string `json:"expireDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TestResult         string `json:"testResult" validate:"required,oneof=qualified unqualified"`
	Status             string `json:"status,omitempty" validate:"omitempty,oneof=draft testing completed issued revoked"`
}

// UpdateRequestFor seeds an update request with a certificate's current
// values, so an edit only has to touch the fields it changes.
func UpdateRequestFor(cert *Certificate) UpdateCertificateRequest {
	req := UpdateCertificateRequest{
		CertNumber:         cert.CertNumber,
		CustomerID:         cert.CustomerID,
		InstrumentName:     cert.InstrumentName,
		InstrumentNumber:   cert.InstrumentNumber,
		Manufacturer:       cert.Manufacturer,
		ModelSpec:          cert.ModelSpec,
		InstrumentAccuracy: cert.InstrumentAccuracy,
		TestResult:         cert.TestResult,
		Status:             cert.Status,
	}
	if !cert.TestDate.IsZero() {
		req.TestDate = cert.TestDate.Format(DateFormat)
	}
	if !cert.ExpireDate.IsZero() {
		req.ExpireDate = cert.ExpireDate.Format(DateFormat)
	}
	return req
}
