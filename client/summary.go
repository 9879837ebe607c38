package client

import (
	"time"

	"github.com/tracecert/certctl/workflow"
)

// ExpiringSoonWindow is how far ahead a certificate counts as expiring.
const ExpiringSoonWindow = 30 * 24 * time.Hour

// Summary holds the dashboard counters.
type Summary struct {
	Total        int
	Valid        int
	ExpiringSoon int
	Anchored     int
}

// Summarize computes display aggregates over the given certificates. The
// counts are scoped to the slice the caller loaded, usually one directory
// page; they are not authoritative backend totals. Valid counts issued
// certificates; ExpiringSoon counts those whose expiry falls strictly
// between now and now+30d, excluding already-expired ones; Anchored counts
// certificates with a blockchain transaction id.
func Summarize(certs []Certificate, now time.Time) Summary {
	s := Summary{Total: len(certs)}
	for _, cert := range certs {
		if cert.Status == workflow.StatusIssued {
			s.Valid++
		}
		until := cert.ExpireDate.Sub(now)
		if until > 0 && until < ExpiringSoonWindow {
			s.ExpiringSoon++
		}
		if cert.Anchored() {
			s.Anchored++
		}
	}
	return s
}

// RecentActivity returns the newest certificates of the slice, at most n,
// for the dashboard's activity list. The input is assumed to be in the
// backend's listing order (newest first).
func RecentActivity(certs []Certificate, n int) []Certificate {
	if len(certs) <= n {
		return certs
	}
	return certs[:n]
}
