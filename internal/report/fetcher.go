package report

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/PeimanAtaei/greenbone-project/internal/gmp"
	"github.com/PeimanAtaei/greenbone-project/internal/metrics"
)

// Filter applied to every report fetch: high/medium/low findings with a
// quality-of-detection of at least 70, capped at 100 rows, most severe
// first. Not caller-configurable.
const reportFilter = "levels=hml rows=100 min_qod=70 first=1 sort-reverse=severity"

// Fetcher retrieves raw reports by scan id over a per-request session.
type Fetcher struct {
	dial gmp.Dialer
}

func NewFetcher(dial gmp.Dialer) *Fetcher {
	return &Fetcher{dial: dial}
}

// Fetch returns the report for scanID. A missing report is not
// distinguishable from any other remote failure; both come back as the
// session's error.
func (f *Fetcher) Fetch(ctx context.Context, scanID string) (*gmp.ReportEnvelope, error) {
	s, err := f.dial(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.GetReport(ctx, scanID, reportFilter)
	if cerr := s.Close(); cerr != nil {
		err = multierror.Append(err, cerr).ErrorOrNil()
	}
	if err != nil {
		return nil, err
	}

	logrus.Debugf("[fetcher] fetched report for scan %s", scanID)
	metrics.ReportsFetched.Inc()
	return raw, nil
}
