package orchestrate

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/PeimanAtaei/greenbone-project/internal/gmp"
	"github.com/PeimanAtaei/greenbone-project/internal/metrics"
	"github.com/PeimanAtaei/greenbone-project/internal/model"
	"github.com/PeimanAtaei/greenbone-project/internal/namelock"
)

// Settings are the fixed reference names and the port list every scan is
// created with.
type Settings struct {
	PortListID  string
	ConfigName  string
	ScannerName string
}

// Orchestrator drives target provisioning, task creation and task start as
// one sequential chain over a per-request session.
type Orchestrator struct {
	dial     gmp.Dialer
	locks    *namelock.Registry
	settings Settings
}

func New(dial gmp.Dialer, locks *namelock.Registry, settings Settings) *Orchestrator {
	return &Orchestrator{dial: dial, locks: locks, settings: settings}
}

// StartScan provisions a target for hosts under name, creates a task bound
// to the default config and scanner, and starts it. Already-created
// entities are not rolled back when a later step fails; each completed
// step is logged so the gap stays visible.
func (o *Orchestrator) StartScan(ctx context.Context, name string, hosts []string) (model.ScanStarted, error) {
	release := o.locks.Acquire(name)
	defer release()

	s, err := o.dial(ctx)
	if err != nil {
		metrics.ScanFailures.Inc()
		return model.ScanStarted{}, err
	}

	started, err := o.run(ctx, s, name, hosts)
	if cerr := s.Close(); cerr != nil {
		err = multierror.Append(err, cerr).ErrorOrNil()
	}
	if err != nil {
		metrics.ScanFailures.Inc()
		return model.ScanStarted{}, err
	}

	metrics.ScansStarted.Inc()
	return started, nil
}

func (o *Orchestrator) run(ctx context.Context, s gmp.Session, name string, hosts []string) (model.ScanStarted, error) {
	// advisory only: a miss or a remote failure here does not gate the chain
	deleteConflictingTarget(ctx, s, name)

	targetID, err := s.CreateTarget(ctx, name, hosts, o.settings.PortListID)
	if err != nil {
		return model.ScanStarted{}, err
	}
	logrus.Infof("[orchestrator] target %q created with id %s", name, targetID)

	configID, err := resolveID(ctx, "config", s.GetConfigs, o.settings.ConfigName)
	if err != nil {
		return model.ScanStarted{}, err
	}
	scannerID, err := resolveID(ctx, "scanner", s.GetScanners, o.settings.ScannerName)
	if err != nil {
		return model.ScanStarted{}, err
	}

	taskID, err := s.CreateTask(ctx, name, configID, targetID, scannerID)
	if err != nil {
		return model.ScanStarted{}, err
	}
	logrus.Infof("[orchestrator] task %q created with id %s", name, taskID)

	scanID, err := s.StartTask(ctx, taskID)
	if err != nil {
		return model.ScanStarted{}, err
	}
	logrus.Infof("[orchestrator] task %s started, scan id %s", taskID, scanID)

	return model.ScanStarted{
		Message:  "Scan started",
		ScanName: name,
		Targets:  strings.Join(hosts, ","),
		ScanID:   scanID,
	}, nil
}
