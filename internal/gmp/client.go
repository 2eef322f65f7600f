package gmp

import (
	"context"
	"encoding/xml"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Config describes how to reach and authenticate against gvmd.
type Config struct {
	Network  string // "unix" or "tcp"
	Address  string
	Username string
	Password string
}

// Session is the capability set of the scan-management service consumed by
// the orchestrator and the report fetcher. One Session is one authenticated
// connection; callers must Close it on every exit path.
type Session interface {
	GetTargets(ctx context.Context) ([]Entity, error)
	CreateTarget(ctx context.Context, name string, hosts []string, portListID string) (string, error)
	DeleteTarget(ctx context.Context, targetID string) error
	GetConfigs(ctx context.Context) ([]Entity, error)
	GetScanners(ctx context.Context) ([]Entity, error)
	CreateTask(ctx context.Context, name, configID, targetID, scannerID string) (string, error)
	StartTask(ctx context.Context, taskID string) (string, error)
	GetReport(ctx context.Context, reportID, filter string) (*ReportEnvelope, error)
	Close() error
}

// Dialer opens a fresh authenticated session. Components receive a Dialer
// instead of a shared client so that every request gets its own scoped
// connection.
type Dialer func(ctx context.Context) (Session, error)

// NewDialer returns a Dialer bound to cfg.
func NewDialer(cfg Config) Dialer {
	return func(ctx context.Context) (Session, error) {
		return Dial(ctx, cfg)
	}
}

// Conn is a single GMP session over a stream socket.
type Conn struct {
	conn net.Conn
	enc  *xml.Encoder
	dec  *xml.Decoder
}

// NewConn wraps an established transport connection. The caller still has
// to Authenticate before issuing commands.
func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn: conn,
		enc:  xml.NewEncoder(conn),
		dec:  xml.NewDecoder(conn),
	}
}

// Dial connects to gvmd and authenticates. On failure the socket is closed
// before the error is returned.
func Dial(ctx context.Context, cfg Config) (*Conn, error) {
	var d net.Dialer
	raw, err := d.DialContext(ctx, cfg.Network, cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("dial gvmd at %s://%s: %w", cfg.Network, cfg.Address, err)
	}

	c := NewConn(raw)
	if err := c.Authenticate(ctx, cfg.Username, cfg.Password); err != nil {
		raw.Close()
		return nil, err
	}
	logrus.Debugf("[gmp] session opened to %s://%s as %s", cfg.Network, cfg.Address, cfg.Username)
	return c, nil
}

func (c *Conn) Authenticate(ctx context.Context, username, password string) error {
	cmd := authenticateCmd{Credentials: credentials{Username: username, Password: password}}
	var resp authenticateResp
	return c.roundtrip(ctx, "authenticate", cmd, &resp)
}

func (c *Conn) GetTargets(ctx context.Context) ([]Entity, error) {
	var resp getTargetsResp
	if err := c.roundtrip(ctx, "get_targets", getTargetsCmd{}, &resp); err != nil {
		return nil, err
	}
	return resp.Targets, nil
}

func (c *Conn) CreateTarget(ctx context.Context, name string, hosts []string, portListID string) (string, error) {
	cmd := createTargetCmd{Name: name, Hosts: strings.Join(hosts, ",")}
	if portListID != "" {
		cmd.PortList = &elemID{ID: portListID}
	}
	var resp createTargetResp
	if err := c.roundtrip(ctx, "create_target", cmd, &resp); err != nil {
		return "", err
	}
	logrus.Debugf("[gmp] created target %q with id %s", name, resp.ID)
	return resp.ID, nil
}

func (c *Conn) DeleteTarget(ctx context.Context, targetID string) error {
	var resp deleteTargetResp
	return c.roundtrip(ctx, "delete_target", deleteTargetCmd{TargetID: targetID}, &resp)
}

func (c *Conn) GetConfigs(ctx context.Context) ([]Entity, error) {
	var resp getConfigsResp
	if err := c.roundtrip(ctx, "get_configs", getConfigsCmd{}, &resp); err != nil {
		return nil, err
	}
	return resp.Configs, nil
}

func (c *Conn) GetScanners(ctx context.Context) ([]Entity, error) {
	var resp getScannersResp
	if err := c.roundtrip(ctx, "get_scanners", getScannersCmd{}, &resp); err != nil {
		return nil, err
	}
	return resp.Scanners, nil
}

func (c *Conn) CreateTask(ctx context.Context, name, configID, targetID, scannerID string) (string, error) {
	cmd := createTaskCmd{
		Name:    name,
		Config:  elemID{ID: configID},
		Target:  elemID{ID: targetID},
		Scanner: elemID{ID: scannerID},
	}
	var resp createTaskResp
	if err := c.roundtrip(ctx, "create_task", cmd, &resp); err != nil {
		return "", err
	}
	logrus.Debugf("[gmp] created task %q with id %s", name, resp.ID)
	return resp.ID, nil
}

func (c *Conn) StartTask(ctx context.Context, taskID string) (string, error) {
	var resp startTaskResp
	if err := c.roundtrip(ctx, "start_task", startTaskCmd{TaskID: taskID}, &resp); err != nil {
		return "", err
	}
	logrus.Debugf("[gmp] started task %s, report id %s", taskID, resp.ReportID)
	return resp.ReportID, nil
}

func (c *Conn) GetReport(ctx context.Context, reportID, filter string) (*ReportEnvelope, error) {
	cmd := getReportsCmd{ReportID: reportID, Filter: filter, Details: "1"}
	var resp getReportsResp
	if err := c.roundtrip(ctx, "get_reports", cmd, &resp); err != nil {
		return nil, err
	}
	return resp.Report, nil
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

// roundtrip sends one command and decodes its response element, enforcing
// the GMP status attribute. The context deadline, when set, is applied to
// the socket for the exchange.
func (c *Conn) roundtrip(ctx context.Context, op string, cmd any, resp statusCarrier) error {
	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetDeadline(deadline)
	} else {
		c.conn.SetDeadline(time.Time{})
	}

	if err := c.enc.Encode(cmd); err != nil {
		return fmt.Errorf("gmp %s: send: %w", op, err)
	}
	if err := c.dec.Decode(resp); err != nil {
		return fmt.Errorf("gmp %s: receive: %w", op, err)
	}

	status, text := resp.statusCode()
	if !strings.HasPrefix(status, "2") {
		return &RemoteError{Op: op, Status: status, StatusText: text}
	}
	return nil
}
