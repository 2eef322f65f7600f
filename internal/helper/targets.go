package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PeimanAtaei/greenbone-project/internal/model"
)

// ParseTargets splits the comma-separated host list accepted by gvmd into
// individual hosts, dropping surrounding whitespace.
func ParseTargets(raw string) ([]string, error) {
	var hosts []string
	for _, part := range strings.Split(raw, ",") {
		host := strings.TrimSpace(part)
		if host == "" {
			continue
		}
		if strings.ContainsAny(host, " \t") {
			return nil, fmt.Errorf("invalid target: %q", host)
		}
		hosts = append(hosts, host)
	}
	if len(hosts) == 0 {
		return nil, errors.New("targets list is empty")
	}
	return hosts, nil
}

// ValidateScanRequest checks required fields and returns the parsed host
// list.
func ValidateScanRequest(req *model.ScanRequest) ([]string, error) {
	if req == nil || req.ScanName == "" || req.Targets == "" {
		return nil, errors.New("scan_name, targets, are required")
	}
	return ParseTargets(req.Targets)
}
