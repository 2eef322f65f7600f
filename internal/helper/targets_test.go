package helper

import (
	"testing"

	"github.com/PeimanAtaei/greenbone-project/internal/model"
)

func TestParseTargets(t *testing.T) {
	hosts, err := ParseTargets("10.0.0.1,10.0.0.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(hosts) != 2 || hosts[0] != "10.0.0.1" || hosts[1] != "10.0.0.2" {
		t.Fatalf("unexpected hosts: %v", hosts)
	}
}

func TestParseTargetsTrimsWhitespace(t *testing.T) {
	hosts, err := ParseTargets(" 10.0.0.1 , 10.0.0.2 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(hosts) != 2 || hosts[0] != "10.0.0.1" {
		t.Fatalf("unexpected hosts: %v", hosts)
	}
}

func TestParseTargetsSkipsEmptyEntries(t *testing.T) {
	hosts, err := ParseTargets("10.0.0.1,,10.0.0.2,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(hosts) != 2 {
		t.Fatalf("expected 2 hosts, got %v", hosts)
	}
}

func TestParseTargetsEmpty(t *testing.T) {
	if _, err := ParseTargets(""); err == nil {
		t.Fatal("expected error")
	}
	if _, err := ParseTargets(" , ,"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseTargetsRejectsEmbeddedWhitespace(t *testing.T) {
	if _, err := ParseTargets("10.0.0.1, bad host"); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateScanRequestNil(t *testing.T) {
	if _, err := ValidateScanRequest(nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateScanRequestMissingFields(t *testing.T) {
	tests := []model.ScanRequest{
		{ScanName: "", Targets: "10.0.0.1"},
		{ScanName: "test1", Targets: ""},
	}

	for _, test := range tests {
		if _, err := ValidateScanRequest(&test); err == nil {
			t.Fatalf("expected error for %+v", test)
		}
	}
}

func TestValidateScanRequestValid(t *testing.T) {
	hosts, err := ValidateScanRequest(&model.ScanRequest{
		ScanName: "test1",
		Targets:  "10.0.0.1,10.0.0.2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hosts) != 2 {
		t.Fatalf("expected 2 hosts, got %v", hosts)
	}
}
