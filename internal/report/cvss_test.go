package report

import (
	"testing"

	"github.com/PeimanAtaei/greenbone-project/internal/model"
)

func TestDecomposeVectorFull(t *testing.T) {
	got := DecomposeVector("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
	exp := model.CVSSVector{AV: "N", AC: "L", PR: "N", UI: "N", S: "U", C: "H", I: "H", A: "H"}

	if got != exp {
		t.Fatalf("expected %+v, got %+v", exp, got)
	}
}

func TestDecomposeVectorEmpty(t *testing.T) {
	got := DecomposeVector("")
	exp := model.CVSSVector{AV: "N/A", AC: "N/A", PR: "N/A", UI: "N/A", S: "N/A", C: "N/A", I: "N/A", A: "N/A"}

	if got != exp {
		t.Fatalf("expected all N/A, got %+v", got)
	}
}

func TestDecomposeVectorShort(t *testing.T) {
	got := DecomposeVector("CVSS:3.1/AV:N/AC:L/PR:H")
	exp := model.CVSSVector{AV: "N", AC: "L", PR: "H", UI: "N/A", S: "N/A", C: "N/A", I: "N/A", A: "N/A"}

	if got != exp {
		t.Fatalf("expected %+v, got %+v", exp, got)
	}
}

func TestDecomposeVectorPrefixOnly(t *testing.T) {
	got := DecomposeVector("AV:N")
	exp := model.CVSSVector{AV: "N/A", AC: "N/A", PR: "N/A", UI: "N/A", S: "N/A", C: "N/A", I: "N/A", A: "N/A"}

	if got != exp {
		t.Fatalf("first token is a prefix and must be dropped, got %+v", got)
	}
}

func TestDecomposeVectorTokenWithoutColon(t *testing.T) {
	got := DecomposeVector("CVSS:2.0/AV:N/malformed/PR:L")

	if got.AV != "N" {
		t.Fatalf("expected AV N, got %q", got.AV)
	}
	if got.AC != "malformed" {
		t.Fatalf("colonless token must pass through, got %q", got.AC)
	}
	if got.PR != "L" {
		t.Fatalf("expected PR L, got %q", got.PR)
	}
}

func TestDecomposeVectorExtraTokensIgnored(t *testing.T) {
	got := DecomposeVector("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H/E:F/RL:O")

	if got.A != "H" {
		t.Fatalf("expected A H, got %q", got.A)
	}
}
