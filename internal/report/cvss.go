package report

import (
	"strings"

	"github.com/PeimanAtaei/greenbone-project/internal/model"
)

const metricAbsent = "N/A"

// DecomposeVector splits a slash-delimited CVSS vector string into its
// eight positional metrics (AV, AC, PR, UI, S, C, I, A). The leading
// version token is dropped, metrics missing from a short vector read
// "N/A", and for each present token only the value after the first ":" is
// kept. Tokens without a colon pass through unchanged.
func DecomposeVector(vector string) model.CVSSVector {
	tokens := make([]string, 8)
	for i := range tokens {
		tokens[i] = metricAbsent
	}

	if vector != "" {
		parts := strings.Split(vector, "/")[1:]
		for i, part := range parts {
			if i >= len(tokens) {
				break
			}
			tokens[i] = part
		}
	}

	for i, token := range tokens {
		if idx := strings.Index(token, ":"); idx >= 0 {
			tokens[i] = token[idx+1:]
		}
	}

	return model.CVSSVector{
		AV: tokens[0],
		AC: tokens[1],
		PR: tokens[2],
		UI: tokens[3],
		S:  tokens[4],
		C:  tokens[5],
		I:  tokens[6],
		A:  tokens[7],
	}
}
