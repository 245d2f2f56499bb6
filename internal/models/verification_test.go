// internal/models/verification_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankability_ComputeOverall(t *testing.T) {
	tests := []struct {
		name     string
		scores   Bankability
		expected float64
	}{
		{
			name: "reference screening",
			scores: Bankability{
				TechnicalReadiness:  70,
				FinancialRobustness: 80,
				LegalClarity:        90,
				ESGCompliance:       60,
			},
			expected: 75,
		},
		{
			name: "non-integer mean keeps precision",
			scores: Bankability{
				TechnicalReadiness:  70,
				FinancialRobustness: 80,
				LegalClarity:        90,
				ESGCompliance:       63,
			},
			expected: 75.75,
		},
		{
			name:     "all zero",
			scores:   Bankability{},
			expected: 0,
		},
		{
			name: "all perfect",
			scores: Bankability{
				TechnicalReadiness:  100,
				FinancialRobustness: 100,
				LegalClarity:        100,
				ESGCompliance:       100,
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.scores
			b.ComputeOverall()
			assert.Equal(t, tt.expected, b.OverallScore)
		})
	}
}

func TestBankability_ComputeOverallReplacesStaleScore(t *testing.T) {
	b := Bankability{
		TechnicalReadiness:  70,
		FinancialRobustness: 80,
		LegalClarity:        90,
		ESGCompliance:       60,
		OverallScore:        99,
	}
	b.ComputeOverall()
	assert.Equal(t, 75.0, b.OverallScore)
}

func TestParseVerificationLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected VerificationLevel
	}{
		{"V0", LevelV0Submitted},
		{"V1", LevelV1SponsorVerified},
		{"V2", LevelV2DocumentsVerified},
		{"V3", LevelV3BankabilityScreened},
		{"V3: Bankability Screened", LevelV3BankabilityScreened},
		{"V0: Submitted", LevelV0Submitted},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseVerificationLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseVerificationLevel_Unknown(t *testing.T) {
	_, err := ParseVerificationLevel("V9")
	assert.Error(t, err)
}
