package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCallerID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips US country code",
			input: "+15551234567",
			want:  "5551234567",
		},
		{
			name:  "strips longer international prefix",
			input: "00445551234567",
			want:  "5551234567",
		},
		{
			name:  "exactly ten characters unchanged",
			input: "5551234567",
			want:  "5551234567",
		},
		{
			name:  "short value unchanged",
			input: "123",
			want:  "123",
		},
		{
			name:  "empty string unchanged",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCallerID(tt.input))
		})
	}
}

func TestNormalizeCallerID_SuffixProperties(t *testing.T) {
	inputs := []string{
		"+15551234567",
		"+4915770000000",
		"5551234567",
		"abcde",
		strings.Repeat("9", 30),
	}

	for _, in := range inputs {
		out := NormalizeCallerID(in)

		if len(in) >= callerIDLength {
			assert.Len(t, out, callerIDLength, "input %q", in)
			assert.Equal(t, in[len(in)-callerIDLength:], out, "input %q", in)
		} else {
			assert.Equal(t, in, out, "input %q", in)
		}

		// Applying normalization twice is a no-op.
		assert.Equal(t, out, NormalizeCallerID(out), "input %q", in)
	}
}

func TestExtractDynamicVariables(t *testing.T) {
	svc := NewWebhookService()

	vars, err := svc.ExtractDynamicVariables("+15551234567", "A1", "+15559876543", "CA123")
	require.NoError(t, err)

	// Only caller_id is normalized; everything else passes through,
	// including the called number's country code.
	assert.Equal(t, &DynamicVariables{
		CallerID:     "5551234567",
		AgentID:      "A1",
		CalledNumber: "+15559876543",
		CallSid:      "CA123",
	}, vars)
}

func TestExtractDynamicVariables_ShortCallerID(t *testing.T) {
	svc := NewWebhookService()

	vars, err := svc.ExtractDynamicVariables("123", "A1", "+15559876543", "CA123")
	require.NoError(t, err)
	assert.Equal(t, "123", vars.CallerID)
}
