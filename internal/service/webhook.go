package service

// callerIDLength is the canonical length of a local phone number once
// any country-code prefix has been stripped.
const callerIDLength = 10

// DynamicVariables is the normalized key set handed back to the voice
// platform for injection into an active call session. The camelCase keys
// are the platform's variable-naming convention; the inbound webhook
// itself speaks snake_case.
type DynamicVariables struct {
	CallerID     string `json:"callerId"`
	AgentID      string `json:"agentId"`
	CalledNumber string `json:"calledNumber"`
	CallSid      string `json:"callSid"`
}

// WebhookService normalizes inbound telephony webhook metadata.
type WebhookService struct{}

// NewWebhookService constructs a WebhookService.
func NewWebhookService() *WebhookService {
	return &WebhookService{}
}

// ExtractDynamicVariables builds the dynamic-variable set from raw call
// metadata:
//
//   - caller_id is normalized to its trailing 10 digits, stripping any
//     country-code prefix (e.g. "+1"); shorter values pass unchanged
//   - agent_id, called_number, and call_sid pass through untouched
//
// The error return is the containment contract with the webhook handler:
// any failure here must surface as an opaque 500, never as a partial
// variable set.
func (s *WebhookService) ExtractDynamicVariables(callerID, agentID, calledNumber, callSid string) (*DynamicVariables, error) {
	return &DynamicVariables{
		CallerID:     NormalizeCallerID(callerID),
		AgentID:      agentID,
		CalledNumber: calledNumber,
		CallSid:      callSid,
	}, nil
}

// NormalizeCallerID returns the last 10 characters of s, or s unchanged
// when it is shorter. Applying it twice is a no-op.
func NormalizeCallerID(s string) string {
	if len(s) <= callerIDLength {
		return s
	}
	return s[len(s)-callerIDLength:]
}
