// internal/payment/webhook.types.go
package payment

// WebhookProcessor describes a component that can turn the raw bytes of a
// webhook delivery into a verified WebhookEvent.
//
// The payload must be the untouched request body: signature schemes sign the
// exact byte sequence, and a parsed-then-reserialized body will not verify.
type WebhookProcessor interface {
	Provider() string
	VerifyAndParse(payload []byte, headers map[string]string) (*WebhookEvent, error)
}
