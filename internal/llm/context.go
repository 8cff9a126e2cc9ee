package llm

import "context"

// PurposeUnknown labels calls made without WithPurpose.
const PurposeUnknown = "unknown"

type purposeKey struct{}

// WithPurpose tags ctx with the consumer label recorded alongside each call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return PurposeUnknown
}
