package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "snapfeed context key " + string(c)
}

// UserIDKey is the key for the caller's profile document ID in context.Context.
const UserIDKey = contextKey("userID")

// AccountIDKey is the key for the identity-provider account ID in context.Context.
const AccountIDKey = contextKey("accountID")

// UserEmailKey is the key for the caller's email in context.Context.
const UserEmailKey = contextKey("userEmail")

// RequestIDKey is the key for the request ID in context.Context.
const RequestIDKey = contextKey("requestID")

// ComponentKey is the key for the emitting component name in context.Context.
const ComponentKey = contextKey("component")

// OperationKey is the key for the current operation name in context.Context.
const OperationKey = contextKey("operation")
