package common

// RequestIDHeaderName is the HTTP header / gRPC metadata key carrying the
// per-request correlation id.
const RequestIDHeaderName = "x-request-id"

// ConflictMessage is the single violation message reported when an email is
// already registered.
const ConflictMessage = "account already exists"
