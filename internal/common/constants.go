package common

// UnknownStr is the name printed for enum values without a known name.
const UnknownStr = "unknown"
