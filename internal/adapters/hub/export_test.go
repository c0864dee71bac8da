package hub

// NewClientWithHTTP exports the private constructor for testing purposes.
var NewClientWithHTTP = newClientWithHTTP

// NormalizeBaseURL exports the private URL normalizer for testing purposes.
var NormalizeBaseURL = normalizeBaseURL

// Truncate exports the private body truncation helper for testing purposes.
var Truncate = truncate
