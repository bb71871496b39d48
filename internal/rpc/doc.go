// Package rpc defines the request/reply contract between the gateway and the
// authentication backend: message types, the gRPC service description, a
// JSON codec and the mapping of error kinds onto gRPC statuses.
//
// The three operations are addressed by their tags (register_user,
// get_users, validate_user) which form the method names of the
// authentication.Users service. Messages travel as JSON using the "json"
// content subtype; callers must pass CallOptions() on every invocation.
package rpc
