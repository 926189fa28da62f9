// Package auth contains the user database interfaces.
// Authentication is session-based: after a successful login the user id is
// kept in the session, and core resolves it back to a user on every request.
// Authorization is ownership: an article can only be mutated by its author.
package auth
