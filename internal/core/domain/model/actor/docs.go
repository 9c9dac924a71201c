// Package actor defines the authenticated identity model used to authorize
// order state transitions. The auth collaborator resolves a session into an
// Actor (identity plus role) once at session start; the Actor is then passed
// explicitly into every authorization check instead of being read from
// ambient state.
package actor
