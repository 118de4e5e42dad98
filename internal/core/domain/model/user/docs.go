// Package user provides the User aggregate and the closed Role enumeration
// for marketplace participants.
//
// The order lifecycle only consumes identity and role from this package;
// registration, password hashing, and wallet bookkeeping are thin supporting
// glue around it. Role is deliberately a closed enum with exhaustive switches
// at every permission check so that no ad-hoc role string can slip through a
// guard.
package user
