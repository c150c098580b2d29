// Package flow drives screen navigation. The App coordinator picks the
// sign-in or home flow from the persisted session; child coordinators
// build their view models, hand them to a ScreenFactory and move between
// screens through a Navigator.
//
// Coordinators run on the UI execution context. Children are owned by
// their parent; a child refers back to its parent weakly.
package flow
