// Package menu turns a declared set of tools on an administrator type into a
// hierarchical console menu.
//
// Tools are registered once per administrator type in a Registry, usually from a
// package-level var so that a malformed declaration panics at program load. A Menu
// binds a Registry to the pre-display hooks of the administrator and runs the
// display loop against a Terminal until the user leaves.
package menu
