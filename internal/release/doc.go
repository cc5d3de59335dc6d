// Package release drives a neomdb release: build the client and server
// images for an environment and push them, or bring the test composition
// up (and optionally down). All container tooling sits behind Engine.
package release
