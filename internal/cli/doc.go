// Package cli holds the cobra commands behind the neomdb-deploy and dbinit binaries.
package cli
