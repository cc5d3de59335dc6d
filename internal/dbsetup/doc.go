// Package dbsetup performs the one-time MySQL bootstrap for neomdb: create
// the database and application user, grant privileges, and load the schema
// file statement by statement.
package dbsetup
