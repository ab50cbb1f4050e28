// Package seed bundles the default datasets written into the persisted store
// the first time a collection key is absent or its version marker is stale.
package seed

import (
	_ "embed"
)

// Version is the marker checked against each stored collection. Bump it when a
// bundled dataset changes to force a reseed on next startup.
const Version = "v3"

//go:embed data/jobs.json
var Jobs []byte

//go:embed data/users.json
var Users []byte

//go:embed data/alumni.json
var Alumni []byte

//go:embed data/insights.json
var Insights []byte

//go:embed data/referrals.json
var Referrals []byte

// Applications and resume profiles start empty; both collections are built up
// entirely by user actions.
var (
	Applications = []byte("[]")
	Resumes      = []byte("[]")
)
