// internal/docker/types.go
package docker

type BuildOptions struct {
	Dir        string      // build context, also the working directory of docker build
	Dockerfile string      // optional; docker's default lookup when empty
	BuildArgs  [][2]string // KEY,VALUE (deterministic)
	Labels     [][2]string // optional

	Refs []string // e.g. ["jbtit/neomdb:client1.2.3"]

	Target  string // optional multi-stage target
	Pull    bool   // docker build --pull
	NoCache bool   // docker build --no-cache
}

type ComposeOptions struct {
	Dir     string // working directory for docker-compose
	File    string // -f
	EnvFile string // --env-file, only passed to "up"
	Detach  bool   // up --detach
	Build   bool   // up --build
}

// Credentials for an optional docker login before pushing.
type Credentials struct {
	User     string
	Password string
}

func (c Credentials) empty() bool { return c.User == "" || c.Password == "" }
