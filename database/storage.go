package database

// Status describes the state of the database connection pool, exposed by the
// health endpoint instead of a process-wide connected flag.
type Status struct {
	Connected       bool   `json:"connected"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	Error           string `json:"error,omitempty"`
}

// Storage is the connection handle passed to the router and handlers
type Storage interface {
	Init() error
	Close() error
	HealthCheck() error
	Status() Status
	GetDB() interface{}
}
