package cmd

import "time"

// Config carries all runtime settings of the service. Values are loaded from
// the environment in cmd/app and validated at wiring time.
type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	MatchRadiusKm  float64
	MaxPendingAge  time.Duration
	MaxLocationAge time.Duration
}
