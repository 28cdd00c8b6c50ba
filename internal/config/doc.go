// Package config loads longdiv settings from longdiv.yaml and LONGDIV_*
// environment variables.
package config

import "time"

const defaultDebounce = 600 * time.Millisecond
