package config

import "os"

// lookupEnv is swapped in tests.
var lookupEnv = os.LookupEnv

func getEnv(name, fallback string) string {
	if v, ok := lookupEnv(name); ok && v != "" {
		return v
	}
	return fallback
}
