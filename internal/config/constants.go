package config

const (
	// Configuration file paths
	ConfigPathPolicy = "configs/policy.json"
)
