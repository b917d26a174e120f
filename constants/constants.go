package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetListenAddr() string {
	addr := os.Getenv("TEMPER_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetPresetTable() string {
	table := os.Getenv("TEMPER_PRESET_TABLE")
	if table != "" {
		return table
	}
	return "temper-presets"
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("TEMPER_DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

// NominalCycleCents is the unstretched octave.
const NominalCycleCents = 1200.0
