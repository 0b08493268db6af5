package constants

import "os"

func GetPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

func GetDynamoEndpoint() string {
	if endpoint := os.Getenv("DYNAMO_ENDPOINT"); endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

const MetadataTable = "chordex-metadata"
