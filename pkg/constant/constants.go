package constant

const (
	// Fetch modes selecting how completed query results are materialized.
	// "api" pages through the query results API, "s3" downloads the CSV the
	// query service stages at its output location.
	FetchModeAPI = "api"
	FetchModeS3  = "s3"

	// EnvPrefix is the prefix shared by all environment configuration keys.
	EnvPrefix = "DASHGEN"
)
