// Package config provides configuration loading, merging, and validation
// for vikeypass.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file (VIKEYPASS_CONFIG or --config)
//  2. Environment variables (VIKEYPASS_ prefix)
//  3. Command-line flags
//
// The main entry point is [GetClientConfig], which merges the sources,
// fills defaults and validates the result.
//
// The vault file location is not resolved here: an explicit path from the
// JSON file or --file is passed through, and the VIKEYPASS_FILE override is
// read by the store on every call.
package config
