// Package config provides configuration loading, merging, and validation
// for the student portal client and the local fake API.
//
// Configuration is assembled from multiple sources merged with mergo; a field
// keeps the value of the first source that sets it:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetFakeAPIConfig].
package config
