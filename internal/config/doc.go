// Package config provides configuration structures and utilities for the
// easter command. It defines the options shared by the subcommands, their
// defaults and validation, and the optional .easter YAML file that sets
// user defaults such as the preferred dating method.
package config
