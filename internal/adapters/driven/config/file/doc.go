// Package file provides the TOML-based configuration store. Settings such
// as API keys, the model name and data paths live in the kinoman config
// directory.
package file
