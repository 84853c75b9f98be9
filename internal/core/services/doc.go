// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never talk to the network or the filesystem directly;
// all I/O goes through the injected driven ports.
package services
