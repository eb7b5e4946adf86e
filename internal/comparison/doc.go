// Package comparison provides the directory comparison command for dirdiff.
//
// It offers CommandBuilder for the Cobra command, Service for orchestrating
// the scan, diff, and reporting phases programmatically, and the
// configuration surface shared between flags and configuration files.
package comparison
