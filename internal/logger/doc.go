// Package logger builds the zap logger shared by all commands.
package logger
