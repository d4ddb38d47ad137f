// Package server exposes the analyzer over HTTP with gin and as an AWS
// Lambda handler. Every failure is logged in full and answered with the
// same generic 500 body.
package server
