// Package fetch downloads the image behind a URL with a bounded size and
// timeout.
package fetch
