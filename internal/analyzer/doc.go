// Package analyzer drives one image through the fetch, detect, translate and
// format stages and reports which stage failed.
package analyzer
