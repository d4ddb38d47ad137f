// Package models lists the OpenAI models available to an API key and
// groups them by whether they can label images or only translate text.
package models
