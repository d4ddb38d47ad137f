// Package translation translates detected label names from English to
// Portuguese. Names are joined into one sentence, translated with a single
// backend call and split back into positional items. A per-name mode trades
// extra calls for explicit pairing.
package translation
