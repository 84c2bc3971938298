// Command voxpick curates voice character catalogs and generates voice
// prompt files. The curate command merges language variants and filters
// records against the configured criteria; the prompts command drives the
// prompt generation service for a tree of reference clips.
package main
