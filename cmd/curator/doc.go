// Command curator is the CLI for quota-aware YouTube search curation: ranked
// searches over learned per-domain relevance models, an interactive training
// loop, and guide playlist creation.
package main
