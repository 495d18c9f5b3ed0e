// Package training drives the interactive review loop that teaches a
// domain's model what relevant results look like. The operator runs a
// search, inspects the ranked shortlist, and issues commands that mutate
// the model: trusting or muting channels, adding or removing exclusion
// phrases, and re-running the search to see the effect.
//
// The loop never aborts on a bad command. Persistent mutations save through
// the model manager as they happen, so a session interrupted mid-review
// loses nothing already taught.
package training
