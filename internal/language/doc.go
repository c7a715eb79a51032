// Package language holds the segmentation rule tables used to articulate
// text into public names.
//
// A Table is an ordered list of rules for one language code, from the most
// structural separator (sentence punctuation) down to the finest (common
// hyphens). Tables ship built in (SAT, EN) and can be loaded from CUE or
// YAML files:
//
//	language: EN: [
//		"\\s*[?!.](?:\\s+|$)",
//		{words: ["and", "or", "but"]},
//	]
//
//	languages:
//	  EN:
//	    - '\s*[?!.](?:\s+|$)'
//	    - words: [and, or, but]
//
// A rule with a capturing group keeps the first captured text as its own
// fragment, so word-list rules keep the conjunction they split on.
package language
