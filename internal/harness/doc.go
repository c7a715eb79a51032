// Package harness runs YAML scenarios against a statement store.
//
// A scenario states and articulates documents step by step and then checks
// the resulting store with assertions. Every scenario runs in a fresh
// in-memory store with deterministic context ids, so its final snapshot
// can be compared byte for byte against a golden file.
//
// # Scenario Format
//
//	name: horizon_closure
//	description: "Three subjects sharing x close the x entry"
//	languages:            # extra rule tables, relative to the scenario file
//	  - ../languages/toy.yaml
//	horizon: 2            # 0 keeps the default
//	context: doc          # fixed context; default is ctx-1, ctx-2, ...
//	steps:
//	  - statement: { subject: [x, a], predicate: p, object: o }
//	  - index: { subject: [x, d] }
//	  - articulate: { text: "Go now. Stop here.", lang: TOY, chunk: 0 }
//	  - statement: { subject: [], predicate: p }
//	    expect_error: empty_name
//	assertions:
//	  - type: entry
//	    name: x
//	    closed: true
//
// Names are written as YAML: a scalar is a leaf, a sequence a compound
// and a mapping a set of key/value pairs. They are canonicalized before
// use.
//
// # Assertion Types
//
//   - canonical: the canonical form of name equals expect
//   - articulation: text articulated with lang yields expect
//   - entry: the index entry of name holds subjects, or is closed
//   - routes: the routes of name equal contexts
//   - objects: the objects of (name, predicate) equal objects
//   - search: searching for query returns subjects
//   - stats: the store counts equal stats
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/horizon_closure.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
