// Package dormalloc assigns students to dormitories under capacity constraints
// and reports how fair the result is.
//
// An Engine runs one of three strategies over a cohort, remembers the latest
// allocation of each, and derives fairness metrics, waitlists, reallocations
// and roommate suggestions from them.
//
// # Quick Start
//
//	cfg := dormalloc.DefaultConfig()
//	engine, err := dormalloc.NewEngine(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	alloc, err := engine.Allocate(ctx, dormalloc.KindGreedy, students, dorms)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := engine.Evaluate(students, alloc)
//
// # Strategies
//
//   - Greedy: each student, in shuffled order, takes the highest-scoring dorm with a free bed
//   - Random: each student, in input order, takes a uniformly random dorm with a free bed
//   - Priority-first: students are served by descending priority, then placed greedily
//
// Student identifiers carry a trailing digit-sum checksum (see package
// studentid). Greedy and priority-first skip identifiers that fail it and log
// one warning per call listing them.
//
// # Allocation Representation
//
// An Allocation maps student IDs to dorm IDs. A student that was considered
// but found no free bed maps to Unassigned; a student skipped for an invalid
// identifier is absent. Every strategy uses the same representation.
//
// # Fairness
//
// Top1Rate and Top3Rate use the total cohort size as denominator. EnvyPairs
// counts ordered pairs (A, B) where B holds a dorm A listed but did not get.
// Simulate averages these over repeated shuffled greedy trials.
//
// See cmd/dormsim for a complete driver.
package dormalloc
