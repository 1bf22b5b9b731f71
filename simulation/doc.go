// Package simulation estimates the expected fairness of greedy allocation.
//
// A Runner repeats shuffled greedy allocation over the same cohort and
// averages the resulting fairness metrics. Trials are independent: each owns
// a strategy instance and a random source seeded from the runner seed and the
// trial index, so a fixed seed reproduces the same result regardless of
// parallelism.
package simulation
