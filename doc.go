// Package salesman is a small benchmark bench for the planar symmetric
// travelling salesman problem.
//
// What is in the box?
//
//	A TSPLIB reader, a distance cache and a handful of classic solvers run
//	side by side on the same instance:
//		• Brute force: every permutation, best and worst tour
//		• PPV: nearest neighbour construction
//		• RW: uniform random walk construction
//		• 2-opt: local search seeded by PPV or RW
//		• GA: genetic algorithm, optional 2-opt on every child
//
// Tours start and end at the origin (0,0) unless the no-zero mode is on;
// node ids are 0-based in code and 1-based in every report.
//
// Packages:
//
//	geom/      planar points, Euclidean distance, segment intersection
//	matrix/    symmetric distance cache on gonum SymDense
//	tsp/       instance, tour, solvers and the Solve dispatcher
//	tsplib/    TSPLIB problem reader, TOUR reader/writer
//	export/    semicolon separated report writer and reader
//	report/    styled console report
//	draw/      PNG rendering of tours
//	metrics/   Prometheus textfile metrics of a run
//
// Command line:
//
//	go install github.com/katalvlaran/salesman/cmd/salesman@latest
//	salesman -f berlin52.tsp --ppv --rw --2opt --ga 100 500 0.2 -o out.csv
package salesman
