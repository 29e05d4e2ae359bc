// Package region is the bridge region extractor (E in spec.md §2/§4.2):
// given a parsed Layer and the previous layer's outer-perimeter polygon,
// it groups contiguous bridge-infill segments into candidate regions,
// thickens them into a polygon, runs the candidacy filter, and derives
// the anchor boundary the arc planner seeds from.
package region
