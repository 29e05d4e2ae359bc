// Package rewrite defines the post-layer rewriter boundary (R in
// spec.md §2/§4.5): a follow-up pass that, given the footprints and
// z-ranges of emitted arc patches, may thermally mitigate the layers
// printed just above them. The space-filling-curve geometry such a
// pass would use is out of scope for this module (spec.md §1
// non-goals); this package only fixes the interface P/X call into.
//
// Grounded on the reference graph library's converterts package: a
// doc-comment-only boundary toward external collaborators out of scope
// for the module itself (there, conversions to other graph libraries;
// here, the thermal-mitigation rewrite pass).
package rewrite
