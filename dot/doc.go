// Package dot renders local stemmata, textual flow diagrams, and the
// global stemma as Graphviz DOT, for the three sibling graph packages
// (stemma, textflow, globalstemma).
//
// Grounded on original_source/src/local_stemma.cpp's to_dot, the three DOT
// writers in original_source/src/textual_flow.cpp
// (textual_flow_to_dot, coherence_in_attestations_to_dot,
// coherence_in_variant_passages_to_dot), and
// original_source/src/global_stemma.cpp's to_dot: the digraph wrapper, a
// plaintext label box, a numerical vertex-ID remapping, and per-edge
// formatting commands assembled into a single bracketed attribute list.
package dot
