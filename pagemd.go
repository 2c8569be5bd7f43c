// Package pagemd converts noisy real-world HTML documents into several
// Markdown-flavored representations: a raw conversion, a human-readable
// variant, a footnote-annotated variant with a references block, and a
// link-stripped plain variant, plus structured lists of the links and
// images discovered along the way.
//
// This package contains domain types, interfaces, and the pure text
// post-processing passes, following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, htmltomarkdown/, sqlite/).
package pagemd
