// Package gir loads GObject-Introspection repositories (.gir files) into a
// typed, read-only model.
//
// A document is decoded by declarative field tables: every element kind
// lists its attributes, tagged children and untagged variants, and one
// generic procedure applies the table. Element kinds marked strict reject
// attributes and children they do not declare.
//
// Load a single document:
//
//	repo, err := gir.LoadFile("/usr/share/gir-1.0/Gtk-4.0.gir")
//
// Or resolve a document together with every namespace it includes:
//
//	res, err := gir.Resolve("/usr/share/gir-1.0", "Gtk-4.0.gir")
//	glib, ok := res.Package("GLib-2.0")
//
// Loading and resolution errors wrap an *errors.Error whose Kind is either an
// I/O failure or a structural failure.
package gir
