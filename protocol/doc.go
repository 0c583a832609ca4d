// Package protocol assembles PRISM speaker recognition protocols.
//
// A Source owns the static data shared by every protocol: the data tree,
// the merged key table (loaded once, on first use) and the condition
// filter. Source.Build turns one condition into an immutable Protocol
// exposing the five partitions and the trial matrix.
//
// A Catalog maps (task, name) pairs to protocol factories. Registration is
// explicit:
//
//	src, _ := protocol.NewSource(fsys, databases, settings, nil)
//	cat, _ := protocol.NewDefaultCatalog(src)
//	p, _ := cat.Create(protocol.Task, "SRE10_c05_f")
//	for item := range p.Train().Items { ... }
package protocol
