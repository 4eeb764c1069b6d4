// Package reconcile correlates records of two systems that share no
// identifier.
//
// Each side is described by a Definition: how to derive a correlation name
// from a record, which entry field holds that side's identifier, and which
// record value is stored there. The Engine keeps a persisted Map from
// correlation name to Entry and, on every run, diffs both sides' fresh
// records against it.
//
// # Run
//
// A run loads the map, then applies the source side and the destination
// side in turn. For each record the engine either confirms, updates or
// creates the entry under the record's name. A record whose name is unknown
// but whose identifier is already stored under another name is a rename:
// the whole entry moves to the new name, so the other side's identifier is
// carried over. Identifiers of entries no record matched are cleared.
//
// Afterwards the missing lists are recomputed from the final map and entries
// with neither identifier are pruned. The map is then saved as one unit.
//
// # Usage Example
//
//	def, err := reconcile.NewDefinition(reconcile.DefinitionConfig[Client]{
//	    Namer:        namer,
//	    IDField:      "ucrmId",
//	    CompareField: "id",
//	    Compare:      func(c Client) any { return c.ID },
//	})
//
//	engine := reconcile.NewEngine(store, logger)
//	result, err := engine.Reconcile(ctx,
//	    reconcile.Bind("source", sourceDef, clients),
//	    reconcile.Bind("destination", destinationDef, contacts))
//
// Anomalies such as duplicate names or one-sided entries are reported in
// each side's ChangeSet, never as errors.
package reconcile
