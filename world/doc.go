// Package world assembles one generation run: it builds the item and
// location tables from a capabilities document snapshot, owns them for the
// remainder of the run, and drives the rule provider hooks against the
// host engine.
package world
